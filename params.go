package wallhaven

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shivlim/wallhaven-go/constants"
	"github.com/shivlim/wallhaven-go/errors"
)

// Parameters holds the search configuration for the search endpoint.
//
// Usage:
//
//	params := wallhaven.NewParameters()
//	params.SetCategories(true, false, false)
//	params.SetSorting("toplist")
//	params.SetRange("Last Three Days")
//	results, err := client.Search(params.GetParams())
//
// The tag and user filter tokens are kept separate from the free-text
// query and are only merged into the "q" value by GetParams(). This
// allows ResetFilters() and ClearSearchQuery() to drop them cleanly.
//
// A Parameters instance is not thread-safe and should
// not be shared across goroutines.
type Parameters struct {
	general bool
	anime   bool
	people  bool

	sfw     bool
	sketchy bool
	nsfw    bool

	sorting  string
	topRange string
	order    string
	page     int

	query        string
	filterTokens []string
	userFilter   string
}

// NewParameters returns a Parameters
// instance with the default configuration:
//
//	categories: 111 (general, anime and people)
//	purity:     100 (SFW only)
//	sorting:    date_added
//	topRange:   1M
//	order:      desc
//	page:       1
//	q:          empty
func NewParameters() *Parameters {
	params := &Parameters{}
	params.ResetParameters()
	return params
}

// ResetParameters restores every field to its documented default.
func (p *Parameters) ResetParameters() {
	p.general, p.anime, p.people = true, true, true
	p.sfw, p.sketchy, p.nsfw = true, false, false
	p.sorting = constants.SORT_DATE_ADDED
	p.topRange = constants.RANGE_1_MONTH
	p.order = constants.ORDER_DESC
	p.page = 1
	p.ResetFilters()
}

// ResetFilters clears the free-text query and any accumulated tag and
// user filter tokens, leaving categories, purity, sorting, order and
// page untouched.
func (p *Parameters) ResetFilters() {
	p.query = ""
	p.filterTokens = nil
	p.userFilter = ""
}

// SetCategories turns the general, anime and people categories on or off.
//
// An all-zero mask is accepted. It is a valid, if
// useless, state that simply matches nothing.
func (p *Parameters) SetCategories(general, anime, people bool) {
	p.general, p.anime, p.people = general, anime, people
}

// SetPurity turns the sfw, sketchy and nsfw purities on or off.
//
// Note that NSFW results require a valid API key at request
// time. This is enforced by the client, not the builder.
func (p *Parameters) SetPurity(sfw, sketchy, nsfw bool) {
	p.sfw, p.sketchy, p.nsfw = sfw, sketchy, nsfw
}

// SetSorting sets the method of sorting results. Accepts a
// case-insensitive name such as "Date Added" or "toplist".
func (p *Parameters) SetSorting(sorting string) error {
	normalised := normaliseOption(sorting)
	for _, availableSorting := range constants.AVAILABLE_SORTINGS {
		if normalised == availableSorting {
			p.sorting = availableSorting
			return nil
		}
	}
	return fmt.Errorf(
		"error %d: unknown sorting %q: %w",
		whverrors.INPUT_ERROR,
		sorting,
		whverrors.ErrInvalidOption,
	)
}

// SetRange sets the time range used when sorting by toplist. Accepts a
// human readable label such as "Last Three Days" or a short code such
// as "3d". The range is ignored by the API unless sorting is toplist.
func (p *Parameters) SetRange(topRange string) error {
	normalised := normaliseOption(topRange)
	for label, code := range constants.TOP_RANGE_MAPPING {
		if normalised == label || strings.EqualFold(normalised, code) {
			p.topRange = code
			return nil
		}
	}
	return fmt.Errorf(
		"error %d: unknown top range %q: %w",
		whverrors.INPUT_ERROR,
		topRange,
		whverrors.ErrInvalidOption,
	)
}

// SetOrder sets the sorting order. Accepts "asc", "desc",
// "Ascending" or "Descending", case-insensitively.
func (p *Parameters) SetOrder(order string) error {
	normalised := normaliseOption(order)
	for label, code := range constants.ORDER_MAPPING {
		if normalised == label || normalised == code {
			p.order = code
			return nil
		}
	}
	return fmt.Errorf(
		"error %d: unknown order %q: %w",
		whverrors.INPUT_ERROR,
		order,
		whverrors.ErrInvalidOption,
	)
}

// SetPage sets the page number to request. Must be positive.
func (p *Parameters) SetPage(page int) error {
	if page < 1 {
		return fmt.Errorf(
			"error %d: page must be a positive integer, got %d: %w",
			whverrors.INPUT_ERROR,
			page,
			whverrors.ErrInvalidOption,
		)
	}
	p.page = page
	return nil
}

// SetSearchQuery replaces the free-text query verbatim. Tag and user
// filter tokens added via IncludeTags, ExcludeTags and FilterByUser
// are not affected.
func (p *Parameters) SetSearchQuery(query string) {
	p.query = query
}

// ClearSearchQuery empties the free-text query. If alsoClearFilters is
// true, any accumulated tag and user filter tokens are dropped as well.
func (p *Parameters) ClearSearchQuery(alsoClearFilters bool) {
	p.query = ""
	if alsoClearFilters {
		p.filterTokens = nil
		p.userFilter = ""
	}
}

// IncludeTags appends a "+tag" token for each given tag.
// Call order is preserved and duplicates are not removed.
func (p *Parameters) IncludeTags(tags ...string) {
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		p.filterTokens = append(p.filterTokens, "+"+tag)
	}
}

// ExcludeTags appends a "-tag" token for each given tag.
// Call order is preserved and duplicates are not removed.
func (p *Parameters) ExcludeTags(tags ...string) {
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		p.filterTokens = append(p.filterTokens, "-"+tag)
	}
}

// FilterByUser restricts results to uploads by the given
// user via an "@username" token. An empty username removes
// a previously set user filter.
func (p *Parameters) FilterByUser(username string) {
	if username == "" {
		p.userFilter = ""
		return
	}
	p.userFilter = "@" + username
}

// GetParams returns the current state serialized as the flat string
// map expected by the search endpoint. The returned map is a snapshot
// and can be mutated freely by the caller.
func (p *Parameters) GetParams() map[string]string {
	return map[string]string{
		"categories": bitMask(p.general, p.anime, p.people),
		"purity":     bitMask(p.sfw, p.sketchy, p.nsfw),
		"sorting":    p.sorting,
		"topRange":   p.topRange,
		"order":      p.order,
		"page":       strconv.Itoa(p.page),
		"q":          p.buildQuery(),
	}
}

// Merges the free-text query, the tag filter tokens and
// the user filter token into a single space-joined string.
func (p *Parameters) buildQuery() string {
	tokens := make([]string, 0, len(p.filterTokens)+2)
	if p.query != "" {
		tokens = append(tokens, p.query)
	}
	tokens = append(tokens, p.filterTokens...)
	if p.userFilter != "" {
		tokens = append(tokens, p.userFilter)
	}
	return strings.Join(tokens, " ")
}

// Encodes the given flags as a string of '1' and
// '0' bits in the same order as the arguments.
func bitMask(flags ...bool) string {
	var mask strings.Builder
	for _, flag := range flags {
		if flag {
			mask.WriteByte('1')
		} else {
			mask.WriteByte('0')
		}
	}
	return mask.String()
}

// Lowercases the given option and replaces
// spaces with underscores for lookups.
func normaliseOption(option string) string {
	return strings.ReplaceAll(
		strings.ToLower(strings.TrimSpace(option)),
		" ",
		"_",
	)
}
