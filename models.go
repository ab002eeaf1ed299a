package wallhaven

import "encoding/json"

// Thumbs contains the thumbnail URLs of a wallpaper.
type Thumbs struct {
	Large    string `json:"large"`
	Original string `json:"original"`
	Small    string `json:"small"`
}

// Uploader contains the public profile info of the user who uploaded a wallpaper.
type Uploader struct {
	Username string            `json:"username"`
	Group    string            `json:"group"`
	Avatar   map[string]string `json:"avatar"`
}

// Tag describes a single Wallhaven tag.
type Tag struct {
	Id         int    `json:"id"`
	Name       string `json:"name"`
	Alias      string `json:"alias"`
	CategoryId int    `json:"category_id"`
	Category   string `json:"category"`
	Purity     string `json:"purity"`
	CreatedAt  string `json:"created_at"`
}

// Wallpaper describes a single wallpaper.
//
// The Uploader and Tags fields are only present in the response
// of the wallpaper info endpoint and will be empty for
// wallpapers returned by search and collection listings.
type Wallpaper struct {
	Id         string    `json:"id"`
	Url        string    `json:"url"`
	ShortUrl   string    `json:"short_url"`
	Uploader   *Uploader `json:"uploader,omitempty"`
	Views      int       `json:"views"`
	Favorites  int       `json:"favorites"`
	Source     string    `json:"source"`
	Purity     string    `json:"purity"`
	Category   string    `json:"category"`
	DimensionX int       `json:"dimension_x"`
	DimensionY int       `json:"dimension_y"`
	Resolution string    `json:"resolution"`
	Ratio      string    `json:"ratio"`
	FileSize   int64     `json:"file_size"`
	FileType   string    `json:"file_type"`
	CreatedAt  string    `json:"created_at"`
	Colors     []string  `json:"colors"`
	Path       string    `json:"path"`
	Thumbs     Thumbs    `json:"thumbs"`
	Tags       []*Tag    `json:"tags,omitempty"`
}

// Collection describes a named grouping of wallpapers owned by a user.
type Collection struct {
	Id     int    `json:"id"`
	Label  string `json:"label"`
	Views  int    `json:"views"`
	Public int    `json:"public"`
	Count  int    `json:"count"`
}

// UserSettings contains the account-level
// browsing preferences of the API key's owner.
type UserSettings struct {
	ThumbSize     string   `json:"thumb_size"`
	PerPage       string   `json:"per_page"`
	Purity        []string `json:"purity"`
	Categories    []string `json:"categories"`
	Resolutions   []string `json:"resolutions"`
	AspectRatios  []string `json:"aspect_ratios"`
	ToplistRange  string   `json:"toplist_range"`
	TagBlacklist  []string `json:"tag_blacklist"`
	UserBlacklist []string `json:"user_blacklist"`
}

// Meta contains the pagination info returned
// alongside search and collection results.
//
// PerPage is a json.Number as the API returns it as a number for
// some endpoints and as a string for others. Query is left as raw
// JSON since it can either be a string or a tag id mapping.
type Meta struct {
	CurrentPage int             `json:"current_page"`
	LastPage    int             `json:"last_page"`
	PerPage     json.Number     `json:"per_page"`
	Total       int             `json:"total"`
	Query       json.RawMessage `json:"query,omitempty"`
	Seed        string          `json:"seed,omitempty"`
}

type wallpaperResponse struct {
	Data *Wallpaper `json:"data"`
}

type tagResponse struct {
	Data *Tag `json:"data"`
}

type settingsResponse struct {
	Data *UserSettings `json:"data"`
}

type collectionsResponse struct {
	Data []*Collection `json:"data"`
}

type searchResponse struct {
	Data []*Wallpaper `json:"data"`
	Meta *Meta        `json:"meta"`
}
