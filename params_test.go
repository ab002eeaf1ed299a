package wallhaven

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shivlim/wallhaven-go/errors"
)

func TestDefaultParams(t *testing.T) {
	params := NewParameters().GetParams()

	expected := map[string]string{
		"categories": "111",
		"purity":     "100",
		"sorting":    "date_added",
		"topRange":   "1M",
		"order":      "desc",
		"page":       "1",
		"q":          "",
	}
	if len(params) != len(expected) {
		t.Errorf("Expected %d keys, got %d", len(expected), len(params))
	}
	for key, value := range expected {
		if params[key] != value {
			t.Errorf("Expected %q for %q, got %q", value, key, params[key])
		}
	}
}

func TestCategoryAndPurityMasks(t *testing.T) {
	params := NewParameters()
	for i := 0; i < 8; i++ {
		first := i&4 != 0
		second := i&2 != 0
		third := i&1 != 0
		expected := fmt.Sprintf("%d%d%d", boolToInt(first), boolToInt(second), boolToInt(third))

		params.SetCategories(first, second, third)
		if mask := params.GetParams()["categories"]; mask != expected {
			t.Errorf("Expected categories mask %q, got %q", expected, mask)
		}

		params.SetPurity(first, second, third)
		if mask := params.GetParams()["purity"]; mask != expected {
			t.Errorf("Expected purity mask %q, got %q", expected, mask)
		}
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func TestSetSorting(t *testing.T) {
	params := NewParameters()

	// normalisation of human readable input
	if err := params.SetSorting("Date Added"); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if sorting := params.GetParams()["sorting"]; sorting != "date_added" {
		t.Errorf("Expected sorting %q, got %q", "date_added", sorting)
	}

	if err := params.SetSorting("toplist"); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	err := params.SetSorting("alphabetical")
	if !errors.Is(err, whverrors.ErrInvalidOption) {
		t.Errorf("Expected ErrInvalidOption, got %v", err)
	}
	if sorting := params.GetParams()["sorting"]; sorting != "toplist" {
		t.Errorf("Expected sorting to be unchanged, got %q", sorting)
	}
}

func TestSetRange(t *testing.T) {
	params := NewParameters()

	tests := map[string]string{
		"Last Three Days": "3d",
		"last_week":       "1w",
		"1d":              "1d",
		"3M":              "3M",
		"Last Six Months": "6M",
		"1y":              "1y",
	}
	for input, expected := range tests {
		if err := params.SetRange(input); err != nil {
			t.Errorf("Expected no error for %q, got %v", input, err)
			continue
		}
		if topRange := params.GetParams()["topRange"]; topRange != expected {
			t.Errorf("Expected top range %q for %q, got %q", expected, input, topRange)
		}
	}

	err := params.SetRange("fortnight")
	if !errors.Is(err, whverrors.ErrInvalidOption) {
		t.Errorf("Expected ErrInvalidOption, got %v", err)
	}
}

func TestSetOrder(t *testing.T) {
	params := NewParameters()

	tests := map[string]string{
		"asc":        "asc",
		"Ascending":  "asc",
		"DESC":       "desc",
		"descending": "desc",
	}
	for input, expected := range tests {
		if err := params.SetOrder(input); err != nil {
			t.Errorf("Expected no error for %q, got %v", input, err)
			continue
		}
		if order := params.GetParams()["order"]; order != expected {
			t.Errorf("Expected order %q for %q, got %q", expected, input, order)
		}
	}

	err := params.SetOrder("sideways")
	if !errors.Is(err, whverrors.ErrInvalidOption) {
		t.Errorf("Expected ErrInvalidOption, got %v", err)
	}
}

func TestSetPage(t *testing.T) {
	params := NewParameters()

	if err := params.SetPage(3); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if page := params.GetParams()["page"]; page != "3" {
		t.Errorf("Expected page %q, got %q", "3", page)
	}

	for _, page := range []int{0, -1} {
		err := params.SetPage(page)
		if !errors.Is(err, whverrors.ErrInvalidOption) {
			t.Errorf("Expected ErrInvalidOption for page %d, got %v", page, err)
		}
	}
}

func TestTagAndUserFilters(t *testing.T) {
	params := NewParameters()
	params.SetSearchQuery("landscape")
	params.IncludeTags("guitar")
	params.ExcludeTags("car")
	params.FilterByUser("test-user")

	expected := "landscape +guitar -car @test-user"
	if q := params.GetParams()["q"]; q != expected {
		t.Errorf("Expected query %q, got %q", expected, q)
	}

	// duplicates are kept and call order is preserved
	params.IncludeTags("guitar")
	expected = "landscape +guitar -car +guitar @test-user"
	if q := params.GetParams()["q"]; q != expected {
		t.Errorf("Expected query %q, got %q", expected, q)
	}

	params.FilterByUser("")
	expected = "landscape +guitar -car +guitar"
	if q := params.GetParams()["q"]; q != expected {
		t.Errorf("Expected query %q, got %q", expected, q)
	}
}

func TestClearSearchQuery(t *testing.T) {
	params := NewParameters()
	params.SetSearchQuery("mountains")
	params.IncludeTags("nature")

	params.ClearSearchQuery(false)
	if q := params.GetParams()["q"]; q != "+nature" {
		t.Errorf("Expected query %q, got %q", "+nature", q)
	}

	params.SetSearchQuery("mountains")
	params.ClearSearchQuery(true)
	if q := params.GetParams()["q"]; q != "" {
		t.Errorf("Expected empty query, got %q", q)
	}
}

func TestResetParameters(t *testing.T) {
	params := NewParameters()
	params.SetCategories(false, true, false)
	params.SetPurity(true, true, true)
	if err := params.SetSorting("random"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := params.SetRange("1d"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := params.SetOrder("asc"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := params.SetPage(42); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	params.SetSearchQuery("anime")
	params.IncludeTags("sky")

	params.ResetParameters()

	expected := map[string]string{
		"categories": "111",
		"purity":     "100",
		"sorting":    "date_added",
		"topRange":   "1M",
		"order":      "desc",
		"page":       "1",
		"q":          "",
	}
	for key, value := range expected {
		if got := params.GetParams()[key]; got != value {
			t.Errorf("Expected %q for %q after reset, got %q", value, key, got)
		}
	}
}

func TestResetFilters(t *testing.T) {
	params := NewParameters()
	params.SetCategories(false, true, false)
	params.SetPurity(true, true, false)
	if err := params.SetSorting("views"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := params.SetPage(7); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	params.SetSearchQuery("city")
	params.IncludeTags("night")
	params.FilterByUser("someone")

	params.ResetFilters()

	serialised := params.GetParams()
	if serialised["q"] != "" {
		t.Errorf("Expected empty query after ResetFilters, got %q", serialised["q"])
	}
	if serialised["categories"] != "010" {
		t.Errorf("Expected categories to be unchanged, got %q", serialised["categories"])
	}
	if serialised["purity"] != "110" {
		t.Errorf("Expected purity to be unchanged, got %q", serialised["purity"])
	}
	if serialised["sorting"] != "views" {
		t.Errorf("Expected sorting to be unchanged, got %q", serialised["sorting"])
	}
	if serialised["page"] != "7" {
		t.Errorf("Expected page to be unchanged, got %q", serialised["page"])
	}
}

func TestGetParamsReturnsSnapshot(t *testing.T) {
	params := NewParameters()
	first := params.GetParams()
	first["page"] = "99"

	if page := params.GetParams()["page"]; page != "1" {
		t.Errorf("Expected mutating the snapshot to not affect the builder, got page %q", page)
	}
}
