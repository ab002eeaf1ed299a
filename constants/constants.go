package constants

const (
	DEBUG_MODE    = false // Will save a copy of all JSON responses from the API
	DEFAULT_PERMS = 0755  // Owner: rwx, Group: rx, Others: rx
	VERSION       = "1.0.0"

	WALLHAVEN         = "wallhaven"
	WALLHAVEN_TITLE   = "Wallhaven"
	WALLHAVEN_URL     = "https://wallhaven.cc"
	WALLHAVEN_API_URL = WALLHAVEN_URL + "/api/v1"

	WALLPAPER_PATH   = "/w/"          // + wallpaper ID
	TAG_PATH         = "/tag/"        // + tag ID
	SETTINGS_PATH    = "/settings"    // requires an API key
	COLLECTIONS_PATH = "/collections" // + /<username> or an API key
	SEARCH_PATH      = "/search"

	API_KEY_HEADER = "X-API-Key"

	// Wallhaven allows up to 45 API requests per minute and
	// returns a 429 response once the quota is exhausted.
	API_RATE_LIMIT = 45

	WALLHAVEN_PER_PAGE  = 24 // wallpapers per page for search and collection results
	DEFAULT_REQ_TIMEOUT = 10 // in seconds, same as the timeout used by the Wallhaven website itself

	// Delay between API requests so that the rate
	// limit above is not hit during normal usage. In seconds.
	MIN_REQUEST_DELAY = 0.5
	MAX_EXTRA_DELAY   = 0.5

	SORT_DATE_ADDED   = "date_added"
	SORT_RELEVANCE    = "relevance"
	SORT_RANDOM       = "random"
	SORT_VIEWS        = "views"
	SORT_FAVORITES    = "favorites"
	SORT_TOPLIST      = "toplist"
	SORT_TOPLIST_BETA = "toplist_beta"

	ORDER_ASC  = "asc"
	ORDER_DESC = "desc"

	RANGE_1_DAY    = "1d"
	RANGE_3_DAYS   = "3d"
	RANGE_1_WEEK   = "1w"
	RANGE_1_MONTH  = "1M"
	RANGE_3_MONTHS = "3M"
	RANGE_6_MONTHS = "6M"
	RANGE_1_YEAR   = "1y"
)

// Although the variables below are not
// constants, they are not supposed to be changed
var (
	AVAILABLE_SORTINGS = []string{
		SORT_DATE_ADDED,
		SORT_RELEVANCE,
		SORT_RANDOM,
		SORT_VIEWS,
		SORT_FAVORITES,
		SORT_TOPLIST,
		SORT_TOPLIST_BETA,
	}

	// Maps the human readable labels to the short
	// codes expected by the search endpoint.
	TOP_RANGE_MAPPING = map[string]string{
		"last_day":          RANGE_1_DAY,
		"last_three_days":   RANGE_3_DAYS,
		"last_week":         RANGE_1_WEEK,
		"last_month":        RANGE_1_MONTH,
		"last_three_months": RANGE_3_MONTHS,
		"last_six_months":   RANGE_6_MONTHS,
		"last_year":         RANGE_1_YEAR,
	}

	ORDER_MAPPING = map[string]string{
		"ascending":  ORDER_ASC,
		"descending": ORDER_DESC,
	}
)
