package wallhaven

// Query parameter names understood by the wallhaven.cc search API.
const (
	ParamSorting    = "sorting"
	ParamOrder      = "order"
	ParamSeed       = "seed"
	ParamPage       = "page"
	ParamCategories = "categories"
	ParamPurity     = "purity"
	ParamAtLeast    = "atleast"
	ParamRatios     = "ratios"
	ParamColors     = "colors"
	ParamTopRange   = "topRange"
	ParamAPIKey     = "apikey"
)

// Default values for the wallhaven.cc search policy.
const (
	DefaultSearchURL  = "https://wallhaven.cc/api/v1/search" // DefaultSearchURL is the URL used to search for images on wallhaven API
	DefaultSorting    = "random"                             // DefaultSorting picks a random ordering seeded by DefaultSeed
	DefaultOrder      = "desc"
	DefaultSeed       = "1"
	DefaultPage       = 1
	DefaultCategories = "111"       // general, anime, people
	DefaultPurity     = "100"       // sfw only
	DefaultAtLeast    = "1920x1080" // DefaultAtLeast is the minimum resolution when the caller supplies none
	DefaultRatios     = "16x9"
)

// Sorting modes accepted by the API.
const (
	SortDateAdded = "date_added"
	SortRelevance = "relevance"
	SortRandom    = "random"
	SortViews     = "views"
	SortFavorites = "favorites"
	SortToplist   = "toplist"
)

// Time ranges for toplist sorting.
const (
	Range1Day   = "1d"
	Range3Days  = "3d"
	Range1Week  = "1w"
	Range1Month = "1M"
	Range3Month = "3M"
	Range6Month = "6M"
	Range1Year  = "1y"
)
