package wallhaven

import (
	"net/url"
	"strconv"
	"strings"
)

// SearchParameters is one outbound search request. Values are forwarded to the
// API verbatim; nothing here is validated. Optional fields are omitted from the
// query when empty.
type SearchParameters struct {
	Sorting    string
	Order      string
	Seed       string
	Page       int
	Categories string // 3-digit bitmask: general, anime, people
	Purity     string // 3-digit bitmask: sfw, sketchy, nsfw
	AtLeast    string // minimum resolution, e.g. "1920x1080"
	Ratios     string // aspect ratio, e.g. "16x9"
	Colors     string // optional hex color without '#'
	TopRange   string // optional, e.g. "3d"; only honored with toplist sorting
	APIKey     string // optional
}

// DefaultSearchParameters returns the fixed search policy.
func DefaultSearchParameters() SearchParameters {
	return SearchParameters{
		Sorting:    DefaultSorting,
		Order:      DefaultOrder,
		Seed:       DefaultSeed,
		Page:       DefaultPage,
		Categories: DefaultCategories,
		Purity:     DefaultPurity,
		AtLeast:    DefaultAtLeast,
		Ratios:     DefaultRatios,
	}
}

// WithAtLeast returns a copy with the minimum resolution replaced when res is
// not empty.
func (p SearchParameters) WithAtLeast(res string) SearchParameters {
	if res != "" {
		p.AtLeast = res
	}
	return p
}

// WithAPIKey returns a copy carrying key.
func (p SearchParameters) WithAPIKey(key string) SearchParameters {
	p.APIKey = key
	return p
}

// Values encodes the parameters as url.Values.
func (p SearchParameters) Values() url.Values {
	q := url.Values{}
	set := func(k, v string) {
		if v != "" {
			q.Set(k, v)
		}
	}
	set(ParamSorting, p.Sorting)
	set(ParamOrder, p.Order)
	set(ParamSeed, p.Seed)
	if p.Page > 0 {
		q.Set(ParamPage, strconv.Itoa(p.Page))
	}
	set(ParamCategories, p.Categories)
	set(ParamPurity, p.Purity)
	set(ParamAtLeast, p.AtLeast)
	set(ParamRatios, p.Ratios)
	set(ParamColors, p.Colors)
	set(ParamTopRange, p.TopRange)
	set(ParamAPIKey, p.APIKey)
	return q
}

// URL appends the encoded query to base. Any query already present on base is
// replaced.
func (p SearchParameters) URL(base string) string {
	if i := strings.IndexByte(base, '?'); i >= 0 {
		base = base[:i]
	}
	return base + "?" + p.Values().Encode()
}
