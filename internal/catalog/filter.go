package catalog

import (
	"math"
	"net/url"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/storefront/internal/models"
)

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortName      SortKey = "name"
)

// FilterState is the search/category/price/sort selection applied to the catalog.
type FilterState struct {
	Search   string  `json:"search"`
	Category string  `json:"category"`
	MinPrice float64 `json:"min_price"`
	MaxPrice float64 `json:"max_price"`
	Sort     SortKey `json:"sort"`
}

// DefaultFilter matches every product priced up to maxPrice, featured first.
func DefaultFilter(maxPrice float64) FilterState {
	return FilterState{MinPrice: 0, MaxPrice: maxPrice, Sort: SortFeatured}
}

var whitespace = regexp.MustCompile(`\s+`)

// Slug lower-cases a category name and replaces whitespace runs with hyphens.
func Slug(category string) string {
	return whitespace.ReplaceAllString(strings.ToLower(category), "-")
}

func matchesSearch(p models.Product, search string) bool {
	return search == "" || strings.Contains(strings.ToLower(p.Name), strings.ToLower(search))
}

func matchesCategory(p models.Product, category string) bool {
	if category == "" {
		return true
	}
	want := strings.ToLower(category)
	return strings.ToLower(p.Category) == want || Slug(p.Category) == want
}

func matchesPrice(p models.Product, lo, hi float64) bool {
	return p.Price >= lo && p.Price <= hi
}

// Apply runs the pipeline: search, category, price range, then a stable sort.
// It never modifies products and always returns a non-nil slice.
func Apply(products []models.Product, fs FilterState) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !matchesSearch(p, fs.Search) {
			continue
		}
		if !matchesCategory(p, fs.Category) {
			continue
		}
		if !matchesPrice(p, fs.MinPrice, fs.MaxPrice) {
			continue
		}
		filtered = append(filtered, p)
	}

	slices.SortStableFunc(filtered, compareFunc(fs.Sort))
	return filtered
}

func compareFunc(key SortKey) func(a, b models.Product) int {
	switch key {
	case SortPriceLow:
		return func(a, b models.Product) int { return cmpFloat(a.Price, b.Price) }
	case SortPriceHigh:
		return func(a, b models.Product) int { return cmpFloat(b.Price, a.Price) }
	case SortName:
		return func(a, b models.Product) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}
	default:
		return func(a, b models.Product) int { return featuredRank(a) - featuredRank(b) }
	}
}

func featuredRank(p models.Product) int {
	if p.Featured {
		return 0
	}
	return 1
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// ParseSortKey maps a query value to a sort key; unknown values fall back to featured.
// The long names (price-ascending, price-descending, name-ascending) are aliases.
func ParseSortKey(s string) SortKey {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(SortPriceLow), "price-ascending":
		return SortPriceLow
	case string(SortPriceHigh), "price-descending":
		return SortPriceHigh
	case string(SortName), "name-ascending":
		return SortName
	}
	return SortFeatured
}

// parseBound reads a finite price bound; anything else reports false.
func parseBound(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// FilterFromQuery seeds a filter from query parameters on top of base.
// search and category are the parameters the shop page round-trips; minPrice,
// maxPrice and sort are accepted as well. The search text is kept as typed.
// Unparseable or non-finite numbers keep the base bounds.
func FilterFromQuery(q url.Values, base FilterState) FilterState {
	fs := base
	fs.Search = q.Get("search")
	fs.Category = strings.TrimSpace(q.Get("category"))

	if v, ok := parseBound(q.Get("minPrice")); ok {
		fs.MinPrice = v
	}
	if v, ok := parseBound(q.Get("maxPrice")); ok {
		fs.MaxPrice = v
	}
	if s := q.Get("sort"); s != "" {
		fs.Sort = ParseSortKey(s)
	}
	if fs.Sort == "" {
		fs.Sort = SortFeatured
	}
	return fs
}

// Query writes search and category back as query parameters, omitting empty ones.
func (fs FilterState) Query() url.Values {
	q := url.Values{}
	if fs.Category != "" {
		q.Set("category", fs.Category)
	}
	if fs.Search != "" {
		q.Set("search", fs.Search)
	}
	return q
}
