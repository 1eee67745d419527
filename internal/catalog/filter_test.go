package catalog

import (
	"math"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func seedCatalog(t *testing.T) *Catalog {
	t.Helper()
	d, err := seed.Default()
	require.NoError(t, err)
	return New(d.Products, d.Categories)
}

func TestApply_FeaturedFirstOnDefaultFilter(t *testing.T) {
	c := seedCatalog(t)

	got := Apply(c.Products(), c.DefaultFilter())

	want := []string{"1", "3", "4", "8", "2", "5", "6", "7"}
	if diff := cmp.Diff(want, ids(got)); diff != "" {
		t.Errorf("featured order mismatch (-want +got):\n%s", diff)
	}
}

func TestApply_PriceRange(t *testing.T) {
	products := []models.Product{
		{ID: "1", Name: "A", Price: 10},
		{ID: "2", Name: "B", Price: 30},
	}

	got := Apply(products, FilterState{MinPrice: 0, MaxPrice: 20, Sort: SortFeatured})
	assert.Equal(t, []string{"1"}, ids(got))

	// bounds are inclusive
	got = Apply(products, FilterState{MinPrice: 10, MaxPrice: 30})
	assert.Equal(t, []string{"1", "2"}, ids(got))
}

func TestApply_Search(t *testing.T) {
	products := []models.Product{{ID: "1", Name: "Bamboo Toothbrush Set", Price: 12.99}}
	all := FilterState{MaxPrice: math.MaxFloat64}

	for _, search := range []string{"toothbrush", "TOOTHBRUSH", "ToothBrush", ""} {
		fs := all
		fs.Search = search
		assert.Len(t, Apply(products, fs), 1, "search %q", search)
	}

	fs := all
	fs.Search = "zzz"
	got := Apply(products, fs)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestApply_SearchMatchesNameOnly(t *testing.T) {
	products := []models.Product{{ID: "1", Name: "Candle", Description: "toothbrush holder", Price: 1}}
	got := Apply(products, FilterState{Search: "toothbrush", MaxPrice: 100})
	assert.Empty(t, got)
}

func TestApply_Category(t *testing.T) {
	c := seedCatalog(t)

	tests := []struct {
		category string
		want     []string
	}{
		{"Home & Living", []string{"3", "6"}},
		{"home & living", []string{"3", "6"}},
		{"home-&-living", []string{"3", "6"}},
		{"personal-care", []string{"1", "7"}},
		{"PERSONAL CARE", []string{"1", "7"}},
		{"toys", []string{}},
		{"", []string{"1", "3", "4", "8", "2", "5", "6", "7"}},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			fs := c.DefaultFilter()
			fs.Category = tt.category
			assert.Equal(t, tt.want, ids(Apply(c.Products(), fs)))
		})
	}
}

func TestApply_Sort(t *testing.T) {
	products := []models.Product{
		{ID: "a", Name: "pear", Price: 5},
		{ID: "b", Name: "Apple", Price: 5, Featured: true},
		{ID: "c", Name: "banana", Price: 1},
		{ID: "d", Name: "cherry", Price: 9, Featured: true},
	}
	base := FilterState{MaxPrice: 100}

	tests := []struct {
		key  SortKey
		want []string
	}{
		{SortPriceLow, []string{"c", "a", "b", "d"}},
		{SortPriceHigh, []string{"d", "a", "b", "c"}},
		{SortName, []string{"b", "c", "d", "a"}},
		{SortFeatured, []string{"b", "d", "a", "c"}},
		{SortKey("bogus"), []string{"b", "d", "a", "c"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			fs := base
			fs.Sort = tt.key
			assert.Equal(t, tt.want, ids(Apply(products, fs)))
		})
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	products := []models.Product{
		{ID: "1", Price: 3},
		{ID: "2", Price: 1},
	}
	Apply(products, FilterState{MaxPrice: 10, Sort: SortPriceLow})
	assert.Equal(t, []string{"1", "2"}, ids(products))
}

func TestFilterFromQuery(t *testing.T) {
	base := DefaultFilter(34.99)
	q := url.Values{}
	q.Set("search", " bag ")
	q.Set("category", "home-&-living")
	q.Set("maxPrice", "20")
	q.Set("minPrice", "oops")
	q.Set("sort", "PRICE-HIGH")

	fs := FilterFromQuery(q, base)

	assert.Equal(t, FilterState{Search: " bag ", Category: "home-&-living", MinPrice: 0, MaxPrice: 20, Sort: SortPriceHigh}, fs)
	assert.Equal(t, "category=home-%26-living&search=+bag+", fs.Query().Encode())
}

func TestFilterFromQuery_WhitespaceSearchIsKept(t *testing.T) {
	q := url.Values{}
	q.Set("search", " ")

	fs := FilterFromQuery(q, DefaultFilter(100))
	assert.Equal(t, " ", fs.Search)

	products := []models.Product{
		{ID: "1", Name: "Bamboo Toothbrush Set", Price: 12.99},
		{ID: "2", Name: "Notebook", Price: 9.99},
	}
	got := Apply(products, fs)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestFilterFromQuery_NonFiniteBoundsIgnored(t *testing.T) {
	for _, v := range []string{"NaN", "Inf", "-Inf", "+Inf"} {
		q := url.Values{}
		q.Set("minPrice", v)
		q.Set("maxPrice", v)

		fs := FilterFromQuery(q, DefaultFilter(34.99))
		assert.Equal(t, 0.0, fs.MinPrice, v)
		assert.Equal(t, 34.99, fs.MaxPrice, v)
	}
}

func TestParseSortKey(t *testing.T) {
	tests := map[string]SortKey{
		"price-low":        SortPriceLow,
		"price-ascending":  SortPriceLow,
		"price-high":       SortPriceHigh,
		"Price-Descending": SortPriceHigh,
		"name":             SortName,
		"name-ascending":   SortName,
		"featured":         SortFeatured,
		"rating":           SortFeatured,
		"":                 SortFeatured,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseSortKey(in), in)
	}
}

func TestFilterFromQuery_Empty(t *testing.T) {
	fs := FilterFromQuery(url.Values{}, FilterState{MaxPrice: 50})
	assert.Equal(t, SortFeatured, fs.Sort)
	assert.Empty(t, fs.Query())
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "food-&-drinks", Slug("Food & Drinks"))
	assert.Equal(t, "office-supplies", Slug("Office   Supplies"))
}
