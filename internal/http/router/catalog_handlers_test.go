package router_test

import (
	"net/http"
	"slices"
	"testing"

	"github.com/rogerio-castellano/storefront/internal/catalog"
	"github.com/rogerio-castellano/storefront/internal/http/handlers"
	"github.com/rogerio-castellano/storefront/internal/models"
)

func productIDs(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestGetProductsHandler(t *testing.T) {
	e := newTestEnv(t)

	t.Run("Default filter puts featured products first", func(t *testing.T) {
		w := e.do(http.MethodGet, "/products", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		sessionOf(t, w)

		var resp handlers.CatalogResult
		decode(t, w, &resp)
		want := []string{"1", "3", "4", "8", "2", "5", "6", "7"}
		if got := productIDs(resp.Data); !slices.Equal(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
		if resp.Meta.TotalCount != 8 {
			t.Errorf("expected total 8, got %d", resp.Meta.TotalCount)
		}
		if resp.Filter.Sort != catalog.SortFeatured {
			t.Errorf("expected featured sort, got %q", resp.Filter.Sort)
		}
	})

	t.Run("Category slug and price sort", func(t *testing.T) {
		w := e.do(http.MethodGet, "/products?category=personal-care&sort=price-low", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}

		var resp handlers.CatalogResult
		decode(t, w, &resp)
		if got := productIDs(resp.Data); !slices.Equal(got, []string{"1", "7"}) {
			t.Errorf("expected [1 7], got %v", got)
		}
		if resp.Query != "category=personal-care" {
			t.Errorf("unexpected query %q", resp.Query)
		}
	})

	t.Run("Price range and search", func(t *testing.T) {
		w := e.do(http.MethodGet, "/products?search=BAG&maxPrice=20", nil)

		var resp handlers.CatalogResult
		decode(t, w, &resp)
		if got := productIDs(resp.Data); !slices.Equal(got, []string{"3"}) {
			t.Errorf("expected [3], got %v", got)
		}
	})
}

func TestGetProductByIDHandler(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(http.MethodGet, "/products/6", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handlers.ProductDetailResult
	decode(t, w, &resp)
	if resp.Product.Name != "Natural Soy Wax Candle" {
		t.Errorf("unexpected product %q", resp.Product.Name)
	}
	if !near(resp.DiscountedPrice, 16.99) {
		t.Errorf("expected discounted price 16.99, got %v", resp.DiscountedPrice)
	}
	if resp.InWishlist {
		t.Error("expected product not to be in a fresh wishlist")
	}
	if got := productIDs(resp.Similar); !slices.Equal(got, []string{"3"}) {
		t.Errorf("expected similar [3], got %v", got)
	}

	w = e.do(http.MethodGet, "/products/99", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestGetFeaturedAndCategories(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(http.MethodGet, "/products/featured", nil)
	var featured []models.Product
	decode(t, w, &featured)
	if len(featured) != 4 {
		t.Errorf("expected 4 featured products, got %d", len(featured))
	}

	w = e.do(http.MethodGet, "/categories", nil)
	var categories []catalog.Category
	decode(t, w, &categories)
	if len(categories) != 6 {
		t.Fatalf("expected 6 categories, got %d", len(categories))
	}
	if categories[1] != (catalog.Category{Name: "Personal Care", Slug: "personal-care"}) {
		t.Errorf("unexpected category %+v", categories[1])
	}
}

func TestDealsAndCoupons(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(http.MethodGet, "/deals", nil)
	var deals []models.Deal
	decode(t, w, &deals)
	if len(deals) != 2 {
		t.Errorf("expected 2 active deals, got %d", len(deals))
	}

	tests := []struct {
		name   string
		code   string
		status int
	}{
		{"Valid code is normalized", " earth20 ", http.StatusOK},
		{"Empty code", "  ", http.StatusBadRequest},
		{"Inactive deal", "HOME15", http.StatusNotFound},
		{"Unknown code", "FREE100", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := e.do(http.MethodPost, "/coupons/validate", handlers.CouponRequest{Code: tt.code})
			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, w.Code)
			}
			if tt.status != http.StatusOK {
				return
			}
			var resp handlers.CouponResult
			decode(t, w, &resp)
			if resp.Code != "EARTH20" || resp.DiscountPercent != 20 {
				t.Errorf("unexpected coupon %+v", resp)
			}
		})
	}
}
