package router_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/rogerio-castellano/storefront/internal/http/handlers"
	"github.com/rogerio-castellano/storefront/internal/models"
)

func TestGetNewArrivalsHandler(t *testing.T) {
	e := newTestEnv(t)
	e.server.Clock = func() time.Time { return time.Date(2025, 4, 20, 15, 0, 0, 0, time.UTC) }

	w := e.do(http.MethodGet, "/new-arrivals", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var groups []handlers.NewArrivalGroup
	decode(t, w, &groups)
	if len(groups) != 3 {
		t.Fatalf("expected 3 category groups, got %d", len(groups))
	}
	want := []struct {
		category string
		items    int
	}{{"Home & Kitchen", 3}, {"Personal Care", 2}, {"Fashion", 3}}
	for i, g := range groups {
		if g.Category != want[i].category || len(g.Items) != want[i].items {
			t.Errorf("group %d: expected %s with %d items, got %s with %d", i, want[i].category, want[i].items, g.Category, len(g.Items))
		}
	}

	fashion := groups[2].Items
	if fashion[0].ID != "na6" || fashion[0].AddedLabel != "Added today" {
		t.Errorf("expected the backpack first, added today, got %+v", fashion[0])
	}
	if fashion[2].ID != "na8" || fashion[2].AddedLabel != "Added 8 days ago" {
		t.Errorf("unexpected oldest fashion item %+v", fashion[2])
	}

	t.Run("Category and search", func(t *testing.T) {
		w := e.do(http.MethodGet, "/new-arrivals?category=Personal+Care&search=deodorant", nil)
		var groups []handlers.NewArrivalGroup
		decode(t, w, &groups)
		if len(groups) != 1 || len(groups[0].Items) != 1 || groups[0].Items[0].ID != "na5" {
			t.Errorf("unexpected groups %+v", groups)
		}

		w = e.do(http.MethodGet, "/new-arrivals?search=nothing-matches", nil)
		groups = nil
		decode(t, w, &groups)
		if len(groups) != 0 {
			t.Errorf("expected no groups, got %+v", groups)
		}
	})

	t.Run("Hidden arrivals are left out", func(t *testing.T) {
		n, err := e.arrivals.GetByID("na3")
		if err != nil {
			t.Fatalf("missing seed arrival: %v", err)
		}
		n.Visible = false
		if _, err := e.arrivals.Update(n); err != nil {
			t.Fatalf("update failed: %v", err)
		}

		w := e.do(http.MethodGet, "/new-arrivals?category=Home+%26+Kitchen", nil)
		var groups []handlers.NewArrivalGroup
		decode(t, w, &groups)
		if len(groups) != 1 || len(groups[0].Items) != 2 {
			t.Errorf("expected 2 visible home items, got %+v", groups)
		}

		w = e.do(http.MethodPost, "/cart/items", handlers.AddItemRequest{ProductID: "na3"})
		if w.Code != http.StatusNotFound {
			t.Errorf("expected hidden arrival to be unavailable, got %d", w.Code)
		}
	})
}

func TestNewArrivalCartAndWishlist(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(http.MethodPost, "/cart/items", handlers.AddItemRequest{ProductID: "na1"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	sid := sessionOf(t, w)
	var cart handlers.CartResult
	decode(t, w, &cart)
	if len(cart.Cart.Items) != 1 {
		t.Fatalf("expected one cart line, got %+v", cart.Cart)
	}
	line := cart.Cart.Items[0]
	want := models.CatalogItem{
		ID:          "na1",
		Name:        "Bamboo Dish Rack",
		Price:       34.99,
		Image:       "https://images.unsplash.com/photo-1600585152220-90363fe7e115?auto=format&fit=crop&w=300&q=80",
		Description: "Sustainable bamboo dish drying rack with water collection tray",
	}
	if line.CatalogItem != want || line.Quantity != 1 {
		t.Errorf("unexpected cart line %+v", line)
	}
	if cart.Notices[0].Message != "Bamboo Dish Rack added to cart" {
		t.Errorf("unexpected notice %q", cart.Notices[0].Message)
	}

	w = e.do(http.MethodPost, "/wishlist/items", handlers.AddItemRequest{ProductID: "na6"}, withSession(sid)...)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var wl handlers.WishlistResult
	decode(t, w, &wl)
	if wl.Wishlist.Count != 1 || wl.Wishlist.Items[0].Name != "Recycled Plastic Backpack" {
		t.Errorf("unexpected wishlist %+v", wl.Wishlist)
	}

	w = e.do(http.MethodGet, "/new-arrivals?category=fashion", nil, withSession(sid)...)
	var groups []handlers.NewArrivalGroup
	decode(t, w, &groups)
	if len(groups) != 1 || !groups[0].Items[0].InWishlist || groups[0].Items[1].InWishlist {
		t.Errorf("expected only the backpack to be marked saved, got %+v", groups)
	}

	w = e.do(http.MethodPost, "/wishlist/items", handlers.AddItemRequest{ProductID: "na99"}, withSession(sid)...)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for an unknown id, got %d", w.Code)
	}
}

func TestAdminNewArrivalHandlers(t *testing.T) {
	e := newTestEnv(t)
	e.server.Clock = func() time.Time { return time.Date(2025, 4, 22, 9, 30, 0, 0, time.UTC) }

	w := e.do(http.MethodGet, "/admin/new-arrivals", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without a token, got %d", w.Code)
	}

	w = e.admin(http.MethodGet, "/admin/new-arrivals?category=all&search=recycled", nil)
	var listed []models.NewArrival
	decode(t, w, &listed)
	if len(listed) != 2 {
		t.Errorf("expected 2 recycled arrivals, got %d", len(listed))
	}

	req := handlers.NewArrivalRequest{
		Name:        "Solar Lantern",
		Category:    "Outdoor",
		Price:       39.99,
		Image:       "https://example.com/lantern.jpg",
		Description: "Collapsible lantern charged by the sun",
		Visible:     false,
	}
	w = e.admin(http.MethodPost, "/admin/new-arrivals", req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}
	var created models.NewArrival
	decode(t, w, &created)
	if created.ID == "" || !created.DateAdded.Equal(time.Date(2025, 4, 22, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected arrival %+v", created)
	}

	w = e.admin(http.MethodGet, "/admin/new-arrivals?category=Outdoor", nil)
	listed = nil
	decode(t, w, &listed)
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Errorf("expected hidden arrival in the admin list, got %+v", listed)
	}
	w = e.do(http.MethodGet, "/new-arrivals?category=Outdoor", nil)
	var groups []handlers.NewArrivalGroup
	decode(t, w, &groups)
	if len(groups) != 0 {
		t.Errorf("expected hidden arrival to stay off the storefront, got %+v", groups)
	}

	w = e.admin(http.MethodPost, "/admin/new-arrivals", handlers.NewArrivalRequest{Category: "Toys"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", w.Code)
	}
	var errs []handlers.ValidationError
	decode(t, w, &errs)
	if len(errs) != 5 {
		t.Errorf("expected 5 validation errors, got %+v", errs)
	}

	req.Visible = true
	req.Price = 34.99
	w = e.admin(http.MethodPut, "/admin/new-arrivals/"+created.ID, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var updated models.NewArrival
	decode(t, w, &updated)
	if !updated.Visible || updated.Price != 34.99 || !updated.DateAdded.Equal(created.DateAdded) {
		t.Errorf("unexpected update %+v", updated)
	}

	w = e.do(http.MethodGet, "/new-arrivals?category=Outdoor", nil)
	groups = nil
	decode(t, w, &groups)
	if len(groups) != 1 || groups[0].Items[0].AddedLabel != "Added today" {
		t.Errorf("expected the lantern on the storefront, got %+v", groups)
	}

	w = e.admin(http.MethodPut, "/admin/new-arrivals/missing", req)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}

	w = e.admin(http.MethodDelete, "/admin/new-arrivals/"+created.ID, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}
	w = e.admin(http.MethodGet, "/admin/new-arrivals/"+created.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}
