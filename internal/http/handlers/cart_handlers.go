package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/storefront/internal/cart"
	"github.com/rogerio-castellano/storefront/internal/catalog"
	"github.com/rogerio-castellano/storefront/internal/http/middleware"
	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/repo"
	"github.com/rogerio-castellano/storefront/internal/wishlist"
)

func cartResponse(c *cart.Store) CartResponse {
	return CartResponse{
		Items:      c.Lines(),
		TotalItems: c.TotalItems(),
		Subtotal:   c.Subtotal(),
	}
}

func wishlistResponse(wl *wishlist.Store) WishlistResponse {
	return WishlistResponse{Items: wl.Items(), Count: wl.Len()}
}

// catalogItem resolves a product or visible new-arrival id for the cart or
// wishlist, writing the error response itself when it cannot. inStock is false
// only for products with no stock left.
func (s *Server) catalogItem(w http.ResponseWriter, id string) (item models.CatalogItem, inStock, ok bool) {
	if id == "" {
		http.Error(w, "product_id is required", http.StatusBadRequest)
		return models.CatalogItem{}, false, false
	}
	p, err := s.Catalog.Get(id)
	if err == nil {
		return models.ItemFromProduct(p), p.Stock > 0, true
	}
	if !errors.Is(err, catalog.ErrProductNotFound) {
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return models.CatalogItem{}, false, false
	}

	if s.NewArrivals != nil {
		n, err := s.NewArrivals.GetByID(id)
		if err == nil && n.Visible {
			return models.ItemFromNewArrival(n), true, true
		}
		if err != nil && !errors.Is(err, repo.ErrNewArrivalNotFound) {
			http.Error(w, "could not fetch product", http.StatusInternalServerError)
			return models.CatalogItem{}, false, false
		}
	}
	http.Error(w, "product not found", http.StatusNotFound)
	return models.CatalogItem{}, false, false
}

// GetCartHandler godoc
// @Summary Show the cart
// @Tags cart
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Success 200 {object} CartResponse
// @Router /cart [get]
func (s *Server) GetCartHandler(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())
	s.respond(w, http.StatusOK, cartResponse(sess.Cart))
}

// AddCartItemHandler godoc
// @Summary Add one unit of a product to the cart
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Param item body AddItemRequest true "Product to add"
// @Success 200 {object} CartResult
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Out of stock"
// @Router /cart/items [post]
func (s *Server) AddCartItemHandler(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	item, inStock, ok := s.catalogItem(w, req.ProductID)
	if !ok {
		return
	}
	if !inStock {
		http.Error(w, "product is out of stock", http.StatusConflict)
		return
	}

	sess := middleware.SessionFrom(r.Context())
	var resp CartResult
	resp.Notices, _ = sess.Do(func() error {
		sess.Cart.Add(r.Context(), item)
		resp.Cart = cartResponse(sess.Cart)
		return nil
	})
	s.respond(w, http.StatusOK, resp)
}

// UpdateCartItemHandler godoc
// @Summary Set the quantity of a cart line
// @Description A quantity of zero or less removes the line.
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Param id path string true "Product ID"
// @Param quantity body UpdateQuantityRequest true "New quantity"
// @Success 200 {object} CartResult
// @Failure 400 {string} string "Invalid input"
// @Router /cart/items/{id} [put]
func (s *Server) UpdateCartItemHandler(w http.ResponseWriter, r *http.Request) {
	var req UpdateQuantityRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	id := chi.URLParam(r, "id")

	sess := middleware.SessionFrom(r.Context())
	var resp CartResult
	resp.Notices, _ = sess.Do(func() error {
		sess.Cart.UpdateQuantity(r.Context(), id, req.Quantity)
		resp.Cart = cartResponse(sess.Cart)
		return nil
	})
	s.respond(w, http.StatusOK, resp)
}

// RemoveCartItemHandler godoc
// @Summary Remove a cart line
// @Tags cart
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Param id path string true "Product ID"
// @Success 200 {object} CartResult
// @Router /cart/items/{id} [delete]
func (s *Server) RemoveCartItemHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	sess := middleware.SessionFrom(r.Context())
	var resp CartResult
	resp.Notices, _ = sess.Do(func() error {
		sess.Cart.Remove(r.Context(), id)
		resp.Cart = cartResponse(sess.Cart)
		return nil
	})
	s.respond(w, http.StatusOK, resp)
}

// ClearCartHandler godoc
// @Summary Empty the cart
// @Tags cart
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Success 200 {object} CartResult
// @Router /cart [delete]
func (s *Server) ClearCartHandler(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())
	var resp CartResult
	resp.Notices, _ = sess.Do(func() error {
		sess.Cart.Clear(r.Context())
		resp.Cart = cartResponse(sess.Cart)
		return nil
	})
	s.respond(w, http.StatusOK, resp)
}
