package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/storefront/internal/http/middleware"
	"github.com/rogerio-castellano/storefront/internal/session"
)

// GetWishlistHandler godoc
// @Summary Show the wishlist
// @Tags wishlist
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Success 200 {object} WishlistResponse
// @Router /wishlist [get]
func (s *Server) GetWishlistHandler(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())
	s.respond(w, http.StatusOK, wishlistResponse(sess.Wishlist))
}

// AddWishlistItemHandler godoc
// @Summary Save a product to the wishlist
// @Description Adding a product that is already saved changes nothing.
// @Tags wishlist
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Param item body AddItemRequest true "Product to save"
// @Success 200 {object} WishlistResult
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Not found"
// @Router /wishlist/items [post]
func (s *Server) AddWishlistItemHandler(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	item, _, ok := s.catalogItem(w, req.ProductID)
	if !ok {
		return
	}

	sess := middleware.SessionFrom(r.Context())
	var resp WishlistResult
	resp.Notices, _ = sess.Do(func() error {
		sess.Wishlist.Add(r.Context(), item)
		resp.Wishlist = wishlistResponse(sess.Wishlist)
		return nil
	})
	s.respond(w, http.StatusOK, resp)
}

// GetWishlistItemHandler godoc
// @Summary Check whether a product is in the wishlist
// @Tags wishlist
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Param id path string true "Product ID"
// @Success 200 {object} WishlistContainsResult
// @Router /wishlist/items/{id} [get]
func (s *Server) GetWishlistItemHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sess := middleware.SessionFrom(r.Context())
	s.respond(w, http.StatusOK, WishlistContainsResult{ID: id, InWishlist: sess.Wishlist.Contains(id)})
}

// RemoveWishlistItemHandler godoc
// @Summary Remove a product from the wishlist
// @Tags wishlist
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Param id path string true "Product ID"
// @Success 200 {object} WishlistResult
// @Router /wishlist/items/{id} [delete]
func (s *Server) RemoveWishlistItemHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	sess := middleware.SessionFrom(r.Context())
	var resp WishlistResult
	resp.Notices, _ = sess.Do(func() error {
		sess.Wishlist.Remove(r.Context(), id)
		resp.Wishlist = wishlistResponse(sess.Wishlist)
		return nil
	})
	s.respond(w, http.StatusOK, resp)
}

// ClearWishlistHandler godoc
// @Summary Empty the wishlist
// @Tags wishlist
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Success 200 {object} WishlistResult
// @Router /wishlist [delete]
func (s *Server) ClearWishlistHandler(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())
	var resp WishlistResult
	resp.Notices, _ = sess.Do(func() error {
		sess.Wishlist.Clear(r.Context())
		resp.Wishlist = wishlistResponse(sess.Wishlist)
		return nil
	})
	s.respond(w, http.StatusOK, resp)
}

// WishlistItemToCartHandler godoc
// @Summary Add a saved product to the cart
// @Description The product stays in the wishlist.
// @Tags wishlist
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Param id path string true "Product ID"
// @Success 200 {object} MoveToCartResult
// @Failure 404 {string} string "Not in wishlist"
// @Router /wishlist/items/{id}/cart [post]
func (s *Server) WishlistItemToCartHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	sess := middleware.SessionFrom(r.Context())
	var resp MoveToCartResult
	notices, err := sess.Do(func() error {
		if err := sess.AddWishlistItemToCart(r.Context(), id); err != nil {
			return err
		}
		resp.Cart = cartResponse(sess.Cart)
		resp.Wishlist = wishlistResponse(sess.Wishlist)
		return nil
	})
	if errors.Is(err, session.ErrNotInWishlist) {
		http.Error(w, "item is not in the wishlist", http.StatusNotFound)
		return
	}
	resp.Notices = notices
	s.respond(w, http.StatusOK, resp)
}

// MoveAllToCartHandler godoc
// @Summary Move every wishlist item to the cart
// @Tags wishlist
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Success 200 {object} MoveToCartResult
// @Router /wishlist/move-to-cart [post]
func (s *Server) MoveAllToCartHandler(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())
	var resp MoveToCartResult
	resp.Notices, _ = sess.Do(func() error {
		sess.MoveAllToCart(r.Context())
		resp.Cart = cartResponse(sess.Cart)
		resp.Wishlist = wishlistResponse(sess.Wishlist)
		return nil
	})
	s.respond(w, http.StatusOK, resp)
}
