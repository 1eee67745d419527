package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/storefront/internal/catalog"
	"github.com/rogerio-castellano/storefront/internal/http/middleware"
	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/repo"
)

// SimilarProductsLimit is how many related products a detail view shows.
const SimilarProductsLimit = 4

// GetProductsHandler godoc
// @Summary Browse the catalog
// @Description Filters by name search, category (name or slug) and price range, then sorts.
// @Tags catalog
// @Produce json
// @Param search query string false "Case-insensitive name search"
// @Param category query string false "Category name or slug"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param sort query string false "featured | price-low | price-high | name"
// @Success 200 {object} CatalogResult
// @Router /products [get]
func (s *Server) GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	fs := catalog.FilterFromQuery(r.URL.Query(), s.Catalog.DefaultFilter())
	products := s.Catalog.Search(fs)

	s.respond(w, http.StatusOK, CatalogResult{
		Data:   products,
		Meta:   Meta{TotalCount: len(products)},
		Filter: fs,
		Query:  fs.Query().Encode(),
	})
}

// GetProductByIDHandler godoc
// @Summary Get a catalog product
// @Tags catalog
// @Produce json
// @Param id path string true "Product ID"
// @Param X-Session-ID header string false "Visitor session"
// @Success 200 {object} ProductDetailResult
// @Failure 404 {string} string "Not found"
// @Router /products/{id} [get]
func (s *Server) GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := s.Catalog.Get(id)
	if errors.Is(err, catalog.ErrProductNotFound) {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	inWishlist := false
	if sess := middleware.SessionFrom(r.Context()); sess != nil {
		inWishlist = sess.Wishlist.Contains(p.ID)
	}

	s.respond(w, http.StatusOK, ProductDetailResult{
		Product:         p,
		DiscountedPrice: p.DiscountedPrice(),
		InWishlist:      inWishlist,
		Similar:         s.Catalog.Similar(p.ID, SimilarProductsLimit),
	})
}

// GetFeaturedProductsHandler godoc
// @Summary Featured products for the home page
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Product
// @Router /products/featured [get]
func (s *Server) GetFeaturedProductsHandler(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, s.Catalog.Featured())
}

// GetCategoriesHandler godoc
// @Summary List categories with their slugs
// @Tags catalog
// @Produce json
// @Success 200 {array} catalog.Category
// @Router /categories [get]
func (s *Server) GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, s.Catalog.Categories())
}

// GetActiveDealsHandler godoc
// @Summary List active deals
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Deal
// @Failure 500 {string} string "Internal error"
// @Router /deals [get]
func (s *Server) GetActiveDealsHandler(w http.ResponseWriter, r *http.Request) {
	deals, err := s.Deals.GetAll()
	if err != nil {
		http.Error(w, "could not fetch deals", http.StatusInternalServerError)
		return
	}
	active := []models.Deal{}
	for _, d := range deals {
		if d.Active {
			active = append(active, d)
		}
	}
	s.respond(w, http.StatusOK, active)
}

// ValidateCouponHandler godoc
// @Summary Check a coupon code
// @Tags catalog
// @Accept json
// @Produce json
// @Param coupon body CouponRequest true "Coupon code"
// @Success 200 {object} CouponResult
// @Failure 400 {string} string "Empty code"
// @Failure 404 {string} string "Invalid code"
// @Router /coupons/validate [post]
func (s *Server) ValidateCouponHandler(w http.ResponseWriter, r *http.Request) {
	var req CouponRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	d, err := repo.ValidateCoupon(s.Deals, req.Code)
	switch {
	case errors.Is(err, repo.ErrEmptyCoupon):
		http.Error(w, "Please enter a coupon code", http.StatusBadRequest)
		return
	case errors.Is(err, repo.ErrInvalidCoupon):
		http.Error(w, "Invalid coupon code", http.StatusNotFound)
		return
	case err != nil:
		http.Error(w, "could not validate coupon", http.StatusInternalServerError)
		return
	}

	s.respond(w, http.StatusOK, CouponResult{Code: d.Code, Title: d.Title, DiscountPercent: d.DiscountPercent})
}
