package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	models "github.com/rogerio-castellano/storefront/internal/models"
	repo "github.com/rogerio-castellano/storefront/internal/repo"
)

func productResponse(p models.Product) ProductResponse {
	return ProductResponse{Product: p, LowStock: p.Stock < repo.LowStockThreshold}
}

func productFromRequest(id string, req ProductRequest) models.Product {
	return models.Product{
		ID:          id,
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
		Stock:       req.Stock,
		Rating:      req.Rating,
		Reviews:     req.Reviews,
		Featured:    req.Featured,
		Discount:    req.Discount,
	}
}

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product to the back-office inventory
// @Tags admin-products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {object} []ValidationError
// @Failure 409 {string} string "Duplicated name"
// @Router /admin/products [post]
func (s *Server) CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if validationErrors := validateProduct(req); len(validationErrors) > 0 {
		s.respond(w, http.StatusBadRequest, validationErrors)
		return
	}

	created, err := s.Products.Create(productFromRequest("", req))
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			http.Error(w, "could not create product: product name duplicated", http.StatusConflict)
			return
		}
		http.Error(w, "could not create product", http.StatusInternalServerError)
		return
	}

	s.respond(w, http.StatusCreated, productResponse(created))
}

// GetProductByIDAdminHandler godoc
// @Summary Get product by ID
// @Tags admin-products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /admin/products/{id} [get]
func (s *Server) GetProductByIDAdminHandler(w http.ResponseWriter, r *http.Request) {
	product, err := s.Products.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}
	s.respond(w, http.StatusOK, productResponse(product))
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags admin-products
// @Param id path string true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /admin/products/{id} [delete]
// @Security BearerAuth
func (s *Server) DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.Products.Delete(chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete product", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Tags admin-products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body ProductRequest true "Updated product"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} []ValidationError
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Duplicated name"
// @Failure 500 {string} string "Internal error"
// @Router /admin/products/{id} [put]
// @Security BearerAuth
func (s *Server) UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if validationErrors := validateProduct(req); len(validationErrors) > 0 {
		s.respond(w, http.StatusBadRequest, validationErrors)
		return
	}

	updated, err := s.Products.Update(productFromRequest(chi.URLParam(r, "id"), req))
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrProductNotFound):
			http.Error(w, "product not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrDuplicatedValueUnique):
			http.Error(w, "could not update product: product name duplicated", http.StatusConflict)
		default:
			http.Error(w, "could not update product", http.StatusInternalServerError)
		}
		return
	}

	s.respond(w, http.StatusOK, productResponse(updated))
}

// AdjustStockHandler godoc
// @Summary Adjust product stock
// @Tags admin-products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param adjustment body StockAdjustmentRequest true "Stock delta"
// @Success 200 {object} ProductResponse
// @Failure 400 {string} string "Invalid change"
// @Failure 404 {string} string "Not found"
// @Router /admin/products/{id}/stock [post]
// @Security BearerAuth
func (s *Server) AdjustStockHandler(w http.ResponseWriter, r *http.Request) {
	var req StockAdjustmentRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.Delta == 0 {
		http.Error(w, "delta must not be zero", http.StatusBadRequest)
		return
	}

	p, err := s.Products.AdjustStock(chi.URLParam(r, "id"), req.Delta)
	switch {
	case errors.Is(err, repo.ErrProductNotFound):
		http.Error(w, "product not found", http.StatusNotFound)
		return
	case errors.Is(err, repo.ErrInvalidStockChange):
		http.Error(w, "stock cannot be negative", http.StatusBadRequest)
		return
	case err != nil:
		http.Error(w, "could not adjust stock", http.StatusInternalServerError)
		return
	}
	s.respond(w, http.StatusOK, productResponse(p))
}

// FilterProductsHandler godoc
// @Summary Filter and paginate back-office products
// @Tags admin-products
// @Produce json
// @Security BearerAuth
// @Param name query string false "Filter by name"
// @Param category query string false "Filter by category name or slug"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param minStock query int false "Minimum stock"
// @Param maxStock query int false "Maximum stock"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} ProductsSearchResult
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /admin/products [get]
func (s *Server) FilterProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := repo.ProductFilter{
		Name:     q.Get("name"),
		Category: q.Get("category"),
		MinPrice: parseFloatPtr(q.Get("minPrice")),
		MaxPrice: parseFloatPtr(q.Get("maxPrice")),
		MinStock: parseIntPtr(q.Get("minStock")),
		MaxStock: parseIntPtr(q.Get("maxStock")),
		Offset:   parseIntPtr(q.Get("offset")),
		Limit:    parseIntPtr(q.Get("limit")),
	}
	if !checkPage(w, filter.Offset, filter.Limit) {
		return
	}

	products, total, err := s.Products.Filter(filter)
	if err != nil {
		http.Error(w, "could not filter products", http.StatusInternalServerError)
		return
	}

	resp := ProductsSearchResult{
		Data: make([]ProductResponse, len(products)),
		Meta: Meta{TotalCount: total},
	}
	for i, p := range products {
		resp.Data[i] = productResponse(p)
	}
	s.respond(w, http.StatusOK, resp)
}
