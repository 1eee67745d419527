package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/storefront/internal/http/middleware"
	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/repo"
	"go.uber.org/zap"
)

// newArrivalFilter reads category and search. "all" or an empty category
// means every category.
func newArrivalFilter(r *http.Request, visibleOnly bool) repo.NewArrivalFilter {
	q := r.URL.Query()
	category := strings.TrimSpace(q.Get("category"))
	if strings.EqualFold(category, "all") {
		category = ""
	}
	return repo.NewArrivalFilter{
		Category:    category,
		Search:      strings.TrimSpace(q.Get("search")),
		VisibleOnly: visibleOnly,
	}
}

// GetNewArrivalsHandler godoc
// @Summary List visible new arrivals grouped by category
// @Tags catalog
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Param category query string false "Category name"
// @Param search query string false "Search in name and description"
// @Success 200 {array} NewArrivalGroup
// @Router /new-arrivals [get]
func (s *Server) GetNewArrivalsHandler(w http.ResponseWriter, r *http.Request) {
	found, err := s.NewArrivals.Filter(newArrivalFilter(r, true))
	if err != nil {
		http.Error(w, "could not list new arrivals", http.StatusInternalServerError)
		return
	}

	sess := middleware.SessionFrom(r.Context())
	now := s.now()
	byCategory := make(map[string][]NewArrivalView)
	for _, n := range found {
		byCategory[n.Category] = append(byCategory[n.Category], NewArrivalView{
			NewArrival: n,
			AddedLabel: n.AddedLabel(now),
			InWishlist: sess.Wishlist.Contains(n.ID),
		})
	}

	groups := []NewArrivalGroup{}
	for _, c := range models.NewArrivalCategories {
		if items := byCategory[c]; len(items) > 0 {
			groups = append(groups, NewArrivalGroup{Category: c, Items: items})
		}
	}
	s.respond(w, http.StatusOK, groups)
}

func newArrivalFromRequest(id string, req NewArrivalRequest) models.NewArrival {
	return models.NewArrival{
		ID:          id,
		Name:        strings.TrimSpace(req.Name),
		Category:    req.Category,
		Price:       req.Price,
		Image:       strings.TrimSpace(req.Image),
		Description: strings.TrimSpace(req.Description),
		DateAdded:   req.DateAdded,
		Visible:     req.Visible,
	}
}

// ListNewArrivalsHandler godoc
// @Summary List new arrivals, hidden ones included
// @Tags admin-new-arrivals
// @Produce json
// @Security BearerAuth
// @Param category query string false "Category name, or all"
// @Param search query string false "Search in name and description"
// @Success 200 {array} models.NewArrival
// @Router /admin/new-arrivals [get]
func (s *Server) ListNewArrivalsHandler(w http.ResponseWriter, r *http.Request) {
	found, err := s.NewArrivals.Filter(newArrivalFilter(r, false))
	if err != nil {
		http.Error(w, "could not list new arrivals", http.StatusInternalServerError)
		return
	}
	s.respond(w, http.StatusOK, found)
}

// GetNewArrivalHandler godoc
// @Summary Get new arrival by ID
// @Tags admin-new-arrivals
// @Produce json
// @Security BearerAuth
// @Param id path string true "New arrival ID"
// @Success 200 {object} models.NewArrival
// @Failure 404 {string} string "Not found"
// @Router /admin/new-arrivals/{id} [get]
func (s *Server) GetNewArrivalHandler(w http.ResponseWriter, r *http.Request) {
	n, err := s.NewArrivals.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, repo.ErrNewArrivalNotFound) {
			http.Error(w, "new arrival not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch new arrival", http.StatusInternalServerError)
		return
	}
	s.respond(w, http.StatusOK, n)
}

// CreateNewArrivalHandler godoc
// @Summary Add a new arrival
// @Description date_added defaults to the current day.
// @Tags admin-new-arrivals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param arrival body NewArrivalRequest true "New arrival"
// @Success 201 {object} models.NewArrival
// @Failure 400 {object} []ValidationError
// @Router /admin/new-arrivals [post]
func (s *Server) CreateNewArrivalHandler(w http.ResponseWriter, r *http.Request) {
	var req NewArrivalRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if errs := validateNewArrival(req); len(errs) > 0 {
		s.respond(w, http.StatusBadRequest, errs)
		return
	}
	if req.DateAdded.IsZero() {
		req.DateAdded = s.now().UTC().Truncate(24 * time.Hour)
	}

	n, err := s.NewArrivals.Create(newArrivalFromRequest("", req))
	if err != nil {
		s.Logger.Error("new arrival create failed", zap.Error(err))
		http.Error(w, "could not create new arrival", http.StatusInternalServerError)
		return
	}
	s.respond(w, http.StatusCreated, n)
}

// UpdateNewArrivalHandler godoc
// @Summary Update a new arrival
// @Tags admin-new-arrivals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "New arrival ID"
// @Param arrival body NewArrivalRequest true "New arrival"
// @Success 200 {object} models.NewArrival
// @Failure 400 {object} []ValidationError
// @Failure 404 {string} string "Not found"
// @Router /admin/new-arrivals/{id} [put]
func (s *Server) UpdateNewArrivalHandler(w http.ResponseWriter, r *http.Request) {
	var req NewArrivalRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if errs := validateNewArrival(req); len(errs) > 0 {
		s.respond(w, http.StatusBadRequest, errs)
		return
	}

	id := chi.URLParam(r, "id")
	if req.DateAdded.IsZero() {
		current, err := s.NewArrivals.GetByID(id)
		if errors.Is(err, repo.ErrNewArrivalNotFound) {
			http.Error(w, "new arrival not found", http.StatusNotFound)
			return
		}
		req.DateAdded = current.DateAdded
	}

	n, err := s.NewArrivals.Update(newArrivalFromRequest(id, req))
	if err != nil {
		if errors.Is(err, repo.ErrNewArrivalNotFound) {
			http.Error(w, "new arrival not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update new arrival", http.StatusInternalServerError)
		return
	}
	s.respond(w, http.StatusOK, n)
}

// DeleteNewArrivalHandler godoc
// @Summary Delete a new arrival
// @Tags admin-new-arrivals
// @Security BearerAuth
// @Param id path string true "New arrival ID"
// @Success 204 "Deleted successfully"
// @Failure 404 {string} string "Not found"
// @Router /admin/new-arrivals/{id} [delete]
func (s *Server) DeleteNewArrivalHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.NewArrivals.Delete(chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, repo.ErrNewArrivalNotFound) {
			http.Error(w, "new arrival not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete new arrival", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
