package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/storefront/internal/http/middleware"
	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/repo"
	"go.uber.org/zap"
)

const recentBans = 50

// ListOrdersHandler godoc
// @Summary List orders
// @Tags admin-orders
// @Produce json
// @Security BearerAuth
// @Param search query string false "Order id, customer name or email"
// @Param status query string false "Order status"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} OrdersSearchResult
// @Failure 400 {object} []ValidationError
// @Router /admin/orders [get]
func (s *Server) ListOrdersHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repo.OrderFilter{
		Search: strings.TrimSpace(q.Get("search")),
		Status: models.OrderStatus(q.Get("status")),
		Offset: parseIntPtr(q.Get("offset")),
		Limit:  parseIntPtr(q.Get("limit")),
	}
	if filter.Status != "" {
		if errs := validateStatus(filter.Status); len(errs) > 0 {
			s.respond(w, http.StatusBadRequest, errs)
			return
		}
	}
	if !checkPage(w, filter.Offset, filter.Limit) {
		return
	}

	orders, total, err := s.OrderRepo.Filter(filter)
	if err != nil {
		http.Error(w, "could not list orders", http.StatusInternalServerError)
		return
	}
	s.respond(w, http.StatusOK, OrdersSearchResult{Data: orders, Meta: Meta{TotalCount: total}})
}

// GetOrderHandler godoc
// @Summary Get order by ID
// @Tags admin-orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} models.Order
// @Failure 404 {string} string "Not found"
// @Router /admin/orders/{id} [get]
func (s *Server) GetOrderHandler(w http.ResponseWriter, r *http.Request) {
	o, err := s.OrderRepo.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, repo.ErrOrderNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch order", http.StatusInternalServerError)
		return
	}
	s.respond(w, http.StatusOK, o)
}

// UpdateOrderStatusHandler godoc
// @Summary Update order status
// @Tags admin-orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param status body UpdateStatusRequest true "New status"
// @Success 200 {object} models.Order
// @Failure 400 {object} []ValidationError
// @Failure 404 {string} string "Not found"
// @Router /admin/orders/{id}/status [put]
func (s *Server) UpdateOrderStatusHandler(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if errs := validateStatus(req.Status); len(errs) > 0 {
		s.respond(w, http.StatusBadRequest, errs)
		return
	}

	o, err := s.OrderRepo.UpdateStatus(chi.URLParam(r, "id"), req.Status)
	if err != nil {
		if errors.Is(err, repo.ErrOrderNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update order", http.StatusInternalServerError)
		return
	}
	s.Logger.Info("order status updated", zap.String("order", o.ID), zap.String("status", string(o.Status)))
	s.respond(w, http.StatusOK, o)
}

// ListUsersHandler godoc
// @Summary List users
// @Tags admin-users
// @Produce json
// @Security BearerAuth
// @Param search query string false "Name or email"
// @Param role query string false "Role (user|admin)"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} UsersSearchResult
// @Failure 400 {string} string "Invalid query"
// @Router /admin/users [get]
func (s *Server) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repo.UserFilter{
		Search: strings.TrimSpace(q.Get("search")),
		Role:   q.Get("role"),
		Offset: parseIntPtr(q.Get("offset")),
		Limit:  parseIntPtr(q.Get("limit")),
	}
	if !checkPage(w, filter.Offset, filter.Limit) {
		return
	}

	users, total, err := s.Users.Filter(filter)
	if err != nil {
		http.Error(w, "could not list users", http.StatusInternalServerError)
		return
	}
	s.respond(w, http.StatusOK, UsersSearchResult{Data: users, Meta: Meta{TotalCount: total}})
}

// GetUserHandler godoc
// @Summary Get user by ID
// @Tags admin-users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {string} string "Not found"
// @Router /admin/users/{id} [get]
func (s *Server) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	u, err := s.Users.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch user", http.StatusInternalServerError)
		return
	}
	s.respond(w, http.StatusOK, u)
}

// UpdateUserRoleHandler godoc
// @Summary Update user role
// @Tags admin-users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param role body UpdateRoleRequest true "New role"
// @Success 200 {object} models.User
// @Failure 400 {object} []ValidationError
// @Failure 404 {string} string "Not found"
// @Router /admin/users/{id}/role [put]
func (s *Server) UpdateUserRoleHandler(w http.ResponseWriter, r *http.Request) {
	var req UpdateRoleRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.Role != models.RoleUser && req.Role != models.RoleAdmin {
		s.respond(w, http.StatusBadRequest, []ValidationError{{Field: "Role", Description: "Role must be user or admin"}})
		return
	}

	u, err := s.Users.UpdateRole(chi.URLParam(r, "id"), req.Role)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update user", http.StatusInternalServerError)
		return
	}
	s.respond(w, http.StatusOK, u)
}

// ImpersonateUserHandler godoc
// @Summary Issue a token acting as another user
// @Tags admin-users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} LoginResult
// @Failure 404 {string} string "Not found"
// @Router /admin/users/{id}/impersonate [post]
func (s *Server) ImpersonateUserHandler(w http.ResponseWriter, r *http.Request) {
	u, err := s.Users.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch user", http.StatusInternalServerError)
		return
	}

	admin := ""
	if c := middleware.ClaimsFrom(r.Context()); c != nil {
		admin = c.Subject
	}
	token, err := s.Tokens.GenerateImpersonationToken(u, admin)
	if err != nil {
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}
	s.Logger.Warn("impersonation token issued", zap.String("admin", admin), zap.String("user", u.ID))
	s.respond(w, http.StatusOK, LoginResult{Token: token, User: u})
}

func dealFromRequest(id string, req DealRequest) models.Deal {
	return models.Deal{
		ID:              id,
		Title:           req.Title,
		Description:     req.Description,
		DiscountPercent: req.DiscountPercent,
		Code:            req.Code,
		StartsAt:        req.StartsAt,
		EndsAt:          req.EndsAt,
		Active:          req.Active,
		Products:        req.Products,
	}
}

// ListDealsHandler godoc
// @Summary List all deals, active or not
// @Tags admin-deals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Deal
// @Router /admin/deals [get]
func (s *Server) ListDealsHandler(w http.ResponseWriter, r *http.Request) {
	deals, err := s.Deals.GetAll()
	if err != nil {
		http.Error(w, "could not list deals", http.StatusInternalServerError)
		return
	}
	s.respond(w, http.StatusOK, deals)
}

// GetDealHandler godoc
// @Summary Get deal by ID
// @Tags admin-deals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Success 200 {object} models.Deal
// @Failure 404 {string} string "Not found"
// @Router /admin/deals/{id} [get]
func (s *Server) GetDealHandler(w http.ResponseWriter, r *http.Request) {
	d, err := s.Deals.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, repo.ErrDealNotFound) {
			http.Error(w, "deal not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch deal", http.StatusInternalServerError)
		return
	}
	s.respond(w, http.StatusOK, d)
}

// CreateDealHandler godoc
// @Summary Create a deal
// @Tags admin-deals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param deal body DealRequest true "Deal"
// @Success 201 {object} models.Deal
// @Failure 400 {object} []ValidationError
// @Failure 409 {string} string "Duplicated code"
// @Router /admin/deals [post]
func (s *Server) CreateDealHandler(w http.ResponseWriter, r *http.Request) {
	var req DealRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if errs := validateDeal(req); len(errs) > 0 {
		s.respond(w, http.StatusBadRequest, errs)
		return
	}

	d, err := s.Deals.Create(dealFromRequest("", req))
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			http.Error(w, "could not create deal: code duplicated", http.StatusConflict)
			return
		}
		http.Error(w, "could not create deal", http.StatusInternalServerError)
		return
	}
	s.respond(w, http.StatusCreated, d)
}

// UpdateDealHandler godoc
// @Summary Update a deal
// @Tags admin-deals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Param deal body DealRequest true "Deal"
// @Success 200 {object} models.Deal
// @Failure 400 {object} []ValidationError
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Duplicated code"
// @Router /admin/deals/{id} [put]
func (s *Server) UpdateDealHandler(w http.ResponseWriter, r *http.Request) {
	var req DealRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if errs := validateDeal(req); len(errs) > 0 {
		s.respond(w, http.StatusBadRequest, errs)
		return
	}

	d, err := s.Deals.Update(dealFromRequest(chi.URLParam(r, "id"), req))
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrDealNotFound):
			http.Error(w, "deal not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrDuplicatedValueUnique):
			http.Error(w, "could not update deal: code duplicated", http.StatusConflict)
		default:
			http.Error(w, "could not update deal", http.StatusInternalServerError)
		}
		return
	}
	s.respond(w, http.StatusOK, d)
}

// DeleteDealHandler godoc
// @Summary Delete a deal
// @Tags admin-deals
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Success 204 "Deleted successfully"
// @Failure 404 {string} string "Not found"
// @Router /admin/deals/{id} [delete]
func (s *Server) DeleteDealHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.Deals.Delete(chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, repo.ErrDealNotFound) {
			http.Error(w, "deal not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete deal", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListBansHandler godoc
// @Summary Recent rate-limit bans, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ban.Event
// @Failure 500 {string} string "Internal error"
// @Router /admin/bans [get]
func (s *Server) ListBansHandler(w http.ResponseWriter, r *http.Request) {
	events, err := s.Bans.Recent(r.Context(), recentBans)
	if err != nil {
		http.Error(w, "could not list bans", http.StatusInternalServerError)
		return
	}
	s.respond(w, http.StatusOK, events)
}
