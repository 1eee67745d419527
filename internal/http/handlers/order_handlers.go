package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/storefront/internal/http/middleware"
	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/orders"
	"github.com/rogerio-castellano/storefront/internal/repo"
	"github.com/rogerio-castellano/storefront/internal/session"
	"go.uber.org/zap"
)

// CheckoutHandler godoc
// @Summary Place the cart as an order
// @Description Waits for the order service, then empties the cart.
// @Tags orders
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Param checkout body CheckoutRequest true "Shipping and payment details"
// @Success 201 {object} CheckoutResult
// @Failure 400 {object} []ValidationError
// @Failure 503 {string} string "Order service unavailable"
// @Router /checkout [post]
func (s *Server) CheckoutHandler(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if errs := validateCheckout(req); len(errs) > 0 {
		s.respond(w, http.StatusBadRequest, errs)
		return
	}

	sess := middleware.SessionFrom(r.Context())
	var o models.Order
	notices, err := sess.Do(func() error {
		var err error
		o, err = sess.Checkout(r.Context(), s.Orders, session.CheckoutRequest{
			ShippingAddress: req.ShippingAddress,
			PaymentMethod:   req.PaymentMethod,
			CouponCode:      req.CouponCode,
		})
		return err
	})

	switch {
	case err == nil:
	case errors.Is(err, session.ErrEmptyCart):
		http.Error(w, "Your cart is empty.", http.StatusBadRequest)
		return
	case errors.Is(err, repo.ErrInvalidCoupon):
		http.Error(w, "Invalid coupon code", http.StatusBadRequest)
		return
	default:
		s.Logger.Error("checkout failed", zap.String("session_id", sess.ID), zap.Error(err))
		http.Error(w, "order service unavailable", http.StatusServiceUnavailable)
		return
	}

	s.respond(w, http.StatusCreated, CheckoutResult{
		Order:             o,
		EstimatedDelivery: o.CreatedAt.Add(orders.DeliveryWindow),
		Notices:           notices,
	})
}

// TrackOrderHandler godoc
// @Summary Track an order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} orders.Tracking
// @Failure 404 {string} string "Not found"
// @Failure 503 {string} string "Order service unavailable"
// @Router /orders/{id}/tracking [get]
func (s *Server) TrackOrderHandler(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	tr, err := s.Orders.Track(r.Context(), id)
	if errors.Is(err, orders.ErrOrderNotFound) {
		http.Error(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		s.Logger.Error("tracking failed", zap.String("order_id", id), zap.Error(err))
		http.Error(w, "order service unavailable", http.StatusServiceUnavailable)
		return
	}
	s.respond(w, http.StatusOK, tr)
}
