package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rogerio-castellano/storefront/internal/auth"
	"github.com/rogerio-castellano/storefront/internal/http/middleware"
	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/notify"
	"github.com/rogerio-castellano/storefront/internal/repo"
	"github.com/rogerio-castellano/storefront/internal/session"
	"go.uber.org/zap"
)

const resetRequestedMessage = "If an account exists with this email, you will receive password reset instructions."

func validationErrors(in []auth.RegistrationError) []ValidationError {
	errs := []ValidationError{}
	for _, e := range in {
		errs = append(errs, ValidationError{Field: e.Field, Description: e.Message})
	}
	return errs
}

func accountOrder(o models.Order) AccountOrder {
	return AccountOrder{
		ID:          o.ID,
		CreatedAt:   o.CreatedAt,
		Status:      o.Status,
		Items:       o.Units(),
		Total:       o.Totals.Total,
		TrackingURL: "/orders/" + o.ID + "/tracking",
	}
}

// MyOrdersHandler godoc
// @Summary Order history of the signed-in user
// @Tags account
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} AccountOrdersResult
// @Failure 401 {string} string "Not signed in"
// @Router /me/orders [get]
func (s *Server) MyOrdersHandler(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.SessionFrom(r.Context()).User()
	if !ok {
		http.Error(w, "not signed in", http.StatusUnauthorized)
		return
	}

	q := r.URL.Query()
	filter := repo.OrderFilter{
		CustomerID: u.ID,
		Offset:     parseIntPtr(q.Get("offset")),
		Limit:      parseIntPtr(q.Get("limit")),
	}
	if !checkPage(w, filter.Offset, filter.Limit) {
		return
	}

	found, total, err := s.OrderRepo.Filter(filter)
	if err != nil {
		http.Error(w, "could not list orders", http.StatusInternalServerError)
		return
	}
	resp := AccountOrdersResult{Data: make([]AccountOrder, len(found)), Meta: Meta{TotalCount: total}}
	for i, o := range found {
		resp.Data[i] = accountOrder(o)
	}
	s.respond(w, http.StatusOK, resp)
}

// UpdateProfileHandler godoc
// @Summary Update name and email of the signed-in user
// @Tags account
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Param profile body ProfileRequest true "Profile"
// @Success 200 {object} ProfileResult
// @Failure 400 {object} []ValidationError
// @Failure 401 {string} string "Not signed in"
// @Failure 409 {string} string "Email in use"
// @Router /me [put]
func (s *Server) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	var req ProfileRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	sess := middleware.SessionFrom(r.Context())
	current, ok := sess.User()
	if !ok {
		http.Error(w, "not signed in", http.StatusUnauthorized)
		return
	}
	if errs := auth.ValidateProfile(req.Name, req.Email); len(errs) > 0 {
		s.respond(w, http.StatusBadRequest, validationErrors(errs))
		return
	}

	// Registered shoppers live in the user repository as well; demo accounts do not.
	if _, err := s.Users.UpdateProfile(current.ID, req.Name, req.Email); err != nil && !errors.Is(err, repo.ErrUserNotFound) {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			http.Error(w, "email already registered", http.StatusConflict)
			return
		}
		s.Logger.Error("profile update failed", zap.String("user", current.ID), zap.Error(err))
		http.Error(w, "could not update profile", http.StatusInternalServerError)
		return
	}

	var resp ProfileResult
	var err error
	resp.Notices, err = sess.Do(func() error {
		resp.User, err = sess.UpdateProfile(r.Context(), req.Name, req.Email)
		return err
	})
	if errors.Is(err, session.ErrNotSignedIn) {
		http.Error(w, "not signed in", http.StatusUnauthorized)
		return
	}
	s.respond(w, http.StatusOK, resp)
}

// ChangePasswordHandler godoc
// @Summary Change the password of the signed-in user
// @Description Credentials are simulated: the form is validated and acknowledged.
// @Tags account
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Param passwords body ChangePasswordRequest true "Password change"
// @Success 200 {object} NoticesResult
// @Failure 400 {object} []ValidationError
// @Failure 401 {string} string "Not signed in"
// @Router /me/password [post]
func (s *Server) ChangePasswordHandler(w http.ResponseWriter, r *http.Request) {
	var req ChangePasswordRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	sess := middleware.SessionFrom(r.Context())
	if _, ok := sess.User(); !ok {
		http.Error(w, "not signed in", http.StatusUnauthorized)
		return
	}
	if errs := auth.ValidatePasswordChange(req.CurrentPassword, req.NewPassword, req.ConfirmPassword); len(errs) > 0 {
		s.respond(w, http.StatusBadRequest, validationErrors(errs))
		return
	}

	notices, err := sess.Do(sess.ChangePassword)
	if errors.Is(err, session.ErrNotSignedIn) {
		http.Error(w, "not signed in", http.StatusUnauthorized)
		return
	}
	s.respond(w, http.StatusOK, NoticesResult{Notices: notices})
}

// ForgotPasswordHandler godoc
// @Summary Request password reset instructions
// @Description The answer is the same whether or not an account exists for the email.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ForgotPasswordRequest true "Email"
// @Success 202 {object} NoticesResult
// @Failure 400 {object} []ValidationError
// @Failure 503 {string} string "Unavailable"
// @Router /password/forgot [post]
func (s *Server) ForgotPasswordHandler(w http.ResponseWriter, r *http.Request) {
	var req ForgotPasswordRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	err := s.Auth.RequestPasswordReset(r.Context(), strings.TrimSpace(req.Email))
	if errors.Is(err, auth.ErrInvalidEmail) {
		s.respond(w, http.StatusBadRequest, []ValidationError{{Field: "email", Description: "A valid email is required"}})
		return
	}
	if err != nil {
		s.Logger.Warn("password reset request failed", zap.Error(err))
		http.Error(w, "Something went wrong. Please try again.", http.StatusServiceUnavailable)
		return
	}
	s.respond(w, http.StatusAccepted, NoticesResult{Notices: []notify.Notice{{Level: notify.Success, Message: resetRequestedMessage}}})
}
