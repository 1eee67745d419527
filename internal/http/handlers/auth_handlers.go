package handlers

import (
	"errors"
	"net/http"

	"github.com/rogerio-castellano/storefront/internal/auth"
	"github.com/rogerio-castellano/storefront/internal/http/middleware"
	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/repo"
	"go.uber.org/zap"
)

// signIn stores u on the session and issues a token for it.
func (s *Server) signIn(w http.ResponseWriter, r *http.Request, u models.User, status int) {
	token, err := s.Tokens.GenerateToken(u)
	if err != nil {
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}

	sess := middleware.SessionFrom(r.Context())
	_, _ = sess.Do(func() error {
		sess.SetUser(r.Context(), u)
		return nil
	})
	s.respond(w, status, LoginResult{Token: token, User: u})
}

// LoginHandler godoc
// @Summary Sign in and return a JWT token
// @Description The admin account needs its password; any other non-empty credentials sign in the demo shopper.
// @Tags auth
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Param credentials body UserLogin true "email and password"
// @Success 200 {object} LoginResult
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Unauthorized"
// @Router /login [post]
func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var credentials UserLogin
	if err := readJSON(w, r, &credentials); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	u, err := s.Auth.Login(credentials.Email, credentials.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	if err != nil {
		http.Error(w, "could not sign in", http.StatusInternalServerError)
		return
	}
	s.signIn(w, r, u, http.StatusOK)
}

// GoogleLoginHandler godoc
// @Summary Sign in with a simulated Google account
// @Tags auth
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Success 200 {object} LoginResult
// @Router /login/google [post]
func (s *Server) GoogleLoginHandler(w http.ResponseWriter, r *http.Request) {
	s.signIn(w, r, s.Auth.LoginWithGoogle(), http.StatusOK)
}

// RegisterHandler godoc
// @Summary Register a new shopper and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Param user body RegisterRequest true "Registration form"
// @Success 201 {object} LoginResult
// @Failure 400 {object} []ValidationError
// @Failure 409 {string} string "User exists"
// @Router /register [post]
func (s *Server) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	errs := validationErrors(auth.ValidateRegistration(req.Name, req.Email, req.Password))
	if req.Password != req.ConfirmPassword {
		errs = append(errs, ValidationError{Field: "confirm_password", Description: "Passwords do not match"})
	}
	if len(errs) > 0 {
		s.respond(w, http.StatusBadRequest, errs)
		return
	}

	u, err := s.Auth.Register(req.Name, req.Email, req.Password)
	if errors.Is(err, repo.ErrDuplicatedValueUnique) {
		http.Error(w, "email already registered", http.StatusConflict)
		return
	}
	if err != nil {
		s.Logger.Error("registration failed", zap.Error(err))
		http.Error(w, "failed to register user", http.StatusInternalServerError)
		return
	}
	s.signIn(w, r, u, http.StatusCreated)
}

// LogoutHandler godoc
// @Summary Sign out
// @Description Clears the session user and revokes the bearer token, if one is sent.
// @Tags auth
// @Param X-Session-ID header string false "Visitor session"
// @Success 204 "Signed out"
// @Router /logout [post]
func (s *Server) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if claims, err := middleware.ParseBearer(r, s.Tokens, s.Revoked); err == nil && s.Revoked != nil {
		s.Revoked.Revoke(r.Context(), claims.ID, claims.ExpiresAt.Time)
	}

	sess := middleware.SessionFrom(r.Context())
	_, _ = sess.Do(func() error {
		sess.Logout(r.Context())
		return nil
	})
	w.WriteHeader(http.StatusNoContent)
}

// MeHandler godoc
// @Summary The signed-in user of this session
// @Tags auth
// @Produce json
// @Param X-Session-ID header string false "Visitor session"
// @Success 200 {object} models.User
// @Failure 401 {string} string "Not signed in"
// @Router /me [get]
func (s *Server) MeHandler(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())
	u, ok := sess.User()
	if !ok {
		http.Error(w, "not signed in", http.StatusUnauthorized)
		return
	}
	s.respond(w, http.StatusOK, u)
}
