// Package auth signs visitors in. Credentials are not verified against a
// real identity provider: the configured admin account is recognised and
// every other non-empty login becomes the demo shopper.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

const (
	AdminUserID   = "1"
	ShopperUserID = "2"

	MinPasswordLength = 6

	googleAvatar = "https://lh3.googleusercontent.com/a/default-user"
)

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidRegistration = errors.New("invalid registration")
	ErrInvalidEmail        = errors.New("invalid email")
)

type Authenticator struct {
	adminEmail string
	adminHash  []byte
	users      repo.UserRepository
	now        func() time.Time

	// resetLatency stands in for the mail round trip of a password reset.
	resetLatency time.Duration
}

// NewAuthenticator hashes adminPassword once; logins compare against the hash.
// users receives registered accounts and may be nil.
func NewAuthenticator(adminEmail, adminPassword string, users repo.UserRepository) (*Authenticator, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &Authenticator{
		adminEmail: strings.ToLower(adminEmail),
		adminHash:  hash,
		users:      users,
		now:        func() time.Time { return time.Now().UTC() },
	}, nil
}

func (a *Authenticator) Login(email, password string) (models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	if strings.ToLower(email) == a.adminEmail && bcrypt.CompareHashAndPassword(a.adminHash, []byte(password)) == nil {
		return models.User{
			ID:    AdminUserID,
			Name:  "Admin User",
			Email: email,
			Role:  models.RoleAdmin,
		}, nil
	}

	return models.User{
		ID:    ShopperUserID,
		Name:  "Regular User",
		Email: email,
		Role:  models.RoleUser,
	}, nil
}

func (a *Authenticator) LoginWithGoogle() models.User {
	return models.User{
		ID:     uuid.NewString(),
		Name:   "Google User",
		Email:  "google.user@example.com",
		Avatar: googleAvatar,
		Role:   models.RoleUser,
	}
}

type RegistrationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateProfile lists every problem with a name and email pair.
func ValidateProfile(name, email string) []RegistrationError {
	var errs []RegistrationError
	if strings.TrimSpace(name) == "" {
		errs = append(errs, RegistrationError{"name", "name is required"})
	}
	if msg := emailProblem(email); msg != "" {
		errs = append(errs, RegistrationError{"email", msg})
	}
	return errs
}

func emailProblem(email string) string {
	if strings.TrimSpace(email) == "" {
		return "email is required"
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "email is not valid"
	}
	return ""
}

// ValidatePasswordChange lists every problem with a password change form.
func ValidatePasswordChange(current, next, confirm string) []RegistrationError {
	var errs []RegistrationError
	if current == "" {
		errs = append(errs, RegistrationError{"current_password", "current password is required"})
	}
	if len(next) < MinPasswordLength {
		errs = append(errs, RegistrationError{"new_password", fmt.Sprintf("password must be at least %d characters", MinPasswordLength)})
	}
	if next != confirm {
		errs = append(errs, RegistrationError{"confirm_password", "passwords do not match"})
	}
	return errs
}

// ValidateRegistration lists every problem with the submitted fields.
func ValidateRegistration(name, email, password string) []RegistrationError {
	errs := ValidateProfile(name, email)
	if len(password) < MinPasswordLength {
		errs = append(errs, RegistrationError{"password", fmt.Sprintf("password must be at least %d characters", MinPasswordLength)})
	}
	return errs
}

func (a *Authenticator) Register(name, email, password string) (models.User, error) {
	if errs := ValidateRegistration(name, email, password); len(errs) > 0 {
		return models.User{}, fmt.Errorf("%w: %s", ErrInvalidRegistration, errs[0].Message)
	}

	u := models.User{
		ID:     uuid.NewString(),
		Name:   strings.TrimSpace(name),
		Email:  strings.TrimSpace(email),
		Role:   models.RoleUser,
		Joined: a.now(),
	}
	if a.users == nil {
		return u, nil
	}
	created, err := a.users.Create(u)
	if err != nil {
		return models.User{}, err
	}
	return created, nil
}

// WithResetLatency sets how long RequestPasswordReset takes.
func (a *Authenticator) WithResetLatency(d time.Duration) *Authenticator {
	a.resetLatency = d
	return a
}

// RequestPasswordReset simulates sending reset instructions. The outcome does
// not depend on whether an account exists for email.
func (a *Authenticator) RequestPasswordReset(ctx context.Context, email string) error {
	if msg := emailProblem(email); msg != "" {
		return fmt.Errorf("%w: %s", ErrInvalidEmail, msg)
	}
	if a.resetLatency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(a.resetLatency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
