// Package middleware holds the request pipeline shared by every route:
// visitor sessions, bearer-token auth, the admin gate, rate limiting and
// request logging.
package middleware

import (
	"context"
	"fmt"
	"math"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rogerio-castellano/storefront/internal/auth"
	"github.com/rogerio-castellano/storefront/internal/http/ban"
	rl "github.com/rogerio-castellano/storefront/internal/http/rate_limiter"
	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/session"
	"go.uber.org/zap"
)

const SessionHeader = "X-Session-ID"

type contextKey string

const (
	sessionKey = contextKey("session")
	claimsKey  = contextKey("claims")
)

// Session attaches the visitor's session, creating one when the request
// carries no usable id. The id is echoed in the response header.
func Session(m *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := m.Get(r.Context(), r.Header.Get(SessionHeader))
			w.Header().Set(SessionHeader, s.ID)
			ctx := context.WithValue(r.Context(), sessionKey, s)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func SessionFrom(ctx context.Context) *session.Session {
	s, _ := ctx.Value(sessionKey).(*session.Session)
	return s
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(h, "Bearer "), true
}

// ParseBearer returns the claims of a valid, unrevoked bearer token.
func ParseBearer(r *http.Request, tokens *auth.TokenIssuer, revoked *auth.Revocations) (*auth.Claims, error) {
	tokenStr, ok := bearerToken(r)
	if !ok {
		return nil, auth.ErrInvalidToken
	}
	claims, err := tokens.ParseToken(tokenStr)
	if err != nil {
		return nil, err
	}
	if revoked != nil && revoked.IsRevoked(claims.ID) {
		return nil, fmt.Errorf("%w: revoked", auth.ErrInvalidToken)
	}
	return claims, nil
}

func AuthMiddleware(tokens *auth.TokenIssuer, revoked *auth.Revocations) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := bearerToken(r); !ok {
				http.Error(w, "missing or invalid token", http.StatusUnauthorized)
				return
			}
			claims, err := ParseBearer(r, tokens, revoked)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func ClaimsFrom(ctx context.Context) *auth.Claims {
	c, _ := ctx.Value(claimsKey).(*auth.Claims)
	return c
}

// RequireAdmin must run after AuthMiddleware.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c := ClaimsFrom(r.Context())
		if c == nil || c.Role != models.RoleAdmin {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit rejects throttled clients with 429 and banned ones with 403.
func RateLimit(l *rl.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			decision, wait := l.Allow(clientKey(r), r.Method+" "+r.URL.Path)
			switch decision {
			case rl.Allowed:
				next.ServeHTTP(w, r)
				return
			case rl.Limited:
				w.Header().Set("Retry-After", retryAfter(wait))
				http.Error(w, "Too many requests", http.StatusTooManyRequests)
				return
			}

			w.Header().Set("Retry-After", retryAfter(wait))
			http.Error(w, "Too many requests, temporarily banned", http.StatusForbidden)
		})
	}
}

// BanRecorder returns an OnBan hook that logs and stores ban events. bans may be nil.
func BanRecorder(bans ban.Log, logger *zap.Logger) func(string, string, int, time.Time) {
	return func(client, route string, strikes int, until time.Time) {
		logger.Warn("client banned",
			zap.String("client", client),
			zap.String("route", route),
			zap.Int("strikes", strikes),
			zap.Time("until", until))
		if bans == nil {
			return
		}
		e := ban.Event{Target: client, Route: route, Strikes: strikes, Until: until, Time: time.Now().UTC()}
		if err := bans.Record(context.Background(), e); err != nil {
			logger.Error("failed to record ban", zap.Error(err))
		}
	}
}

func retryAfter(d time.Duration) string {
	return fmt.Sprintf("%d", int(math.Ceil(d.Seconds())))
}

// RequestLogger logs one line per request once it has been served.
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("route", route),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", chimw.GetReqID(r.Context())))
		})
	}
}
