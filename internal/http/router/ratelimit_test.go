package router_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	rl "github.com/rogerio-castellano/storefront/internal/http/rate_limiter"
)

func TestRateLimitBansRepeatOffenders(t *testing.T) {
	// the admin login made while building the env spends one token
	limiter := rl.New(rl.Config{RPS: 0.001, Burst: 2, MaxStrikes: 2, BanFor: time.Minute})
	e := newTestEnvWithLimiter(t, limiter)

	w := e.do(http.MethodGet, "/categories", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	w = e.do(http.MethodGet, "/categories", nil)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 Too Many Requests, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") != "1" {
		t.Errorf("expected Retry-After 1, got %q", w.Header().Get("Retry-After"))
	}

	w = e.do(http.MethodGet, "/categories", nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 Forbidden, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") != "60" {
		t.Errorf("expected Retry-After 60, got %q", w.Header().Get("Retry-After"))
	}

	events, err := e.bans.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("failed to list bans: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 ban, got %d", len(events))
	}
	if events[0].Target != "192.0.2.1" || events[0].Route != "GET /categories" || events[0].Strikes != 2 {
		t.Errorf("unexpected ban %+v", events[0])
	}
}

func TestBansHandlerStartsEmpty(t *testing.T) {
	e := newTestEnv(t)

	w := e.admin(http.MethodGet, "/admin/bans", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var events []map[string]any
	decode(t, w, &events)
	if events == nil || len(events) != 0 {
		t.Errorf("expected an empty list, got %v", events)
	}
}
