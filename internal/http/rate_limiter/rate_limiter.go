// Package rate_limiter throttles clients with a token bucket each. Clients that
// keep hitting the limit collect strikes and are banned for a while.
package rate_limiter

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type Config struct {
	RPS        float64
	Burst      int
	MaxStrikes int
	BanFor     time.Duration
	// IdleTTL is how long an untouched client is remembered.
	IdleTTL time.Duration
}

type Decision int

const (
	Allowed Decision = iota
	Limited
	Banned
)

type clientLimiter struct {
	limiter     *rate.Limiter
	lastSeen    time.Time
	strikes     int
	bannedUntil time.Time
}

type Limiter struct {
	mu       sync.Mutex
	visitors map[string]*clientLimiter
	cfg      Config
	now      func() time.Time

	// OnBan is called, outside the lock, when a client is banned.
	OnBan func(client, route string, strikes int, until time.Time)
}

func New(cfg Config) *Limiter {
	if cfg.MaxStrikes <= 0 {
		cfg.MaxStrikes = 5
	}
	if cfg.BanFor <= 0 {
		cfg.BanFor = 10 * time.Minute
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = 5 * time.Minute
	}
	return &Limiter{
		visitors: make(map[string]*clientLimiter),
		cfg:      cfg,
		now:      time.Now,
	}
}

func (l *Limiter) getVisitor(client string, now time.Time) *clientLimiter {
	v, exists := l.visitors[client]
	if !exists {
		v = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(l.cfg.RPS), l.cfg.Burst)}
		l.visitors[client] = v
	}
	v.lastSeen = now
	return v
}

// Allow spends one token for client. A limited request adds a strike; the
// strike that reaches MaxStrikes bans the client for BanFor. route is only
// reported to OnBan.
func (l *Limiter) Allow(client, route string) (Decision, time.Duration) {
	l.mu.Lock()
	now := l.now()
	v := l.getVisitor(client, now)

	if now.Before(v.bannedUntil) {
		wait := v.bannedUntil.Sub(now)
		l.mu.Unlock()
		return Banned, wait
	}
	if v.limiter.AllowN(now, 1) {
		l.mu.Unlock()
		return Allowed, 0
	}

	v.strikes++
	if v.strikes < l.cfg.MaxStrikes {
		l.mu.Unlock()
		return Limited, time.Second
	}

	strikes := v.strikes
	v.strikes = 0
	v.bannedUntil = now.Add(l.cfg.BanFor)
	until := v.bannedUntil
	l.mu.Unlock()

	if l.OnBan != nil {
		l.OnBan(client, route, strikes, until)
	}
	return Banned, l.cfg.BanFor
}

// Cleanup forgets clients idle for longer than IdleTTL and not banned.
func (l *Limiter) Cleanup() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	n := 0
	for client, v := range l.visitors {
		if now.Sub(v.lastSeen) > l.cfg.IdleTTL && !now.Before(v.bannedUntil) {
			delete(l.visitors, client)
			n++
		}
	}
	return n
}

// StartVisitorCleanupLoop runs Cleanup every minute until ctx is done.
func (l *Limiter) StartVisitorCleanupLoop(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Cleanup()
		}
	}
}

func (l *Limiter) CleanupAllVisitors() {
	l.mu.Lock()
	l.visitors = make(map[string]*clientLimiter)
	l.mu.Unlock()
}
