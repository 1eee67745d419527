package auth

import (
	"context"
	"sync"
	"time"

	"github.com/rogerio-castellano/storefront/internal/storage"
	"go.uber.org/zap"
)

// RevokedKey is the slot holding revoked token ids.
const RevokedKey = "auth-revoked"

// Revocations remembers logged-out token ids until they would have expired.
type Revocations struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	slots   storage.Slots
	logger  *zap.Logger
}

func NewRevocations(ctx context.Context, slots storage.Slots, logger *zap.Logger) (*Revocations, error) {
	r := &Revocations{revoked: map[string]time.Time{}, slots: slots, logger: logger}
	if _, err := storage.LoadJSON(ctx, slots, RevokedKey, &r.revoked); err != nil {
		return nil, err
	}
	if r.revoked == nil {
		r.revoked = map[string]time.Time{}
	}
	return r, nil
}

func (r *Revocations) Revoke(ctx context.Context, id string, expires time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.revoked[id] = expires
	r.save(ctx)
}

func (r *Revocations) IsRevoked(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.revoked[id]
	return ok
}

// Prune forgets ids whose tokens have expired by now.
func (r *Revocations) Prune(ctx context.Context, now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for id, exp := range r.revoked {
		if now.After(exp) {
			delete(r.revoked, id)
			n++
		}
	}
	if n > 0 {
		r.save(ctx)
	}
	return n
}

func (r *Revocations) save(ctx context.Context) {
	if err := storage.SaveJSON(ctx, r.slots, RevokedKey, r.revoked); err != nil {
		r.logger.Error("failed to persist revoked tokens", zap.Error(err))
	}
}
