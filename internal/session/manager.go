package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/storefront/internal/storage"
	"go.uber.org/zap"
)

const DefaultIdleTTL = 30 * time.Minute

type entry struct {
	session  *Session
	lastSeen time.Time
}

// Manager hands out sessions by id. Idle sessions are dropped from memory;
// their state survives in the slots and is hydrated again on the next visit.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*entry
	slots    storage.Slots
	idleTTL  time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

func NewManager(slots storage.Slots, idleTTL time.Duration, logger *zap.Logger) *Manager {
	if idleTTL <= 0 {
		idleTTL = DefaultIdleTTL
	}
	return &Manager{
		sessions: map[string]*entry{},
		slots:    slots,
		idleTTL:  idleTTL,
		logger:   logger,
		now:      time.Now,
	}
}

// Get returns the session for id, hydrating it if it is not live. An empty
// or malformed id starts a new session under a fresh id.
func (m *Manager) Get(ctx context.Context, id string) *Session {
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.sessions[id]; ok {
		e.lastSeen = m.now()
		return e.session
	}

	s := New(ctx, id, storage.Namespace(m.slots, storage.SessionPrefix(id)), m.logger)
	m.sessions[id] = &entry{session: s, lastSeen: m.now()}
	return s
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Evict drops sessions idle for longer than the TTL and returns how many went.
func (m *Manager) Evict() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.now().Add(-m.idleTTL)
	n := 0
	for id, e := range m.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

// Run evicts idle sessions every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Evict(); n > 0 {
				m.logger.Debug("evicted idle sessions", zap.Int("count", n))
			}
		}
	}
}
