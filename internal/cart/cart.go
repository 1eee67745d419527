// Package cart holds the shopping cart: one line per product, mirrored to a
// durable slot after every change.
package cart

import (
	"context"
	"slices"
	"sync"

	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/notify"
	"github.com/rogerio-castellano/storefront/internal/storage"
	"go.uber.org/zap"
)

type Store struct {
	mu       sync.Mutex
	lines    []models.CartLine
	slots    storage.Slots
	notifier notify.Notifier
	logger   *zap.Logger
}

// New creates a cart hydrated from the cart slot. An absent or unreadable slot
// yields an empty cart.
func New(ctx context.Context, slots storage.Slots, notifier notify.Notifier, logger *zap.Logger) *Store {
	s := &Store{
		lines:    []models.CartLine{},
		slots:    slots,
		notifier: notifier,
		logger:   logger,
	}

	var saved []models.CartLine
	ok, err := storage.LoadJSON(ctx, slots, storage.CartKey, &saved)
	if err != nil {
		logger.Warn("could not load cart, starting empty", zap.Error(err))
	}
	if ok {
		s.lines = sanitize(saved)
	}
	return s
}

// sanitize drops lines that would break the one-line-per-id, quantity >= 1 invariant.
func sanitize(lines []models.CartLine) []models.CartLine {
	out := make([]models.CartLine, 0, len(lines))
	seen := make(map[string]bool, len(lines))
	for _, l := range lines {
		if l.ID == "" || l.Quantity < 1 || seen[l.ID] {
			continue
		}
		seen[l.ID] = true
		out = append(out, l)
	}
	return out
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.lines, func(l models.CartLine) bool { return l.ID == id })
}

// persist overwrites the slot with the whole cart. Callers hold s.mu.
func (s *Store) persist(ctx context.Context) {
	if err := storage.SaveJSON(ctx, s.slots, storage.CartKey, s.lines); err != nil {
		s.logger.Error("failed to persist cart", zap.Error(err))
	}
}

// Add increments the line for item.ID, or inserts a new line with quantity 1.
func (s *Store) Add(ctx context.Context, item models.CatalogItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(item.ID); i >= 0 {
		s.lines[i].Quantity++
		notify.Successf(s.notifier, "%s quantity updated in cart", item.Name)
	} else {
		s.lines = append(s.lines, models.NewCartLine(item))
		notify.Successf(s.notifier, "%s added to cart", item.Name)
	}
	s.persist(ctx)
}

// Remove deletes the line for id. Absent ids are ignored silently.
func (s *Store) Remove(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.remove(ctx, id)
}

func (s *Store) remove(ctx context.Context, id string) {
	if i := s.indexOf(id); i >= 0 {
		name := s.lines[i].Name
		s.lines = slices.Delete(s.lines, i, i+1)
		notify.Successf(s.notifier, "%s removed from cart", name)
	}
	s.persist(ctx)
}

// UpdateQuantity overwrites the quantity of the line for id. A quantity of zero
// or less removes the line. Stock is not checked here.
func (s *Store) UpdateQuantity(ctx context.Context, id string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.remove(ctx, id)
		return
	}
	if i := s.indexOf(id); i >= 0 {
		s.lines[i].Quantity = quantity
	}
	s.persist(ctx)
}

func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = []models.CartLine{}
	notify.Successf(s.notifier, "Cart cleared")
	s.persist(ctx)
}

// Lines returns a copy of the lines in insertion order.
func (s *Store) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.lines)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.lines)
}

// TotalItems is the sum of quantities.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}

// Subtotal is the sum of price times quantity.
func (s *Store) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, l := range s.lines {
		total += l.LineTotal()
	}
	return total
}
