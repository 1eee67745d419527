// Package wishlist holds saved-for-later items, unique by product id.
package wishlist

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
	items    []models.WishlistItem
	slots    storage.Slots
	notifier notify.Notifier
	logger   *zap.Logger
}

func New(ctx context.Context, slots storage.Slots, notifier notify.Notifier, logger *zap.Logger) *Store {
	s := &Store{
		items:    []models.WishlistItem{},
		slots:    slots,
		notifier: notifier,
		logger:   logger,
	}

	var saved []models.WishlistItem
	ok, err := storage.LoadJSON(ctx, slots, storage.WishlistKey, &saved)
	if err != nil {
		logger.Warn("could not load wishlist, starting empty", zap.Error(err))
	}
	if ok {
		seen := map[string]bool{}
		for _, it := range saved {
			if it.ID == "" || seen[it.ID] {
				continue
			}
			seen[it.ID] = true
			s.items = append(s.items, it)
		}
	}
	return s
}

func (s *Store) persist(ctx context.Context) {
	if err := storage.SaveJSON(ctx, s.slots, storage.WishlistKey, s.items); err != nil {
		s.logger.Error("failed to persist wishlist", zap.Error(err))
	}
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.items, func(it models.WishlistItem) bool { return it.ID == id })
}

// Add saves item unless an item with the same id is already saved.
func (s *Store) Add(ctx context.Context, item models.CatalogItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(item.ID) >= 0 {
		return
	}
	s.items = append(s.items, models.NewWishlistItem(item))
	notify.Successf(s.notifier, "%s added to wishlist", item.Name)
	s.persist(ctx)
}

func (s *Store) Remove(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		name := s.items[i].Name
		s.items = slices.Delete(s.items, i, i+1)
		notify.Successf(s.notifier, "%s removed from wishlist", name)
	}
	s.persist(ctx)
}

func (s *Store) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.indexOf(id) >= 0
}

// Get returns the saved item with id.
func (s *Store) Get(id string) (models.WishlistItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true
	}
	return models.WishlistItem{}, false
}

func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = []models.WishlistItem{}
	notify.Successf(s.notifier, "Wishlist cleared")
	s.persist(ctx)
}

// Items returns a copy in insertion order.
func (s *Store) Items() []models.WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.items)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.items)
}
