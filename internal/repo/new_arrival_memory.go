package repo

import (
	"cmp"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/storefront/internal/models"
)

type InMemoryNewArrivalRepository struct {
	mu       sync.RWMutex
	arrivals []models.NewArrival
}

func NewInMemoryNewArrivalRepository(seed ...models.NewArrival) *InMemoryNewArrivalRepository {
	return &InMemoryNewArrivalRepository{arrivals: append([]models.NewArrival{}, seed...)}
}

func matchesNewArrivalFilter(n models.NewArrival, f NewArrivalFilter) bool {
	if f.VisibleOnly && !n.Visible {
		return false
	}
	if f.Category != "" && !strings.EqualFold(n.Category, f.Category) {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(n.Name), q) && !strings.Contains(strings.ToLower(n.Description), q) {
			return false
		}
	}
	return true
}

// Filter returns the matching arrivals, newest first.
func (r *InMemoryNewArrivalRepository) Filter(f NewArrivalFilter) ([]models.NewArrival, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.NewArrival{}
	for _, n := range r.arrivals {
		if matchesNewArrivalFilter(n, f) {
			out = append(out, n)
		}
	}
	slices.SortStableFunc(out, func(a, b models.NewArrival) int {
		return cmp.Compare(b.DateAdded.Unix(), a.DateAdded.Unix())
	})
	return out, nil
}

func (r *InMemoryNewArrivalRepository) GetByID(id string) (models.NewArrival, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, n := range r.arrivals {
		if n.ID == id {
			return n, nil
		}
	}
	return models.NewArrival{}, ErrNewArrivalNotFound
}

func (r *InMemoryNewArrivalRepository) Create(n models.NewArrival) (models.NewArrival, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	for _, a := range r.arrivals {
		if a.ID == n.ID {
			return models.NewArrival{}, ErrDuplicatedValueUnique
		}
	}
	r.arrivals = append(r.arrivals, n)
	return n, nil
}

func (r *InMemoryNewArrivalRepository) Update(n models.NewArrival) (models.NewArrival, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, a := range r.arrivals {
		if a.ID == n.ID {
			r.arrivals[i] = n
			return n, nil
		}
	}
	return models.NewArrival{}, ErrNewArrivalNotFound
}

func (r *InMemoryNewArrivalRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, a := range r.arrivals {
		if a.ID == id {
			r.arrivals = slices.Delete(r.arrivals, i, i+1)
			return nil
		}
	}
	return ErrNewArrivalNotFound
}
