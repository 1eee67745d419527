package repo

import (
	"slices"
	"strings"
	"sync"

	"github.com/rogerio-castellano/storefront/internal/models"
)

type InMemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []models.Order
}

func NewInMemoryOrderRepository(seed ...models.Order) *InMemoryOrderRepository {
	r := &InMemoryOrderRepository{orders: []models.Order{}}
	for _, o := range seed {
		r.orders = append(r.orders, cloneOrder(o))
	}
	return r
}

func cloneOrder(o models.Order) models.Order {
	o.Lines = slices.Clone(o.Lines)
	return o
}

func matchesOrderFilter(o models.Order, of OrderFilter) bool {
	if of.Status != "" && o.Status != of.Status {
		return false
	}
	if of.CustomerID != "" && o.CustomerID != of.CustomerID {
		return false
	}
	if of.Search == "" {
		return true
	}
	q := strings.ToLower(of.Search)
	return strings.Contains(strings.ToLower(o.ID), q) ||
		strings.Contains(strings.ToLower(o.CustomerName), q) ||
		strings.Contains(strings.ToLower(o.CustomerEmail), q)
}

func (r *InMemoryOrderRepository) Create(order models.Order) (models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range r.orders {
		if o.ID == order.ID {
			return models.Order{}, ErrDuplicatedValueUnique
		}
	}
	r.orders = append(r.orders, cloneOrder(order))
	return order, nil
}

func (r *InMemoryOrderRepository) GetAll() ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Order, len(r.orders))
	for i, o := range r.orders {
		out[i] = cloneOrder(o)
	}
	return out, nil
}

func (r *InMemoryOrderRepository) GetByID(id string) (models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id {
			return cloneOrder(o), nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

func (r *InMemoryOrderRepository) Filter(of OrderFilter) ([]models.Order, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := []models.Order{}
	for _, o := range r.orders {
		if matchesOrderFilter(o, of) {
			filtered = append(filtered, cloneOrder(o))
		}
	}
	return paginate(filtered, of.Offset, of.Limit), len(filtered), nil
}

func (r *InMemoryOrderRepository) UpdateStatus(id string, status models.OrderStatus) (models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, o := range r.orders {
		if o.ID == id {
			r.orders[i].Status = status
			return cloneOrder(r.orders[i]), nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}
