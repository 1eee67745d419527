package repo

import (
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/storefront/internal/models"
)

type InMemoryDealRepository struct {
	mu    sync.RWMutex
	deals []models.Deal
}

func NewInMemoryDealRepository(seed ...models.Deal) *InMemoryDealRepository {
	r := &InMemoryDealRepository{deals: []models.Deal{}}
	for _, d := range seed {
		d.Code = NormalizeCoupon(d.Code)
		d.Products = slices.Clone(d.Products)
		r.deals = append(r.deals, d)
	}
	return r
}

func cloneDeal(d models.Deal) models.Deal {
	d.Products = slices.Clone(d.Products)
	return d
}

func (r *InMemoryDealRepository) GetAll() ([]models.Deal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Deal, len(r.deals))
	for i, d := range r.deals {
		out[i] = cloneDeal(d)
	}
	return out, nil
}

func (r *InMemoryDealRepository) GetByID(id string) (models.Deal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.deals {
		if d.ID == id {
			return cloneDeal(d), nil
		}
	}
	return models.Deal{}, ErrDealNotFound
}

func (r *InMemoryDealRepository) GetByCode(code string) (models.Deal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.deals {
		if strings.EqualFold(d.Code, code) {
			return cloneDeal(d), nil
		}
	}
	return models.Deal{}, ErrDealNotFound
}

func (r *InMemoryDealRepository) Create(deal models.Deal) (models.Deal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	deal.Code = NormalizeCoupon(deal.Code)
	for _, d := range r.deals {
		if d.Code == deal.Code {
			return models.Deal{}, ErrDuplicatedValueUnique
		}
	}
	if deal.ID == "" {
		deal.ID = uuid.NewString()
	}
	r.deals = append(r.deals, cloneDeal(deal))
	return deal, nil
}

func (r *InMemoryDealRepository) Update(deal models.Deal) (models.Deal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	deal.Code = NormalizeCoupon(deal.Code)
	idx := -1
	for i, d := range r.deals {
		if d.ID == deal.ID {
			idx = i
		} else if d.Code == deal.Code {
			return models.Deal{}, ErrDuplicatedValueUnique
		}
	}
	if idx < 0 {
		return models.Deal{}, ErrDealNotFound
	}
	r.deals[idx] = cloneDeal(deal)
	return deal, nil
}

func (r *InMemoryDealRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, d := range r.deals {
		if d.ID == id {
			r.deals = slices.Delete(r.deals, i, i+1)
			return nil
		}
	}
	return ErrDealNotFound
}
