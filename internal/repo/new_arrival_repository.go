package repo

import "github.com/rogerio-castellano/storefront/internal/models"

// NewArrivalFilter narrows new-arrival listings. Search matches the name or
// the description, ignoring case.
type NewArrivalFilter struct {
	Category    string
	Search      string
	VisibleOnly bool
}

type NewArrivalRepository interface {
	Filter(f NewArrivalFilter) ([]models.NewArrival, error)
	GetByID(id string) (models.NewArrival, error)
	Create(n models.NewArrival) (models.NewArrival, error)
	Update(n models.NewArrival) (models.NewArrival, error)
	Delete(id string) error
}
