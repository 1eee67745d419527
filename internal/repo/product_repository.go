package repo

import "github.com/rogerio-castellano/storefront/internal/models"

// ProductRepository is the back-office copy of the catalog. The storefront
// catalog itself is read-only and does not go through it.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id string) (models.Product, error)
	GetByName(name string) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(id string) error
	Filter(pf ProductFilter) ([]models.Product, int, error)
	AdjustStock(id string, delta int) (models.Product, error)
}
