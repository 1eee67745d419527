package repo

import "github.com/rogerio-castellano/storefront/internal/models"

type OrderFilter struct {
	// Search matches the order id, customer name or customer email, case-insensitively.
	Search string
	Status models.OrderStatus
	// CustomerID, when set, keeps only that customer's orders.
	CustomerID string
	Offset     *int
	Limit      *int
}

type OrderRepository interface {
	Create(order models.Order) (models.Order, error)
	GetAll() ([]models.Order, error)
	GetByID(id string) (models.Order, error)
	Filter(of OrderFilter) ([]models.Order, int, error)
	UpdateStatus(id string, status models.OrderStatus) (models.Order, error)
}
