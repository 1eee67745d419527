package repo

import "github.com/rogerio-castellano/storefront/internal/models"

type UserFilter struct {
	// Search matches name or email, case-insensitively.
	Search string
	Role   string
	Offset *int
	Limit  *int
}

type UserRepository interface {
	GetAll() ([]models.User, error)
	GetByID(id string) (models.User, error)
	GetByEmail(email string) (models.User, error)
	Create(u models.User) (models.User, error)
	UpdateRole(id, role string) (models.User, error)
	UpdateProfile(id, name, email string) (models.User, error)
	Filter(uf UserFilter) ([]models.User, int, error)
}
