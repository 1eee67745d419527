package repo

import (
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/storefront/internal/models"
)

type InMemoryUserRepository struct {
	mu    sync.RWMutex
	users []models.User
}

func NewInMemoryUserRepository(seed ...models.User) *InMemoryUserRepository {
	r := &InMemoryUserRepository{users: slices.Clone(seed)}
	if r.users == nil {
		r.users = []models.User{}
	}
	return r
}

func matchesUserFilter(u models.User, uf UserFilter) bool {
	if uf.Role != "" && u.Role != uf.Role {
		return false
	}
	if uf.Search == "" {
		return true
	}
	q := strings.ToLower(uf.Search)
	return strings.Contains(strings.ToLower(u.Name), q) || strings.Contains(strings.ToLower(u.Email), q)
}

func (r *InMemoryUserRepository) GetAll() ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.users), nil
}

func (r *InMemoryUserRepository) GetByID(id string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r *InMemoryUserRepository) GetByEmail(email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r *InMemoryUserRepository) Create(u models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if strings.EqualFold(user.Email, u.Email) || (u.ID != "" && user.ID == u.ID) {
			return models.User{}, ErrDuplicatedValueUnique
		}
	}

	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	r.users = append(r.users, u)
	return u, nil
}

func (r *InMemoryUserRepository) UpdateRole(id, role string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, u := range r.users {
		if u.ID == id {
			r.users[i].Role = role
			return r.users[i], nil
		}
	}
	return models.User{}, ErrUserNotFound
}

// UpdateProfile changes name and email. The email stays unique across users.
func (r *InMemoryUserRepository) UpdateProfile(id, name, email string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, u := range r.users {
		if u.ID == id {
			idx = i
		} else if strings.EqualFold(u.Email, email) {
			return models.User{}, ErrDuplicatedValueUnique
		}
	}
	if idx < 0 {
		return models.User{}, ErrUserNotFound
	}
	r.users[idx].Name = name
	r.users[idx].Email = email
	return r.users[idx], nil
}

func (r *InMemoryUserRepository) Filter(uf UserFilter) ([]models.User, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := []models.User{}
	for _, u := range r.users {
		if matchesUserFilter(u, uf) {
			filtered = append(filtered, u)
		}
	}
	return slices.Clone(paginate(filtered, uf.Offset, uf.Limit)), len(filtered), nil
}
