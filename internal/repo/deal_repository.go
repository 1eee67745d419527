package repo

import (
	"errors"
	"strings"

	"github.com/rogerio-castellano/storefront/internal/models"
)

type DealRepository interface {
	GetAll() ([]models.Deal, error)
	GetByID(id string) (models.Deal, error)
	GetByCode(code string) (models.Deal, error)
	Create(d models.Deal) (models.Deal, error)
	Update(d models.Deal) (models.Deal, error)
	Delete(id string) error
}

// NormalizeCoupon trims and upper-cases a coupon code.
func NormalizeCoupon(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidateCoupon looks up an active deal by its coupon code. Start and end
// dates are informational and not checked.
func ValidateCoupon(r DealRepository, code string) (models.Deal, error) {
	code = NormalizeCoupon(code)
	if code == "" {
		return models.Deal{}, ErrEmptyCoupon
	}
	d, err := r.GetByCode(code)
	if errors.Is(err, ErrDealNotFound) {
		return models.Deal{}, ErrInvalidCoupon
	}
	if err != nil {
		return models.Deal{}, err
	}
	if !d.Active {
		return models.Deal{}, ErrInvalidCoupon
	}
	return d, nil
}
