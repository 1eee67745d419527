package repo

import "errors"

var (
	// ErrProductNotFound is returned when a product is not found in the repository.
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidStockChange is returned when an adjustment would take stock below zero.
	ErrInvalidStockChange = errors.New("stock cannot be negative")
	// ErrDuplicatedValueUnique is returned when a unique column (product name, user email, order id) clashes.
	ErrDuplicatedValueUnique = errors.New("unique constraint violation")

	ErrOrderNotFound = errors.New("order not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrDealNotFound  = errors.New("deal not found")

	ErrNewArrivalNotFound = errors.New("new arrival not found")

	ErrEmptyCoupon   = errors.New("please enter a coupon code")
	ErrInvalidCoupon = errors.New("invalid coupon code")
)

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// paginate returns the offset/limit window of items. A nil or non-positive
// limit means "to the end".
func paginate[T any](items []T, offset, limit *int) []T {
	if offset != nil && *offset > len(items) {
		return []T{}
	}

	start := 0
	if offset != nil {
		start = clamp(*offset, 0, len(items))
	}

	end := len(items)
	if limit != nil && *limit > 0 {
		end = clamp(start+*limit, start, len(items))
	}

	return items[start:end]
}
