package handlers

import (
	"slices"
	"strings"

	"github.com/rogerio-castellano/storefront/internal/models"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	if strings.TrimSpace(p.Category) == "" {
		errs = append(errs, ValidationError{Field: "Category", Description: "Category is required"})
	}
	if p.Price <= 0 {
		errs = append(errs, ValidationError{Field: "Price", Description: "Price must be greater than zero"})
	}
	if p.Stock < 0 {
		errs = append(errs, ValidationError{Field: "Stock", Description: "Stock cannot be negative"})
	}
	if p.Rating < 0 || p.Rating > 5 {
		errs = append(errs, ValidationError{Field: "Rating", Description: "Rating must be between 0 and 5"})
	}
	if p.Discount < 0 || p.Discount > 100 {
		errs = append(errs, ValidationError{Field: "Discount", Description: "Discount must be between 0 and 100"})
	}
	return errs
}

func validateDeal(d DealRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(d.Title) == "" {
		errs = append(errs, ValidationError{Field: "Title", Description: "Title is required"})
	}
	if strings.TrimSpace(d.Code) == "" {
		errs = append(errs, ValidationError{Field: "Code", Description: "Code is required"})
	}
	if d.DiscountPercent <= 0 || d.DiscountPercent > 100 {
		errs = append(errs, ValidationError{Field: "DiscountPercent", Description: "Discount must be between 1 and 100"})
	}
	if !d.StartsAt.IsZero() && !d.EndsAt.IsZero() && d.EndsAt.Before(d.StartsAt) {
		errs = append(errs, ValidationError{Field: "EndsAt", Description: "End date must not be before the start date"})
	}
	return errs
}

func validateNewArrival(n NewArrivalRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(n.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	if !slices.Contains(models.NewArrivalCategories, n.Category) {
		errs = append(errs, ValidationError{Field: "Category", Description: "Category must be one of " + strings.Join(models.NewArrivalCategories, ", ")})
	}
	if n.Price <= 0 {
		errs = append(errs, ValidationError{Field: "Price", Description: "Price must be greater than zero"})
	}
	if strings.TrimSpace(n.Image) == "" {
		errs = append(errs, ValidationError{Field: "Image", Description: "Image is required"})
	}
	if strings.TrimSpace(n.Description) == "" {
		errs = append(errs, ValidationError{Field: "Description", Description: "Description is required"})
	}
	return errs
}

var paymentMethods = map[string]bool{"credit-card": true, "paypal": true}

func validateCheckout(c CheckoutRequest) []ValidationError {
	errs := []ValidationError{}
	a := c.ShippingAddress
	required := []struct{ field, value string }{
		{"Name", a.Name},
		{"Street", a.Street},
		{"City", a.City},
		{"ZipCode", a.ZipCode},
		{"Country", a.Country},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, ValidationError{Field: r.field, Description: r.field + " is required"})
		}
	}
	if !paymentMethods[c.PaymentMethod] {
		errs = append(errs, ValidationError{Field: "PaymentMethod", Description: "Payment method must be credit-card or paypal"})
	}
	return errs
}

func validateStatus(s models.OrderStatus) []ValidationError {
	if s.Valid() {
		return []ValidationError{}
	}
	return []ValidationError{{Field: "Status", Description: "Unknown order status"}}
}
