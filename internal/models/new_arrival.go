package models

import (
	"fmt"
	"time"
)

// NewArrivalCategories are the shelves a new arrival can be filed under.
var NewArrivalCategories = []string{"Home & Kitchen", "Personal Care", "Fashion", "Electronics", "Outdoor", "Pets"}

// NewArrival is a recently added item shown on its own page. Hidden arrivals
// are only visible to admins.
type NewArrival struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Category    string    `json:"category" yaml:"category"`
	Price       float64   `json:"price" yaml:"price"`
	Image       string    `json:"image" yaml:"image"`
	Description string    `json:"description" yaml:"description"`
	DateAdded   time.Time `json:"date_added" yaml:"date_added"`
	Visible     bool      `json:"visible" yaml:"visible"`
}

// ItemFromNewArrival snapshots a new arrival for the cart or the wishlist.
func ItemFromNewArrival(n NewArrival) CatalogItem {
	return CatalogItem{
		ID:          n.ID,
		Name:        n.Name,
		Price:       n.Price,
		Image:       n.Image,
		Description: n.Description,
	}
}

// AddedLabel describes how long ago the arrival was added, in whole days.
func (n NewArrival) AddedLabel(now time.Time) string {
	days := int(now.Sub(n.DateAdded).Hours() / 24)
	switch {
	case days <= 0:
		return "Added today"
	case days == 1:
		return "Added yesterday"
	default:
		return fmt.Sprintf("Added %d days ago", days)
	}
}
