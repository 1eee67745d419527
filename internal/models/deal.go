package models

import "time"

// Deal is a promotion with a coupon code.
type Deal struct {
	ID              string    `json:"id" yaml:"id"`
	Title           string    `json:"title" yaml:"title"`
	Description     string    `json:"description" yaml:"description"`
	DiscountPercent int       `json:"discount_percent" yaml:"discount_percent"`
	Code            string    `json:"code" yaml:"code"`
	StartsAt        time.Time `json:"starts_at" yaml:"starts_at"`
	EndsAt          time.Time `json:"ends_at" yaml:"ends_at"`
	Active          bool      `json:"active" yaml:"active"`
	Products        []string  `json:"products" yaml:"products"`
}
