package models

// Product represents a read-only catalog entry.
type Product struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Category    string  `json:"category" yaml:"category"`
	Price       float64 `json:"price" yaml:"price"`
	Description string  `json:"description" yaml:"description"`
	Image       string  `json:"image" yaml:"image"`
	Stock       int     `json:"stock" yaml:"stock"`
	Rating      float64 `json:"rating" yaml:"rating"`
	Reviews     int     `json:"reviews" yaml:"reviews"`
	Featured    bool    `json:"featured,omitempty" yaml:"featured"`
	Discount    int     `json:"discount,omitempty" yaml:"discount"`
}

// DiscountedPrice is the price after the product's own discount percentage.
func (p Product) DiscountedPrice() float64 {
	if p.Discount <= 0 {
		return p.Price
	}
	return RoundCents(p.Price * float64(100-p.Discount) / 100)
}

// RoundCents rounds an amount to two decimal places.
func RoundCents(v float64) float64 {
	if v < 0 {
		return -RoundCents(-v)
	}
	return float64(int64(v*100+0.5)) / 100
}
