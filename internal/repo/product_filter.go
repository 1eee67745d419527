package repo

// ProductFilter narrows back-office product listings. Bounds are inclusive.
type ProductFilter struct {
	Name     string
	// Category matches the category name or its slug.
	Category string
	MinPrice *float64
	MaxPrice *float64
	MinStock *int
	MaxStock *int
	Offset   *int
	Limit    *int
}
