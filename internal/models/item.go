package models

// CatalogItem is the canonical item shape shared by the cart and the wishlist.
type CatalogItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description,omitempty"`
}

// CartLine is a CatalogItem with a quantity. Price is the snapshot taken when the
// line was created.
type CartLine struct {
	CatalogItem
	Quantity int `json:"quantity"`
}

// WishlistItem is a saved CatalogItem. It carries no quantity.
type WishlistItem struct {
	CatalogItem
}

// ItemFromProduct snapshots the fields of a product that the cart and wishlist keep.
func ItemFromProduct(p Product) CatalogItem {
	return CatalogItem{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Image:       p.Image,
		Description: p.Description,
	}
}

// NewCartLine creates a line for item with quantity 1.
func NewCartLine(item CatalogItem) CartLine {
	return CartLine{CatalogItem: item, Quantity: 1}
}

// NewWishlistItem wraps item for the wishlist.
func NewWishlistItem(item CatalogItem) WishlistItem {
	return WishlistItem{CatalogItem: item}
}

// Item returns the catalog item saved in the wishlist.
func (w WishlistItem) Item() CatalogItem {
	return w.CatalogItem
}

// LineTotal is price times quantity.
func (l CartLine) LineTotal() float64 {
	return l.Price * float64(l.Quantity)
}
