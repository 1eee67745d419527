package handlers

import (
	"time"

	"github.com/rogerio-castellano/storefront/internal/catalog"
	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/notify"
)

type Meta struct {
	TotalCount int `json:"total_count"`
}

type CatalogResult struct {
	Data   []models.Product    `json:"data"`
	Meta   Meta                `json:"meta"`
	Filter catalog.FilterState `json:"filter"`
	// Query is the search/category part of the filter, ready for a shop URL.
	Query string `json:"query"`
}

type ProductDetailResult struct {
	Product         models.Product   `json:"product"`
	DiscountedPrice float64          `json:"discounted_price"`
	InWishlist      bool             `json:"in_wishlist"`
	Similar         []models.Product `json:"similar"`
}

type CartResponse struct {
	Items      []models.CartLine `json:"items"`
	TotalItems int               `json:"total_items"`
	Subtotal   float64           `json:"subtotal"`
}

type CartResult struct {
	Cart    CartResponse    `json:"cart"`
	Notices []notify.Notice `json:"notices"`
}

type AddItemRequest struct {
	ProductID string `json:"product_id"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type WishlistResponse struct {
	Items []models.WishlistItem `json:"items"`
	Count int                   `json:"count"`
}

type WishlistResult struct {
	Wishlist WishlistResponse `json:"wishlist"`
	Notices  []notify.Notice  `json:"notices"`
}

type WishlistContainsResult struct {
	ID         string `json:"id"`
	InWishlist bool   `json:"in_wishlist"`
}

type MoveToCartResult struct {
	Cart     CartResponse     `json:"cart"`
	Wishlist WishlistResponse `json:"wishlist"`
	Notices  []notify.Notice  `json:"notices"`
}

type CheckoutRequest struct {
	ShippingAddress models.Address `json:"shipping_address"`
	PaymentMethod   string         `json:"payment_method"`
	CouponCode      string         `json:"coupon_code"`
}

type CheckoutResult struct {
	Order             models.Order    `json:"order"`
	EstimatedDelivery time.Time       `json:"estimated_delivery"`
	Notices           []notify.Notice `json:"notices"`
}

type NoticesResult struct {
	Notices []notify.Notice `json:"notices"`
}

type CouponRequest struct {
	Code string `json:"code"`
}

type CouponResult struct {
	Code            string `json:"code"`
	Title           string `json:"title"`
	DiscountPercent int    `json:"discount_percent"`
}

type UserLogin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type LoginResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type ProductRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Stock       int     `json:"stock"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
	Featured    bool    `json:"featured"`
	Discount    int     `json:"discount"`
}

type ProductResponse struct {
	models.Product
	LowStock bool `json:"low_stock,omitempty"`
}

type ProductsSearchResult struct {
	Data []ProductResponse `json:"data"`
	Meta Meta              `json:"meta,omitempty"`
}

type StockAdjustmentRequest struct {
	Delta int `json:"delta"` // can be positive or negative
}

type ImportProductsResult struct {
	ImportedProductsCount int               `json:"imported"`
	Errors                []ValidationError `json:"errors"`
}

type OrdersSearchResult struct {
	Data []models.Order `json:"data"`
	Meta Meta           `json:"meta"`
}

type UpdateStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

type UsersSearchResult struct {
	Data []models.User `json:"data"`
	Meta Meta          `json:"meta"`
}

type UpdateRoleRequest struct {
	Role string `json:"role"`
}

type DealRequest struct {
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DiscountPercent int       `json:"discount_percent"`
	Code            string    `json:"code"`
	StartsAt        time.Time `json:"starts_at"`
	EndsAt          time.Time `json:"ends_at"`
	Active          bool      `json:"active"`
	Products        []string  `json:"products"`
}

type NewArrivalRequest struct {
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	DateAdded   time.Time `json:"date_added"`
	Visible     bool      `json:"visible"`
}

type NewArrivalView struct {
	models.NewArrival
	AddedLabel string `json:"added_label"`
	InWishlist bool   `json:"in_wishlist"`
}

// NewArrivalGroup is one category tab of the new arrivals page.
type NewArrivalGroup struct {
	Category string           `json:"category"`
	Items    []NewArrivalView `json:"items"`
}

type ProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ProfileResult struct {
	User    models.User     `json:"user"`
	Notices []notify.Notice `json:"notices"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// AccountOrder is one row of the signed-in shopper's order history.
type AccountOrder struct {
	ID          string             `json:"id"`
	CreatedAt   time.Time          `json:"created_at"`
	Status      models.OrderStatus `json:"status"`
	Items       int                `json:"items"`
	Total       float64            `json:"total"`
	TrackingURL string             `json:"tracking_url"`
}

type AccountOrdersResult struct {
	Data []AccountOrder `json:"data"`
	Meta Meta           `json:"meta"`
}
