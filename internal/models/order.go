package models

import "time"

type OrderStatus string

const (
	OrderPending        OrderStatus = "pending"
	OrderConfirmed      OrderStatus = "confirmed"
	OrderShipped        OrderStatus = "shipped"
	OrderOutForDelivery OrderStatus = "out_for_delivery"
	OrderDelivered      OrderStatus = "delivered"
	OrderCancelled      OrderStatus = "cancelled"
)

// OrderStatuses lists every status in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderPending,
	OrderConfirmed,
	OrderShipped,
	OrderOutForDelivery,
	OrderDelivered,
	OrderCancelled,
}

func (s OrderStatus) Valid() bool {
	for _, st := range OrderStatuses {
		if s == st {
			return true
		}
	}
	return false
}

type OrderLine struct {
	ID       string  `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Quantity int     `json:"quantity" yaml:"quantity"`
	Price    float64 `json:"price" yaml:"price"`
}

// OrderLineFromCart drops the presentation fields of a cart line.
func OrderLineFromCart(l CartLine) OrderLine {
	return OrderLine{ID: l.ID, Name: l.Name, Quantity: l.Quantity, Price: l.Price}
}

type Address struct {
	Name    string `json:"name,omitempty" yaml:"name"`
	Street  string `json:"street" yaml:"street"`
	City    string `json:"city" yaml:"city"`
	State   string `json:"state" yaml:"state"`
	ZipCode string `json:"zip_code" yaml:"zip_code"`
	Country string `json:"country" yaml:"country"`
}

type Totals struct {
	Subtotal float64 `json:"subtotal" yaml:"subtotal"`
	Shipping float64 `json:"shipping" yaml:"shipping"`
	Discount float64 `json:"discount" yaml:"discount"`
	Tax      float64 `json:"tax" yaml:"tax"`
	Total    float64 `json:"total" yaml:"total"`
}

type Order struct {
	ID              string      `json:"id" yaml:"id"`
	CustomerID      string      `json:"customer_id" yaml:"customer_id"`
	CustomerName    string      `json:"customer_name" yaml:"customer_name"`
	CustomerEmail   string      `json:"customer_email" yaml:"customer_email"`
	CreatedAt       time.Time   `json:"created_at" yaml:"created_at"`
	Status          OrderStatus `json:"status" yaml:"status"`
	Lines           []OrderLine `json:"items" yaml:"items"`
	Totals          Totals      `json:"totals" yaml:"totals"`
	ShippingAddress Address     `json:"shipping_address" yaml:"shipping_address"`
	PaymentMethod   string      `json:"payment_method,omitempty" yaml:"payment_method"`
	CouponCode      string      `json:"coupon_code,omitempty" yaml:"coupon_code"`
	TrackingNumber  string      `json:"tracking_number,omitempty" yaml:"tracking_number"`
}

// Units is the number of items across all lines.
func (o Order) Units() int {
	n := 0
	for _, l := range o.Lines {
		n += l.Quantity
	}
	return n
}
