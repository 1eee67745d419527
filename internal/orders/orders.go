// Package orders places and tracks orders behind an explicit asynchronous
// boundary. The simulated service stands in for a payment and fulfilment
// back end by waiting a configurable latency before answering.
package orders

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/repo"
	"go.uber.org/zap"
)

const (
	ShippingFee = 5.99
	TaxRate     = 0.07

	// DeliveryWindow is added to the order date to estimate delivery.
	DeliveryWindow = 5 * 24 * time.Hour
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrNoLines       = errors.New("order has no lines")
)

type PlaceOrderRequest struct {
	Customer        models.User
	Lines           []models.CartLine
	ShippingAddress models.Address
	PaymentMethod   string
	CouponCode      string
}

type Tracking struct {
	OrderID           string             `json:"order_id"`
	Status            models.OrderStatus `json:"status"`
	Progress          int                `json:"progress"`
	CreatedAt         time.Time          `json:"created_at"`
	EstimatedDelivery time.Time          `json:"estimated_delivery"`
	TrackingNumber    string             `json:"tracking_number,omitempty"`
	Lines             []models.OrderLine `json:"items"`
	ShippingAddress   models.Address     `json:"shipping_address"`
	Totals            models.Totals      `json:"totals"`
}

type Service interface {
	PlaceOrder(ctx context.Context, req PlaceOrderRequest) (models.Order, error)
	Track(ctx context.Context, id string) (Tracking, error)
}

// Progress maps an order status to the completion percentage shown to the customer.
func Progress(s models.OrderStatus) int {
	switch s {
	case models.OrderPending:
		return 10
	case models.OrderConfirmed:
		return 25
	case models.OrderShipped:
		return 50
	case models.OrderOutForDelivery:
		return 75
	case models.OrderDelivered:
		return 100
	default:
		return 0
	}
}

// Quote prices lines with a coupon discount percentage.
func Quote(lines []models.CartLine, discountPercent int) models.Totals {
	var subtotal float64
	for _, l := range lines {
		subtotal += l.LineTotal()
	}
	subtotal = models.RoundCents(subtotal)

	t := models.Totals{Subtotal: subtotal}
	if subtotal > 0 {
		t.Shipping = ShippingFee
	}
	t.Discount = models.RoundCents(subtotal * float64(discountPercent) / 100)
	t.Tax = models.RoundCents((subtotal - t.Discount) * TaxRate)
	t.Total = models.RoundCents(subtotal - t.Discount + t.Shipping + t.Tax)
	return t
}

func TrackingFor(o models.Order) Tracking {
	return Tracking{
		OrderID:           o.ID,
		Status:            o.Status,
		Progress:          Progress(o.Status),
		CreatedAt:         o.CreatedAt,
		EstimatedDelivery: o.CreatedAt.Add(DeliveryWindow),
		TrackingNumber:    o.TrackingNumber,
		Lines:             o.Lines,
		ShippingAddress:   o.ShippingAddress,
		Totals:            o.Totals,
	}
}

type SimulatedService struct {
	orders repo.OrderRepository
	deals  repo.DealRepository
	logger *zap.Logger

	// trackLatency defaults to latency.
	latency      time.Duration
	trackLatency time.Duration

	// now and newID are replaced in tests.
	now   func() time.Time
	newID func() string
}

func NewSimulatedService(orders repo.OrderRepository, deals repo.DealRepository, latency time.Duration, logger *zap.Logger) *SimulatedService {
	return &SimulatedService{
		orders:       orders,
		deals:        deals,
		latency:      latency,
		trackLatency: latency,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
		newID:        func() string { return strconv.Itoa(100000 + rand.IntN(900000)) },
	}
}

// WithTrackingLatency sets the delay Track simulates.
func (s *SimulatedService) WithTrackingLatency(d time.Duration) *SimulatedService {
	s.trackLatency = d
	return s
}

// wait blocks for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s *SimulatedService) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (models.Order, error) {
	if len(req.Lines) == 0 {
		return models.Order{}, ErrNoLines
	}

	discount := 0
	coupon := repo.NormalizeCoupon(req.CouponCode)
	if coupon != "" {
		d, err := repo.ValidateCoupon(s.deals, coupon)
		if err != nil {
			return models.Order{}, err
		}
		discount = d.DiscountPercent
	}

	if err := wait(ctx, s.latency); err != nil {
		return models.Order{}, err
	}

	o := models.Order{
		CustomerID:      req.Customer.ID,
		CustomerName:    req.Customer.Name,
		CustomerEmail:   req.Customer.Email,
		CreatedAt:       s.now(),
		Status:          models.OrderPending,
		Lines:           make([]models.OrderLine, 0, len(req.Lines)),
		Totals:          Quote(req.Lines, discount),
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		CouponCode:      coupon,
	}
	for _, l := range req.Lines {
		o.Lines = append(o.Lines, models.OrderLineFromCart(l))
	}

	const attempts = 5
	for range attempts {
		o.ID = s.newID()
		o.TrackingNumber = "ECO" + o.ID
		created, err := s.orders.Create(o)
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			continue
		}
		if err != nil {
			return models.Order{}, fmt.Errorf("failed to store order: %w", err)
		}
		s.logger.Info("order placed",
			zap.String("order_id", created.ID),
			zap.Float64("total", created.Totals.Total),
			zap.Int("units", created.Units()))
		return created, nil
	}
	return models.Order{}, fmt.Errorf("failed to allocate an order id after %d attempts", attempts)
}

func (s *SimulatedService) Track(ctx context.Context, id string) (Tracking, error) {
	if err := wait(ctx, s.trackLatency); err != nil {
		return Tracking{}, err
	}
	o, err := s.orders.GetByID(id)
	if errors.Is(err, repo.ErrOrderNotFound) {
		return Tracking{}, ErrOrderNotFound
	}
	if err != nil {
		return Tracking{}, err
	}
	return TrackingFor(o), nil
}
