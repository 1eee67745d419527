// Package session owns the per-visitor application state: cart, wishlist,
// signed-in user and the notices produced by the last action.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rogerio-castellano/storefront/internal/cart"
	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/notify"
	"github.com/rogerio-castellano/storefront/internal/orders"
	"github.com/rogerio-castellano/storefront/internal/storage"
	"github.com/rogerio-castellano/storefront/internal/wishlist"
	"go.uber.org/zap"
)

var (
	ErrEmptyCart     = errors.New("your cart is empty")
	ErrNotInWishlist = errors.New("item is not in the wishlist")
	ErrNotSignedIn   = errors.New("not signed in")
)

type CheckoutRequest struct {
	ShippingAddress models.Address
	PaymentMethod   string
	CouponCode      string
}

type Session struct {
	ID       string
	Cart     *cart.Store
	Wishlist *wishlist.Store

	mu      sync.Mutex
	notices *notify.Buffer
	slots   storage.Slots
	logger  *zap.Logger

	userMu sync.RWMutex
	user   *models.User
}

// New hydrates a session from slots, which must already be scoped to this
// visitor.
func New(ctx context.Context, id string, slots storage.Slots, logger *zap.Logger) *Session {
	logger = logger.With(zap.String("session_id", id))
	buf := &notify.Buffer{}
	n := notify.Multi(buf, notify.Log(logger))

	s := &Session{
		ID:       id,
		Cart:     cart.New(ctx, slots, n, logger),
		Wishlist: wishlist.New(ctx, slots, n, logger),
		notices:  buf,
		slots:    slots,
		logger:   logger,
	}

	var u models.User
	ok, err := storage.LoadJSON(ctx, slots, storage.UserKey, &u)
	if err != nil {
		logger.Warn("could not load user, starting signed out", zap.Error(err))
	}
	if ok && u.ID != "" {
		s.user = &u
	}
	return s
}

// Do runs fn as the only action in flight for this session and returns the
// notices it produced.
func (s *Session) Do(fn func() error) ([]notify.Notice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notices.Drain()
	err := fn()
	return s.notices.Drain(), err
}

func (s *Session) User() (models.User, bool) {
	s.userMu.RLock()
	defer s.userMu.RUnlock()

	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

func (s *Session) SetUser(ctx context.Context, u models.User) {
	s.userMu.Lock()
	s.user = &u
	s.userMu.Unlock()

	if err := storage.SaveJSON(ctx, s.slots, storage.UserKey, u); err != nil {
		s.logger.Error("failed to persist user", zap.Error(err))
	}
}

func (s *Session) Logout(ctx context.Context) {
	s.userMu.Lock()
	s.user = nil
	s.userMu.Unlock()

	if err := s.slots.Delete(ctx, storage.UserKey); err != nil {
		s.logger.Error("failed to remove user", zap.Error(err))
	}
}

// UpdateProfile renames the signed-in user and rewrites the user slot.
func (s *Session) UpdateProfile(ctx context.Context, name, email string) (models.User, error) {
	u, ok := s.User()
	if !ok {
		return models.User{}, ErrNotSignedIn
	}
	u.Name = name
	u.Email = email
	s.SetUser(ctx, u)
	notify.Successf(s.notices, "Profile updated successfully")
	return u, nil
}

// ChangePassword acknowledges a password change for the signed-in user.
// Passwords are not stored, so nothing else changes.
func (s *Session) ChangePassword() error {
	if _, ok := s.User(); !ok {
		return ErrNotSignedIn
	}
	notify.Successf(s.notices, "Password updated successfully")
	return nil
}

// AddWishlistItemToCart copies one wishlist item into the cart. The item
// stays in the wishlist.
func (s *Session) AddWishlistItemToCart(ctx context.Context, id string) error {
	item, ok := s.Wishlist.Get(id)
	if !ok {
		return ErrNotInWishlist
	}
	s.Cart.Add(ctx, item.Item())
	return nil
}

// MoveAllToCart adds every wishlist item to the cart, then empties the wishlist.
func (s *Session) MoveAllToCart(ctx context.Context) {
	items := s.Wishlist.Items()
	if len(items) == 0 {
		return
	}
	for _, it := range items {
		s.Cart.Add(ctx, it.Item())
	}
	notify.Successf(s.notices, "All items added to cart")
	s.Wishlist.Clear(ctx)
}

// Checkout places the cart as an order through svc and clears the cart on
// success. A guest checks out under the shipping name.
func (s *Session) Checkout(ctx context.Context, svc orders.Service, req CheckoutRequest) (models.Order, error) {
	lines := s.Cart.Lines()
	if len(lines) == 0 {
		notify.Errorf(s.notices, "Your cart is empty.")
		return models.Order{}, ErrEmptyCart
	}

	customer, ok := s.User()
	if !ok {
		customer = models.User{ID: "guest-" + s.ID, Name: req.ShippingAddress.Name}
	}

	o, err := svc.PlaceOrder(ctx, orders.PlaceOrderRequest{
		Customer:        customer,
		Lines:           lines,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		CouponCode:      req.CouponCode,
	})
	if err != nil {
		notify.Errorf(s.notices, "There was a problem placing your order.")
		return models.Order{}, fmt.Errorf("checkout: %w", err)
	}

	s.Cart.Clear(ctx)
	notify.Successf(s.notices, "Your order has been placed successfully!")
	return o, nil
}
