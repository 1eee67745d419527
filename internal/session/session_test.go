package session

import (
	"context"
	"testing"
	"time"

	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/notify"
	"github.com/rogerio-castellano/storefront/internal/orders"
	"github.com/rogerio-castellano/storefront/internal/repo"
	"github.com/rogerio-castellano/storefront/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var (
	toothbrush = models.CatalogItem{ID: "1", Name: "Bamboo Toothbrush Set", Price: 12.99}
	tote       = models.CatalogItem{ID: "8", Name: "Hemp Tote Bag", Price: 34.99}
)

func messages(ns []notify.Notice) []string {
	out := []string{}
	for _, n := range ns {
		out = append(out, n.Message)
	}
	return out
}

func newSession(t *testing.T) *Session {
	t.Helper()
	return New(context.Background(), "s1", storage.NewMemoryStore(), zap.NewNop())
}

func TestDo_ReturnsNoticesOfThatActionOnly(t *testing.T) {
	ctx := context.Background()
	s := newSession(t)

	notices, err := s.Do(func() error {
		s.Cart.Add(ctx, toothbrush)
		s.Cart.Add(ctx, toothbrush)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Bamboo Toothbrush Set added to cart", "Bamboo Toothbrush Set quantity updated in cart"}, messages(notices))

	notices, err = s.Do(func() error { return nil })
	require.NoError(t, err)
	assert.Empty(t, notices)
	assert.NotNil(t, notices)
}

func TestAddWishlistItemToCart(t *testing.T) {
	ctx := context.Background()
	s := newSession(t)
	s.Wishlist.Add(ctx, tote)

	require.NoError(t, s.AddWishlistItemToCart(ctx, "8"))
	assert.Equal(t, 1, s.Cart.TotalItems())
	assert.True(t, s.Wishlist.Contains("8"), "the item stays in the wishlist")

	assert.ErrorIs(t, s.AddWishlistItemToCart(ctx, "404"), ErrNotInWishlist)
}

func TestMoveAllToCart(t *testing.T) {
	ctx := context.Background()
	s := newSession(t)
	s.Cart.Add(ctx, tote)
	s.Wishlist.Add(ctx, toothbrush)
	s.Wishlist.Add(ctx, tote)

	notices, err := s.Do(func() error {
		s.MoveAllToCart(ctx)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 0, s.Wishlist.Len())
	assert.Equal(t, 2, s.Cart.Len())
	assert.Equal(t, 3, s.Cart.TotalItems())
	assert.Contains(t, messages(notices), "All items added to cart")
	assert.Equal(t, "Wishlist cleared", messages(notices)[len(notices)-1])
}

func TestMoveAllToCart_EmptyWishlistIsNoop(t *testing.T) {
	s := newSession(t)
	notices, _ := s.Do(func() error {
		s.MoveAllToCart(context.Background())
		return nil
	})
	assert.Empty(t, notices)
}

func newOrderService() orders.Service {
	return orders.NewSimulatedService(repo.NewInMemoryOrderRepository(), repo.NewInMemoryDealRepository(), 0, zap.NewNop())
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()
	s := newSession(t)
	s.SetUser(ctx, models.User{ID: "2", Name: "Regular User", Email: "user@example.com", Role: models.RoleUser})
	s.Cart.Add(ctx, toothbrush)
	s.Cart.Add(ctx, tote)

	var o models.Order
	notices, err := s.Do(func() error {
		var err error
		o, err = s.Checkout(ctx, newOrderService(), CheckoutRequest{PaymentMethod: "credit-card"})
		return err
	})
	require.NoError(t, err)

	assert.Equal(t, "2", o.CustomerID)
	assert.Len(t, o.Lines, 2)
	assert.Equal(t, 0, s.Cart.Len())
	assert.Equal(t, "Your order has been placed successfully!", messages(notices)[len(notices)-1])
}

func TestCheckout_EmptyCart(t *testing.T) {
	s := newSession(t)

	notices, err := s.Do(func() error {
		_, err := s.Checkout(context.Background(), newOrderService(), CheckoutRequest{})
		return err
	})
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, []string{"Your cart is empty."}, messages(notices))
}

func TestCheckout_FailureKeepsCart(t *testing.T) {
	ctx := context.Background()
	s := newSession(t)
	s.Cart.Add(ctx, tote)

	_, err := s.Checkout(ctx, newOrderService(), CheckoutRequest{CouponCode: "NOPE"})
	assert.ErrorIs(t, err, repo.ErrInvalidCoupon)
	assert.Equal(t, 1, s.Cart.Len())
}

func TestUser_PersistsAcrossHydration(t *testing.T) {
	ctx := context.Background()
	slots := storage.NewMemoryStore()

	s := New(ctx, "s1", slots, zap.NewNop())
	_, ok := s.User()
	assert.False(t, ok)

	s.SetUser(ctx, models.User{ID: "1", Name: "Admin User", Role: models.RoleAdmin})
	s.Cart.Add(ctx, tote)

	again := New(ctx, "s1", slots, zap.NewNop())
	u, ok := again.User()
	require.True(t, ok)
	assert.True(t, u.IsAdmin())
	assert.Equal(t, s.Cart.Lines(), again.Cart.Lines())

	again.Logout(ctx)
	_, ok = New(ctx, "s1", slots, zap.NewNop()).User()
	assert.False(t, ok)
}

func TestUpdateProfile_RewritesUserSlot(t *testing.T) {
	ctx := context.Background()
	slots := storage.NewMemoryStore()
	s := New(ctx, "s1", slots, zap.NewNop())

	_, err := s.UpdateProfile(ctx, "Jane", "jane@example.com")
	assert.ErrorIs(t, err, ErrNotSignedIn)

	s.SetUser(ctx, models.User{ID: "2", Name: "Regular User", Email: "old@example.com", Role: models.RoleUser})
	notices, err := s.Do(func() error {
		_, err := s.UpdateProfile(ctx, "Jane", "jane@example.com")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Profile updated successfully"}, messages(notices))

	var stored models.User
	ok, err := storage.LoadJSON(ctx, slots, storage.UserKey, &stored)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Jane", stored.Name)
	assert.Equal(t, "jane@example.com", stored.Email)
	assert.Equal(t, "2", stored.ID)
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	s := newSession(t)
	assert.ErrorIs(t, s.ChangePassword(), ErrNotSignedIn)

	s.SetUser(ctx, models.User{ID: "2", Name: "Regular User"})
	notices, err := s.Do(s.ChangePassword)
	require.NoError(t, err)
	assert.Equal(t, []string{"Password updated successfully"}, messages(notices))
}

func TestManager_GetAndEvict(t *testing.T) {
	ctx := context.Background()
	slots := storage.NewMemoryStore()
	m := NewManager(slots, time.Minute, zap.NewNop())

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	s := m.Get(ctx, "")
	assert.NotEmpty(t, s.ID)
	assert.Same(t, s, m.Get(ctx, s.ID))
	assert.NotEqual(t, s.ID, m.Get(ctx, "not-a-uuid").ID)
	assert.Equal(t, 2, m.Len())

	s.Cart.Add(ctx, toothbrush)

	now = now.Add(2 * time.Minute)
	assert.Equal(t, 2, m.Evict())
	assert.Equal(t, 0, m.Len())

	back := m.Get(ctx, s.ID)
	assert.NotSame(t, s, back)
	assert.Equal(t, 1, back.Cart.TotalItems(), "evicted sessions hydrate from their slots")
}

func TestManager_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	m := NewManager(storage.NewMemoryStore(), time.Minute, zap.NewNop())

	a, b := m.Get(ctx, ""), m.Get(ctx, "")
	a.Cart.Add(ctx, toothbrush)
	assert.Equal(t, 0, b.Cart.Len())
}

func TestManager_RunStopsWithContext(t *testing.T) {
	m := NewManager(storage.NewMemoryStore(), time.Minute, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		m.Run(ctx, time.Millisecond)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
