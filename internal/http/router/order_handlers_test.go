package router_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/rogerio-castellano/storefront/internal/http/handlers"
	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/orders"
)

func checkoutRequest(coupon string) handlers.CheckoutRequest {
	return handlers.CheckoutRequest{
		ShippingAddress: models.Address{
			Name:    "Jane Doe",
			Street:  "1 Forest Road",
			City:    "Portland",
			State:   "Oregon",
			ZipCode: "97201",
			Country: "United States",
		},
		PaymentMethod: "credit-card",
		CouponCode:    coupon,
	}
}

func TestCheckoutHandler(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(http.MethodPost, "/cart/items", handlers.AddItemRequest{ProductID: "2"})
	sid := sessionOf(t, w)

	w = e.do(http.MethodPost, "/checkout", checkoutRequest("earth20"), withSession(sid)...)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}

	var resp handlers.CheckoutResult
	decode(t, w, &resp)
	o := resp.Order
	if len(o.ID) != 6 || o.TrackingNumber != "ECO"+o.ID {
		t.Errorf("unexpected order id %q / tracking %q", o.ID, o.TrackingNumber)
	}
	if o.Status != models.OrderPending || o.CouponCode != "EARTH20" {
		t.Errorf("unexpected order %+v", o)
	}
	if o.CustomerID != "guest-"+sid {
		t.Errorf("expected guest customer, got %q", o.CustomerID)
	}
	want := models.Totals{Subtotal: 29.99, Shipping: 5.99, Discount: 6.00, Tax: 1.68, Total: 31.66}
	got := o.Totals
	if !near(got.Subtotal, want.Subtotal) || !near(got.Shipping, want.Shipping) || !near(got.Discount, want.Discount) ||
		!near(got.Tax, want.Tax) || !near(got.Total, want.Total) {
		t.Errorf("expected totals %+v, got %+v", want, got)
	}
	if !resp.EstimatedDelivery.Equal(o.CreatedAt.Add(5 * 24 * time.Hour)) {
		t.Errorf("unexpected estimated delivery %v", resp.EstimatedDelivery)
	}
	if len(resp.Notices) == 0 || resp.Notices[len(resp.Notices)-1].Message != "Your order has been placed successfully!" {
		t.Errorf("unexpected notices %v", resp.Notices)
	}

	w = e.do(http.MethodGet, "/cart", nil, withSession(sid)...)
	var cart handlers.CartResponse
	decode(t, w, &cart)
	if len(cart.Items) != 0 {
		t.Errorf("expected cart to be cleared, got %v", cart.Items)
	}

	if _, err := e.orders.GetByID(o.ID); err != nil {
		t.Errorf("expected order to be stored: %v", err)
	}

	t.Run("Tracking the new order", func(t *testing.T) {
		w := e.do(http.MethodGet, "/orders/"+o.ID+"/tracking", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		var tr orders.Tracking
		decode(t, w, &tr)
		if tr.Progress != 10 || tr.Status != models.OrderPending || len(tr.Lines) != 1 {
			t.Errorf("unexpected tracking %+v", tr)
		}
	})
}

func TestCheckoutHandler_Failures(t *testing.T) {
	e := newTestEnv(t)

	t.Run("Empty cart", func(t *testing.T) {
		w := e.do(http.MethodPost, "/checkout", checkoutRequest(""))
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 Bad Request, got %d", w.Code)
		}
	})

	t.Run("Missing address fields", func(t *testing.T) {
		req := checkoutRequest("")
		req.ShippingAddress.City = ""
		req.PaymentMethod = "cash"
		w := e.do(http.MethodPost, "/checkout", req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 Bad Request, got %d", w.Code)
		}
		var errs []handlers.ValidationError
		decode(t, w, &errs)
		if len(errs) != 2 || errs[0].Field != "City" || errs[1].Field != "PaymentMethod" {
			t.Errorf("unexpected validation errors %v", errs)
		}
	})

	t.Run("Invalid coupon keeps the cart", func(t *testing.T) {
		w := e.do(http.MethodPost, "/cart/items", handlers.AddItemRequest{ProductID: "5"})
		sid := sessionOf(t, w)

		w = e.do(http.MethodPost, "/checkout", checkoutRequest("HOME15"), withSession(sid)...)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 Bad Request, got %d", w.Code)
		}

		w = e.do(http.MethodGet, "/cart", nil, withSession(sid)...)
		var cart handlers.CartResponse
		decode(t, w, &cart)
		if cart.TotalItems != 1 {
			t.Errorf("expected cart to be kept, got %+v", cart)
		}
	})

	t.Run("Signed-in shopper is the customer", func(t *testing.T) {
		w := e.do(http.MethodPost, "/login", handlers.UserLogin{Email: "jane@example.com", Password: "pw"})
		sid := sessionOf(t, w)
		e.do(http.MethodPost, "/cart/items", handlers.AddItemRequest{ProductID: "5"}, withSession(sid)...)

		w = e.do(http.MethodPost, "/checkout", checkoutRequest(""), withSession(sid)...)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201 Created, got %d", w.Code)
		}
		var resp handlers.CheckoutResult
		decode(t, w, &resp)
		if resp.Order.CustomerEmail != "jane@example.com" {
			t.Errorf("unexpected customer %q", resp.Order.CustomerEmail)
		}
	})
}

func TestTrackOrderHandler(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(http.MethodGet, "/orders/ord-002/tracking", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var tr orders.Tracking
	decode(t, w, &tr)
	if tr.Progress != 50 || tr.TrackingNumber != "ECO987654321" {
		t.Errorf("unexpected tracking %+v", tr)
	}

	w = e.do(http.MethodGet, "/orders/000000/tracking", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}
