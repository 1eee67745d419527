package router_test

import (
	"net/http"
	"testing"

	"github.com/rogerio-castellano/storefront/internal/http/handlers"
	"github.com/rogerio-castellano/storefront/internal/models"
)

func TestListOrdersHandler(t *testing.T) {
	e := newTestEnv(t)

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"All", "", []string{"ord-001", "ord-002", "ord-003", "ord-004"}},
		{"Status", "?status=pending", []string{"ord-003"}},
		{"Search by customer", "?search=SARAH", []string{"ord-001"}},
		{"Search by email", "?search=david.w@", []string{"ord-004"}},
		{"Paginated", "?limit=2&offset=1", []string{"ord-002", "ord-003"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := e.admin(http.MethodGet, "/admin/orders"+tt.query, nil)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200 OK, got %d", w.Code)
			}
			var resp handlers.OrdersSearchResult
			decode(t, w, &resp)
			if len(resp.Data) != len(tt.wantIDs) {
				t.Fatalf("expected %v, got %d orders", tt.wantIDs, len(resp.Data))
			}
			for i, id := range tt.wantIDs {
				if resp.Data[i].ID != id {
					t.Errorf("order %d: expected %s, got %s", i, id, resp.Data[i].ID)
				}
			}
		})
	}

	w := e.admin(http.MethodGet, "/admin/orders?status=lost", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for an unknown status, got %d", w.Code)
	}
}

func TestOrderStatusHandlers(t *testing.T) {
	e := newTestEnv(t)

	w := e.admin(http.MethodGet, "/admin/orders/ord-001", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var o models.Order
	decode(t, w, &o)
	if o.Units() != 4 {
		t.Errorf("expected 4 units, got %d", o.Units())
	}

	w = e.admin(http.MethodPut, "/admin/orders/ord-003/status", handlers.UpdateStatusRequest{Status: models.OrderShipped})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	w = e.do(http.MethodGet, "/orders/ord-003/tracking", nil)
	var tr struct {
		Progress int `json:"progress"`
	}
	decode(t, w, &tr)
	if tr.Progress != 50 {
		t.Errorf("expected tracking to follow the new status, got %d", tr.Progress)
	}

	w = e.admin(http.MethodPut, "/admin/orders/ord-003/status", handlers.UpdateStatusRequest{Status: "lost"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", w.Code)
	}
	w = e.admin(http.MethodPut, "/admin/orders/nope/status", handlers.UpdateStatusRequest{Status: models.OrderDelivered})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
	w = e.admin(http.MethodGet, "/admin/orders/nope", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestUserHandlers(t *testing.T) {
	e := newTestEnv(t)

	w := e.admin(http.MethodGet, "/admin/users", nil)
	var list handlers.UsersSearchResult
	decode(t, w, &list)
	if list.Meta.TotalCount != 5 {
		t.Errorf("expected 5 users, got %d", list.Meta.TotalCount)
	}

	w = e.admin(http.MethodGet, "/admin/users?role=admin", nil)
	list = handlers.UsersSearchResult{}
	decode(t, w, &list)
	if len(list.Data) != 1 || list.Data[0].ID != "u5" {
		t.Errorf("unexpected admins %v", list.Data)
	}

	w = e.admin(http.MethodGet, "/admin/users?search=rodriguez", nil)
	list = handlers.UsersSearchResult{}
	decode(t, w, &list)
	if len(list.Data) != 1 || list.Data[0].ID != "u3" {
		t.Errorf("unexpected search result %v", list.Data)
	}

	w = e.admin(http.MethodPut, "/admin/users/u1/role", handlers.UpdateRoleRequest{Role: models.RoleAdmin})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	u, _ := e.users.GetByID("u1")
	if !u.IsAdmin() {
		t.Errorf("expected u1 to be admin, got %q", u.Role)
	}

	w = e.admin(http.MethodPut, "/admin/users/u1/role", handlers.UpdateRoleRequest{Role: "root"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", w.Code)
	}
	w = e.admin(http.MethodGet, "/admin/users/u99", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestImpersonateUserHandler(t *testing.T) {
	e := newTestEnv(t)

	w := e.admin(http.MethodPost, "/admin/users/u2/impersonate", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var resp handlers.LoginResult
	decode(t, w, &resp)

	claims, err := e.server.Tokens.ParseToken(resp.Token)
	if err != nil {
		t.Fatalf("failed to parse impersonation token: %v", err)
	}
	if claims.Subject != "u2" || claims.Impersonator != "1" {
		t.Errorf("unexpected claims %+v", claims)
	}

	// the impersonated shopper has no admin rights
	w = e.do(http.MethodGet, "/admin/orders", nil, bearer(resp.Token)...)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 Forbidden, got %d", w.Code)
	}
}

func TestDealHandlers(t *testing.T) {
	e := newTestEnv(t)

	w := e.admin(http.MethodGet, "/admin/deals", nil)
	var deals []models.Deal
	decode(t, w, &deals)
	if len(deals) != 3 {
		t.Errorf("expected 3 deals, got %d", len(deals))
	}

	req := handlers.DealRequest{Title: "Autumn", DiscountPercent: 10, Code: " fall10 ", Active: true}
	w = e.admin(http.MethodPost, "/admin/deals", req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}
	var created models.Deal
	decode(t, w, &created)
	if created.Code != "FALL10" || created.ID == "" {
		t.Errorf("unexpected deal %+v", created)
	}

	w = e.do(http.MethodPost, "/coupons/validate", handlers.CouponRequest{Code: "fall10"})
	if w.Code != http.StatusOK {
		t.Errorf("expected new coupon to validate, got %d", w.Code)
	}

	w = e.admin(http.MethodPost, "/admin/deals", req)
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 Conflict, got %d", w.Code)
	}
	w = e.admin(http.MethodPost, "/admin/deals", handlers.DealRequest{Title: "", Code: "", DiscountPercent: 0})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", w.Code)
	}

	req.Active = false
	w = e.admin(http.MethodPut, "/admin/deals/"+created.ID, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	w = e.do(http.MethodPost, "/coupons/validate", handlers.CouponRequest{Code: "FALL10"})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected deactivated coupon to be rejected, got %d", w.Code)
	}

	w = e.admin(http.MethodDelete, "/admin/deals/"+created.ID, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}
	w = e.admin(http.MethodGet, "/admin/deals/"+created.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}
