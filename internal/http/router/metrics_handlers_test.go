package router_test

import (
	"net/http"
	"testing"

	"github.com/rogerio-castellano/storefront/internal/http/handlers"
	"github.com/rogerio-castellano/storefront/internal/repo"
)

func TestDashboardMetricsHandler(t *testing.T) {
	e := newTestEnv(t)

	w := e.admin(http.MethodGet, "/admin/metrics/dashboard", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var metrics repo.Metrics
	decode(t, w, &metrics)
	if metrics.TotalProducts != 8 {
		t.Errorf("expected 8 products, got %v", metrics.TotalProducts)
	}
	if metrics.TotalUsers != 4 {
		t.Errorf("expected 4 shoppers, got %v", metrics.TotalUsers)
	}
	if metrics.TotalOrders != 4 {
		t.Errorf("expected 4 orders, got %v", metrics.TotalOrders)
	}
	if !near(metrics.Revenue, 206.90) {
		t.Errorf("expected revenue 206.90, got %v", metrics.Revenue)
	}

	// products below the threshold show up after a stock change
	e.admin(http.MethodPost, "/admin/products/8/stock", handlers.StockAdjustmentRequest{Delta: -25})
	w = e.admin(http.MethodGet, "/admin/metrics/dashboard", nil)
	metrics = repo.Metrics{}
	decode(t, w, &metrics)
	if metrics.LowStockCount != 1 {
		t.Errorf("expected 1 low stock product, got %v", metrics.LowStockCount)
	}
}

func TestAnalyticsHandler(t *testing.T) {
	e := newTestEnv(t)

	w := e.admin(http.MethodGet, "/admin/metrics/analytics?top=2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var a repo.Analytics
	decode(t, w, &a)
	if len(a.TopProducts) != 2 || a.TopProducts[0].ID != "1" {
		t.Errorf("unexpected top products %+v", a.TopProducts)
	}
	if len(a.MonthlySales) != 1 || a.MonthlySales[0].Month != "2023-06" || a.MonthlySales[0].Orders != 3 {
		t.Errorf("unexpected monthly sales %+v", a.MonthlySales)
	}

	for _, q := range []string{"?top=0", "?top=abc"} {
		w := e.admin(http.MethodGet, "/admin/metrics/analytics"+q, nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400 Bad Request, got %d", q, w.Code)
		}
	}
}
