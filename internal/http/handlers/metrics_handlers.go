package handlers

import (
	"net/http"
)

const defaultTopProducts = 5

// GetDashboardMetricsHandler godoc
// @Summary Dashboard metrics for admin view
// @Tags metrics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} repo.Metrics
// @Failure 500 {string} string "Internal error"
// @Router /admin/metrics/dashboard [get]
func (s *Server) GetDashboardMetricsHandler(w http.ResponseWriter, r *http.Request) {
	m, err := s.Metrics.GetDashboardMetrics()
	if err != nil {
		http.Error(w, "failed to fetch metrics", http.StatusInternalServerError)
		return
	}
	s.respond(w, http.StatusOK, m)
}

// GetAnalyticsHandler godoc
// @Summary Sales analytics
// @Description Monthly sales, best sellers by units and revenue share per category. Cancelled orders are excluded.
// @Tags metrics
// @Produce json
// @Security BearerAuth
// @Param top query int false "Number of top products (default 5)"
// @Success 200 {object} repo.Analytics
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /admin/metrics/analytics [get]
func (s *Server) GetAnalyticsHandler(w http.ResponseWriter, r *http.Request) {
	topN := defaultTopProducts
	if raw := r.URL.Query().Get("top"); raw != "" {
		n := parseIntPtr(raw)
		if n == nil || *n <= 0 {
			http.Error(w, "top must be a positive integer", http.StatusBadRequest)
			return
		}
		topN = *n
	}

	a, err := s.Metrics.GetAnalytics(topN)
	if err != nil {
		http.Error(w, "failed to fetch analytics", http.StatusInternalServerError)
		return
	}
	s.respond(w, http.StatusOK, a)
}
