package repo

// LowStockThreshold is the stock level below which a product counts as low.
const LowStockThreshold = 10

type Metrics struct {
	TotalProducts int            `json:"total_products"`
	TotalUsers    int            `json:"total_users"`
	TotalOrders   int            `json:"total_orders"`
	Revenue       float64        `json:"revenue"`
	LowStockCount int            `json:"low_stock_count"`
	StatusCounts  map[string]int `json:"status_counts"`
}

type MonthlySales struct {
	Month   string  `json:"month"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

type TopProduct struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Units   int     `json:"units"`
	Revenue float64 `json:"revenue"`
}

type CategoryShare struct {
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
	Percent  float64 `json:"percent"`
}

type Analytics struct {
	MonthlySales  []MonthlySales  `json:"monthly_sales"`
	TopProducts   []TopProduct    `json:"top_products"`
	CategoryShare []CategoryShare `json:"category_share"`
}

type MetricsRepository interface {
	GetDashboardMetrics() (Metrics, error)
	GetAnalytics(topN int) (Analytics, error)
}
