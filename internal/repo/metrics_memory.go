package repo

import (
	"cmp"
	"slices"

	"github.com/rogerio-castellano/storefront/internal/models"
)

// InMemoryMetricsRepository computes metrics by aggregating the other
// repositories in process, so it works with any of their backends.
type InMemoryMetricsRepository struct {
	productRepo ProductRepository
	userRepo    UserRepository
	orderRepo   OrderRepository
}

func NewInMemoryMetricsRepository() *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{}
}

func (i *InMemoryMetricsRepository) SetRepositories(
	productRepo ProductRepository,
	userRepo UserRepository,
	orderRepo OrderRepository,
) {
	i.productRepo = productRepo
	i.userRepo = userRepo
	i.orderRepo = orderRepo
}

// GetDashboardMetrics implements MetricsRepository.
func (i *InMemoryMetricsRepository) GetDashboardMetrics() (Metrics, error) {
	m := Metrics{StatusCounts: map[string]int{}}

	products, err := i.productRepo.GetAll()
	if err != nil {
		return m, err
	}
	m.TotalProducts = len(products)
	for _, p := range products {
		if p.Stock < LowStockThreshold {
			m.LowStockCount++
		}
	}

	_, m.TotalUsers, err = i.userRepo.Filter(UserFilter{Role: models.RoleUser})
	if err != nil {
		return m, err
	}

	orders, err := i.orderRepo.GetAll()
	if err != nil {
		return m, err
	}
	m.TotalOrders = len(orders)
	for _, o := range orders {
		m.StatusCounts[string(o.Status)]++
		if o.Status != models.OrderCancelled {
			m.Revenue += o.Totals.Total
		}
	}
	m.Revenue = models.RoundCents(m.Revenue)

	return m, nil
}

// GetAnalytics implements MetricsRepository. Cancelled orders are excluded
// from every figure.
func (i *InMemoryMetricsRepository) GetAnalytics(topN int) (Analytics, error) {
	a := Analytics{
		MonthlySales:  []MonthlySales{},
		TopProducts:   []TopProduct{},
		CategoryShare: []CategoryShare{},
	}

	products, err := i.productRepo.GetAll()
	if err != nil {
		return a, err
	}
	categoryOf := make(map[string]string, len(products))
	for _, p := range products {
		categoryOf[p.ID] = p.Category
	}

	orders, err := i.orderRepo.GetAll()
	if err != nil {
		return a, err
	}

	months := map[string]*MonthlySales{}
	top := map[string]*TopProduct{}
	categories := map[string]float64{}
	var lineRevenue float64

	for _, o := range orders {
		if o.Status == models.OrderCancelled {
			continue
		}
		key := o.CreatedAt.UTC().Format("2006-01")
		ms, ok := months[key]
		if !ok {
			ms = &MonthlySales{Month: key}
			months[key] = ms
		}
		ms.Orders++
		ms.Revenue += o.Totals.Total

		for _, l := range o.Lines {
			amount := l.Price * float64(l.Quantity)
			tp, ok := top[l.ID]
			if !ok {
				tp = &TopProduct{ID: l.ID, Name: l.Name}
				top[l.ID] = tp
			}
			tp.Units += l.Quantity
			tp.Revenue += amount

			category, ok := categoryOf[l.ID]
			if !ok {
				category = "Other"
			}
			categories[category] += amount
			lineRevenue += amount
		}
	}

	for _, ms := range months {
		ms.Revenue = models.RoundCents(ms.Revenue)
		a.MonthlySales = append(a.MonthlySales, *ms)
	}
	slices.SortFunc(a.MonthlySales, func(x, y MonthlySales) int { return cmp.Compare(x.Month, y.Month) })

	for _, tp := range top {
		tp.Revenue = models.RoundCents(tp.Revenue)
		a.TopProducts = append(a.TopProducts, *tp)
	}
	slices.SortFunc(a.TopProducts, func(x, y TopProduct) int {
		if c := cmp.Compare(y.Units, x.Units); c != 0 {
			return c
		}
		return cmp.Compare(x.Name, y.Name)
	})
	if topN > 0 && len(a.TopProducts) > topN {
		a.TopProducts = a.TopProducts[:topN]
	}

	for category, revenue := range categories {
		share := CategoryShare{Category: category, Revenue: models.RoundCents(revenue)}
		if lineRevenue > 0 {
			share.Percent = models.RoundCents(revenue / lineRevenue * 100)
		}
		a.CategoryShare = append(a.CategoryShare, share)
	}
	slices.SortFunc(a.CategoryShare, func(x, y CategoryShare) int {
		if c := cmp.Compare(y.Revenue, x.Revenue); c != 0 {
			return c
		}
		return cmp.Compare(x.Category, y.Category)
	})

	return a, nil
}
