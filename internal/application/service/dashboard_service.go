package service

import (
	"sort"
	"time"

	"github.com/foodbazar/retail-api/internal/domain/entity"
	"github.com/foodbazar/retail-api/internal/infrastructure/store"
	"github.com/foodbazar/retail-api/pkg/apperror"
)

// DashboardService computes derived analytics. Nothing here is cached or
// stored; every call recomputes from the current collections, so the numbers
// always reflect the latest commits.
type DashboardService struct {
	store             *store.Store
	lowStockThreshold int
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(s *store.Store, lowStockThreshold int) *DashboardService {
	return &DashboardService{store: s, lowStockThreshold: lowStockThreshold}
}

// ProductSales aggregates receipt lines per product, using the snapshotted
// names so products deleted from the catalog still appear.
type ProductSales struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Units     int     `json:"units"`
	Revenue   float64 `json:"revenue"`
}

// CustomerSpend ranks customers by their derived counters.
type CustomerSpend struct {
	CustomerID string  `json:"customerId"`
	Name       string  `json:"name"`
	Purchases  int     `json:"purchases"`
	Spent      float64 `json:"spent"`
}

// CategorySales aggregates revenue per catalog category. Lines whose product
// is no longer in the catalog have no category and are left out.
type CategorySales struct {
	Category string  `json:"category"`
	Units    int     `json:"units"`
	Revenue  float64 `json:"revenue"`
}

// DailySales is one day's bucket of the sales timeline.
type DailySales struct {
	Date         string  `json:"date"` // YYYY-MM-DD
	Revenue      float64 `json:"revenue"`
	Transactions int     `json:"transactions"`
}

// DashboardStats is the landing-page summary.
type DashboardStats struct {
	TotalCustomers     int                  `json:"totalCustomers"`
	TotalProducts      int                  `json:"totalProducts"`
	TotalTransactions  int                  `json:"totalTransactions"`
	TotalRevenue       float64              `json:"totalRevenue"`
	RevenueGrowth      float64              `json:"revenueGrowth"`
	CustomerGrowth     float64              `json:"customerGrowth"`
	TopProducts        []ProductSales       `json:"topProducts"`
	RecentTransactions []entity.Transaction `json:"recentTransactions"`
	LowStockProducts   []entity.Product     `json:"lowStockProducts"`
}

// Report is the sales report over a selectable time range.
type Report struct {
	Range               string          `json:"range"`
	TotalRevenue        float64         `json:"totalRevenue"`
	AvgTransactionValue float64         `json:"avgTransactionValue"`
	InventoryValue      float64         `json:"inventoryValue"`
	AvgSpendPerCustomer float64         `json:"avgSpendPerCustomer"`
	CategorySales       []CategorySales `json:"categorySales"`
	DailySales          []DailySales    `json:"dailySales"`
	TopProducts         []ProductSales  `json:"topProducts"`
	TopCustomers        []CustomerSpend `json:"topCustomers"`
}

const topN = 5

// Stats computes the dashboard summary. Growth figures compare the last 30
// days against the 30 days before that; with no prior-period activity the
// growth is reported as 0 rather than infinite.
func (s *DashboardService) Stats() *DashboardStats {
	customers := s.store.Customers()
	products := s.store.Products()
	transactions := s.store.Transactions()

	stats := &DashboardStats{
		TotalCustomers:    len(customers),
		TotalProducts:     len(products),
		TotalTransactions: len(transactions),
	}

	for _, t := range transactions {
		stats.TotalRevenue += t.TotalAmount
	}

	now := time.Now().UTC()
	cutoff := now.AddDate(0, 0, -30)
	prevCutoff := now.AddDate(0, 0, -60)

	var current, previous float64
	for _, t := range transactions {
		switch {
		case t.Date.After(cutoff):
			current += t.TotalAmount
		case t.Date.After(prevCutoff):
			previous += t.TotalAmount
		}
	}
	stats.RevenueGrowth = growth(current, previous)

	var newCustomers, prevCustomers float64
	for _, c := range customers {
		joined, err := time.Parse("2006-01-02", c.JoinDate)
		if err != nil {
			continue
		}
		switch {
		case joined.After(cutoff):
			newCustomers++
		case joined.After(prevCutoff):
			prevCustomers++
		}
	}
	stats.CustomerGrowth = growth(newCustomers, prevCustomers)

	stats.TopProducts = topProducts(transactions)

	recent := append([]entity.Transaction(nil), transactions...)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].Date.After(recent[j].Date) })
	if len(recent) > topN {
		recent = recent[:topN]
	}
	stats.RecentTransactions = recent

	for _, p := range products {
		if p.Stock < s.lowStockThreshold {
			stats.LowStockProducts = append(stats.LowStockProducts, p)
			if len(stats.LowStockProducts) == topN {
				break
			}
		}
	}

	return stats
}

// Report computes the sales report. rangeStr selects the window for the
// timeline, category and product breakdowns: 7days, 30days, 90days or all.
// The revenue, inventory and per-customer summary figures are whole-history
// by design of the dashboard and ignore the window.
func (s *DashboardService) Report(rangeStr string) (*Report, error) {
	var days int
	switch rangeStr {
	case "", "all":
		rangeStr = "all"
	case "7days":
		days = 7
	case "30days":
		days = 30
	case "90days":
		days = 90
	default:
		return nil, apperror.NewBadRequestError("range must be one of: 7days, 30days, 90days, all")
	}

	customers := s.store.Customers()
	products := s.store.Products()
	transactions := s.store.Transactions()

	report := &Report{Range: rangeStr}

	for _, t := range transactions {
		report.TotalRevenue += t.TotalAmount
	}
	if len(transactions) > 0 {
		report.AvgTransactionValue = report.TotalRevenue / float64(len(transactions))
	}
	for _, p := range products {
		report.InventoryValue += p.Price * float64(p.Stock)
	}
	if len(customers) > 0 {
		report.AvgSpendPerCustomer = report.TotalRevenue / float64(len(customers))
	}

	windowed := transactions
	if days > 0 {
		cutoff := time.Now().UTC().AddDate(0, 0, -days)
		windowed = windowed[:0:0]
		for _, t := range transactions {
			if t.Date.After(cutoff) {
				windowed = append(windowed, t)
			}
		}
	}

	categoryOf := make(map[string]string, len(products))
	for _, p := range products {
		categoryOf[p.ID] = p.Category
	}
	byCategory := make(map[string]*CategorySales)
	var categoryOrder []string
	for _, t := range windowed {
		for _, item := range t.Items {
			category, ok := categoryOf[item.ProductID]
			if !ok {
				continue
			}
			cs := byCategory[category]
			if cs == nil {
				cs = &CategorySales{Category: category}
				byCategory[category] = cs
				categoryOrder = append(categoryOrder, category)
			}
			cs.Units += item.Quantity
			cs.Revenue += item.Subtotal
		}
	}
	for _, category := range categoryOrder {
		report.CategorySales = append(report.CategorySales, *byCategory[category])
	}
	sort.SliceStable(report.CategorySales, func(i, j int) bool {
		return report.CategorySales[i].Revenue > report.CategorySales[j].Revenue
	})

	byDay := make(map[string]*DailySales)
	for _, t := range windowed {
		day := t.Date.Format("2006-01-02")
		ds := byDay[day]
		if ds == nil {
			ds = &DailySales{Date: day}
			byDay[day] = ds
		}
		ds.Revenue += t.TotalAmount
		ds.Transactions++
	}
	for _, ds := range byDay {
		report.DailySales = append(report.DailySales, *ds)
	}
	sort.Slice(report.DailySales, func(i, j int) bool {
		return report.DailySales[i].Date < report.DailySales[j].Date
	})
	// The timeline shows at most the 7 most recent trading days.
	if len(report.DailySales) > 7 {
		report.DailySales = report.DailySales[len(report.DailySales)-7:]
	}

	report.TopProducts = topProducts(windowed)

	spenders := make([]CustomerSpend, 0, len(customers))
	for _, c := range customers {
		spenders = append(spenders, CustomerSpend{
			CustomerID: c.ID,
			Name:       c.Name,
			Purchases:  c.TotalPurchases,
			Spent:      c.TotalSpent,
		})
	}
	sort.SliceStable(spenders, func(i, j int) bool { return spenders[i].Spent > spenders[j].Spent })
	if len(spenders) > topN {
		spenders = spenders[:topN]
	}
	report.TopCustomers = spenders

	return report, nil
}

func topProducts(transactions []entity.Transaction) []ProductSales {
	byProduct := make(map[string]*ProductSales)
	var order []string
	for _, t := range transactions {
		for _, item := range t.Items {
			ps := byProduct[item.ProductID]
			if ps == nil {
				ps = &ProductSales{ProductID: item.ProductID, Name: item.ProductName}
				byProduct[item.ProductID] = ps
				order = append(order, item.ProductID)
			}
			ps.Units += item.Quantity
			ps.Revenue += item.Subtotal
		}
	}
	out := make([]ProductSales, 0, len(order))
	for _, id := range order {
		out = append(out, *byProduct[id])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Revenue > out[j].Revenue })
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

func growth(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}
