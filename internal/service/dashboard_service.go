package service

import (
	"context"
	"sort"
	"time"

	"go-retail-crm/internal/repository"

	"github.com/shopspring/decimal"
)

// DashboardStats is the overview card data.
type DashboardStats struct {
	DailySales      decimal.Decimal `json:"dailySales"`
	TotalOrders     int             `json:"totalOrders"`
	ActiveCustomers int             `json:"activeCustomers"`
	LowStockItems   int             `json:"lowStockItems"`
}

// DailySalesData is one chart point of the sales-by-day series.
type DailySalesData struct {
	Date   string          `json:"date"`
	Total  decimal.Decimal `json:"total"`
	Orders int             `json:"orders"`
}

// ProductSalesData ranks products by units sold.
type ProductSalesData struct {
	ProductID    string `json:"productId"`
	Name         string `json:"name"`
	QuantitySold int    `json:"quantitySold"`
}

type DashboardService interface {
	GetStats(ctx context.Context) (*DashboardStats, error)
	GetSalesByDay(ctx context.Context, days int) ([]DailySalesData, error)
	GetTopProducts(ctx context.Context, limit int) ([]ProductSalesData, error)
}

type dashboardService struct {
	store repository.Store
}

func NewDashboardService(store repository.Store) DashboardService {
	return &dashboardService{store: store}
}

func (s *dashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	products, err := s.store.Products(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.store.Customers(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.store.Orders(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		DailySales:      decimal.Zero,
		TotalOrders:     len(orders),
		ActiveCustomers: len(customers),
	}
	today := time.Now().UTC().Format("2006-01-02")
	for _, o := range orders {
		if o.OrderDate.UTC().Format("2006-01-02") == today {
			stats.DailySales = stats.DailySales.Add(o.TotalAmount)
		}
	}
	for _, p := range products {
		if p.LowStock() {
			stats.LowStockItems++
		}
	}
	return stats, nil
}

// GetSalesByDay aggregates order totals per calendar day over the trailing
// window, oldest day first. Days without orders still appear, zeroed, so
// charts get a continuous series.
func (s *dashboardService) GetSalesByDay(ctx context.Context, days int) ([]DailySalesData, error) {
	if days <= 0 {
		days = 7
	}
	orders, err := s.store.Orders(ctx)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]*DailySalesData, days)
	series := make([]DailySalesData, 0, days)
	start := time.Now().UTC().AddDate(0, 0, -(days - 1))
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i).Format("2006-01-02")
		series = append(series, DailySalesData{Date: date, Total: decimal.Zero})
		byDay[date] = &series[len(series)-1]
	}

	for _, o := range orders {
		if point, ok := byDay[o.OrderDate.UTC().Format("2006-01-02")]; ok {
			point.Total = point.Total.Add(o.TotalAmount)
			point.Orders++
		}
	}
	return series, nil
}

func (s *dashboardService) GetTopProducts(ctx context.Context, limit int) ([]ProductSalesData, error) {
	if limit <= 0 {
		limit = 5
	}
	orders, err := s.store.Orders(ctx)
	if err != nil {
		return nil, err
	}

	sold := map[string]*ProductSalesData{}
	for _, o := range orders {
		for _, item := range o.Items {
			entry, ok := sold[item.ProductID]
			if !ok {
				entry = &ProductSalesData{ProductID: item.ProductID, Name: item.Name}
				sold[item.ProductID] = entry
			}
			entry.QuantitySold += item.Quantity
		}
	}

	ranked := make([]ProductSalesData, 0, len(sold))
	for _, entry := range sold {
		ranked = append(ranked, *entry)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].QuantitySold != ranked[j].QuantitySold {
			return ranked[i].QuantitySold > ranked[j].QuantitySold
		}
		return ranked[i].ProductID < ranked[j].ProductID
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}
