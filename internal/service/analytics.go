package service

import (
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"maitred/internal/auth"
	"maitred/internal/models"
	"maitred/internal/monitoring"
	"maitred/internal/store"
)

// AnalyticsService aggregates over the order history. Manager-only, and
// purely read-only: analytics never touch the audit chain.
type AnalyticsService struct {
	orders  *store.OrderStore
	policy  *auth.Policy
	metrics *monitoring.Metrics
	logger  *slog.Logger
	now     func() time.Time
}

// NewAnalyticsService creates an analytics service over the order store.
// Metrics may be nil; a nil logger falls back to slog.Default.
func NewAnalyticsService(orders *store.OrderStore, policy *auth.Policy, metrics *monitoring.Metrics, logger *slog.Logger) *AnalyticsService {
	return &AnalyticsService{
		orders:  orders,
		policy:  policy,
		metrics: metrics,
		logger:  componentLogger(logger, "analytics_service"),
		now:     time.Now,
	}
}

// TopSellingItems tallies unit counts per item name across all served and
// paid orders.
func (s *AnalyticsService) TopSellingItems(staff auth.Staff) (counts map[string]int, err error) {
	defer func() {
		s.metrics.RecordOperation("analytics", string(auth.OpViewAnalytics), outcomeFor(err))
	}()

	if err = authorize(s.policy, staff, auth.OpViewAnalytics); err != nil {
		s.logger.Warn("top selling items denied", "role", staff.Role)
		return nil, err
	}

	counts = make(map[string]int)
	sold := s.orders.Search(func(order *models.Order) bool {
		return order.Status == models.OrderStatusServed || order.Status == models.OrderStatusPaid
	})
	for _, order := range sold {
		for _, item := range order.Items {
			counts[item.Name()]++
		}
	}
	return counts, nil
}

// TotalRevenueToday sums the totals of orders paid and created on the
// current calendar day.
func (s *AnalyticsService) TotalRevenueToday(staff auth.Staff) (revenue decimal.Decimal, err error) {
	defer func() {
		s.metrics.RecordOperation("analytics", string(auth.OpViewAnalytics), outcomeFor(err))
	}()

	if err = authorize(s.policy, staff, auth.OpViewAnalytics); err != nil {
		s.logger.Warn("total revenue denied", "role", staff.Role)
		return decimal.Zero, err
	}

	year, month, day := s.now().Date()
	paidToday := s.orders.Search(func(order *models.Order) bool {
		if order.Status != models.OrderStatusPaid {
			return false
		}
		y, m, d := order.CreatedAt.Date()
		return y == year && m == month && d == day
	})

	revenue = decimal.Zero
	for _, order := range paidToday {
		revenue = revenue.Add(order.Total())
	}
	return revenue, nil
}
