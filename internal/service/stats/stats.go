package stats

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"
)

const recentDeliveriesLimit = 5

type Stats struct {
	deliveries   DeliveryRepository
	transactions TransactionRepository
}

func New(deliveries DeliveryRepository, transactions TransactionRepository) *Stats {
	return &Stats{
		deliveries:   deliveries,
		transactions: transactions,
	}
}

// GetAdminStats — сводка для панели администратора: количество доставок и
// списания клиентов за сегодня, неделю и месяц плюс последние записи.
// Окна считаются от полуночи текущего дня, месяц — календарный.
func (s *Stats) GetAdminStats(ctx context.Context, actor entities.Actor) (*entities.AdminStats, error) {
	if !actor.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	now := time.Now().UTC()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekStart := todayStart.AddDate(0, 0, -7)
	monthStart := todayStart.AddDate(0, -1, 0)

	deliveries, err := s.periodTotals(ctx, s.deliveries.CountCreatedSince, todayStart, weekStart, monthStart)
	if err != nil {
		return nil, fmt.Errorf("count deliveries: %w", err)
	}

	revenue, err := s.periodTotals(ctx, s.transactions.SumDebitsSince, todayStart, weekStart, monthStart)
	if err != nil {
		return nil, fmt.Errorf("sum revenue: %w", err)
	}

	recent, err := s.deliveries.GetRecent(ctx, recentDeliveriesLimit)
	if err != nil {
		return nil, fmt.Errorf("get recent deliveries: %w", err)
	}

	return &entities.AdminStats{
		Deliveries:       deliveries,
		Revenue:          revenue,
		RecentDeliveries: recent,
	}, nil
}

func (s *Stats) periodTotals(
	ctx context.Context,
	aggregate func(ctx context.Context, since time.Time) (int64, error),
	todayStart, weekStart, monthStart time.Time,
) (entities.PeriodTotals, error) {
	today, err := aggregate(ctx, todayStart)
	if err != nil {
		return entities.PeriodTotals{}, fmt.Errorf("today: %w", err)
	}
	week, err := aggregate(ctx, weekStart)
	if err != nil {
		return entities.PeriodTotals{}, fmt.Errorf("week: %w", err)
	}
	month, err := aggregate(ctx, monthStart)
	if err != nil {
		return entities.PeriodTotals{}, fmt.Errorf("month: %w", err)
	}

	return entities.PeriodTotals{
		Today: today,
		Week:  week,
		Month: month,
	}, nil
}
