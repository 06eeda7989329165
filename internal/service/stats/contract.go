//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stats_test
package stats

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type DeliveryRepository interface {
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
	GetRecent(ctx context.Context, limit int64) ([]entities.Delivery, error)
}

type TransactionRepository interface {
	SumDebitsSince(ctx context.Context, since time.Time) (int64, error)
}
