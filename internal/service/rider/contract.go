//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_test
package rider

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, riderModify entities.RiderModify) (*entities.Rider, error)
	Update(ctx context.Context, riderModify entities.RiderModify) (*entities.Rider, error)

	GetByID(ctx context.Context, riderID string) (*entities.Rider, error)
	GetByUserID(ctx context.Context, userID string) (*entities.Rider, error)
	GetAll(ctx context.Context, availableOnly bool) ([]entities.Rider, error)

	// Условные изменения: ноль строк — запись не в ожидаемом состоянии.
	DecideApproval(ctx context.Context, riderID string, decision entities.ApprovalStatusType) (*entities.Rider, error)
	IncrementTotalDeliveries(ctx context.Context, riderID string) (*entities.Rider, error)
	UpdateUnavailableWhereStale(ctx context.Context, cutoff time.Time) (int64, error)
}

type ProfileService interface {
	SetStatus(ctx context.Context, profileID string, status entities.ProfileStatusType) (*entities.Profile, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
