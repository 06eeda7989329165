//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_get_test
package rider_get

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetRider(ctx context.Context, riderID string) (*entities.Rider, error)
	GetRiderByUser(ctx context.Context, userID string) (*entities.Rider, error)
}
