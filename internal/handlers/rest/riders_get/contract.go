//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=riders_get_test
package riders_get

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
	GetRiders(ctx context.Context, actor entities.Actor, availableOnly bool) ([]entities.Rider, error)
}
