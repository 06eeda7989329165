//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_delete_test
package delivery_delete

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
	DeleteDelivery(ctx context.Context, actor entities.Actor, deliveryID string) error
}
