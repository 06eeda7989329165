//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=profile_get_test
package profile_get

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
	GetProfile(ctx context.Context, actor entities.Actor, profileID string) (*entities.Profile, error)
}
