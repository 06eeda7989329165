//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=profile_status_post_test
package profile_status_post

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
	AdminSetStatus(ctx context.Context, actor entities.Actor, profileID string, status entities.ProfileStatusType) (*entities.Profile, error)
}
