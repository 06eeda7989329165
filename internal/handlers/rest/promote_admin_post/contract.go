//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=promote_admin_post_test
package promote_admin_post

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
	PromoteAdmin(ctx context.Context, email, secret string) (*entities.Profile, error)
}
