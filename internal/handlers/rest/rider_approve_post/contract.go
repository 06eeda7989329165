//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_approve_post_test
package rider_approve_post

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
	DecideApproval(ctx context.Context, actor entities.Actor, riderID string, decision entities.ApprovalStatusType) (*entities.Rider, error)
}
