//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, notificationModify entities.NotificationModify) (*entities.Notification, error)
	GetByUser(ctx context.Context, userID string) ([]entities.Notification, error)
	MarkRead(ctx context.Context, notificationID, userID string) (*entities.Notification, error)
}
