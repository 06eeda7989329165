package notification

import (
	"context"
	"fmt"
	"strings"

	"dispatch/internal/entities"
)

type Notification struct {
	repository Repository
}

func New(repository Repository) *Notification {
	return &Notification{repository: repository}
}

// Notify пишется консьюмером фида изменений, не HTTP-слоем.
func (s *Notification) Notify(ctx context.Context, userID, title, message string) (*entities.Notification, error) {
	if strings.TrimSpace(userID) == "" ||
		strings.TrimSpace(title) == "" ||
		strings.TrimSpace(message) == "" {
		return nil, ErrMissingRequiredFields
	}

	notificationType := entities.NotificationTypeDelivery
	unread := false

	created, err := s.repository.Create(ctx, entities.NotificationModify{
		UserID:  &userID,
		Title:   &title,
		Message: &message,
		Type:    &notificationType,
		IsRead:  &unread,
	})
	if err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	return created, nil
}

func (s *Notification) GetNotifications(ctx context.Context, actor entities.Actor) ([]entities.Notification, error) {
	notifications, err := s.repository.GetByUser(ctx, actor.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("get notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead отмечает только собственное уведомление: выборка в репозитории
// сразу ограничена парой id+user_id.
func (s *Notification) MarkRead(ctx context.Context, actor entities.Actor, notificationID string) (*entities.Notification, error) {
	if strings.TrimSpace(notificationID) == "" {
		return nil, ErrMissingRequiredFields
	}

	updated, err := s.repository.MarkRead(ctx, notificationID, actor.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("mark notification read: %w", err)
	}
	return updated, nil
}
