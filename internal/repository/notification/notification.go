package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/service/notification"
)

const notificationColumns = `id, user_id, title, message, type, is_read, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, notificationModify entities.NotificationModify) (*entities.Notification, error) {
	query := `INSERT INTO notifications (user_id, title, message, type, is_read)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + notificationColumns

	notificationModel, err := scanNotification(r.querier.QueryRow(
		ctx,
		query,
		notificationModify.UserID,
		notificationModify.Title,
		notificationModify.Message,
		notificationModify.Type,
		notificationModify.IsRead,
	))
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository create error: %w", err)
	}

	return ToDomain(notificationModel), nil
}

func (r *Repository) GetByUser(ctx context.Context, userID string) ([]entities.Notification, error) {
	query := `SELECT ` + notificationColumns + `
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.querier.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository getbyuser error: %w", err)
	}
	defer rows.Close()

	notificationModels := make([]NotificationDB, 0, 8)
	for rows.Next() {
		notificationModel, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected notification repository getbyuser error: %w", err)
		}
		notificationModels = append(notificationModels, *notificationModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected notification repository getbyuser error: %w", err)
	}

	return ToDomainList(notificationModels), nil
}

// MarkRead сразу ограничен владельцем: чужое уведомление выглядит
// как отсутствующее.
func (r *Repository) MarkRead(ctx context.Context, notificationID, userID string) (*entities.Notification, error) {
	query := `UPDATE notifications
		SET is_read = TRUE
		WHERE id = $1 AND user_id = $2
		RETURNING ` + notificationColumns

	notificationModel, err := scanNotification(r.querier.QueryRow(ctx, query, notificationID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notification.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("unexpected notification repository markread error: %w", err)
	}

	return ToDomain(notificationModel), nil
}

func scanNotification(row pgx.Row) (*NotificationDB, error) {
	var notificationModel NotificationDB
	err := row.Scan(
		&notificationModel.ID,
		&notificationModel.UserID,
		&notificationModel.Title,
		&notificationModel.Message,
		&notificationModel.Type,
		&notificationModel.IsRead,
		&notificationModel.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &notificationModel, nil
}
