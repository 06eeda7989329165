package tracking

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/delivery"
)

const trackingColumns = `id, delivery_id, rider_lat, rider_lng, status_update, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, eventModify entities.TrackingEventModify) (*entities.TrackingEvent, error) {
	query := `INSERT INTO tracking_events (delivery_id, rider_lat, rider_lng, status_update)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + trackingColumns

	eventModel, err := scanEvent(r.querier.QueryRow(
		ctx,
		query,
		eventModify.DeliveryID,
		eventModify.RiderLat,
		eventModify.RiderLng,
		eventModify.StatusUpdate,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected tracking repository create error: %w", err)
	}

	return ToDomain(eventModel), nil
}

// GetByDelivery отдаёт журнал от новых событий к старым, как на
// публичной странице трекинга.
func (r *Repository) GetByDelivery(ctx context.Context, deliveryID string) ([]entities.TrackingEvent, error) {
	query := `SELECT ` + trackingColumns + `
		FROM tracking_events
		WHERE delivery_id = $1
		ORDER BY created_at DESC`

	rows, err := r.querier.Query(ctx, query, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("unexpected tracking repository getbydelivery error: %w", err)
	}
	defer rows.Close()

	eventModels := make([]TrackingEventDB, 0, 8)
	for rows.Next() {
		eventModel, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected tracking repository getbydelivery error: %w", err)
		}
		eventModels = append(eventModels, *eventModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected tracking repository getbydelivery error: %w", err)
	}

	return ToDomainList(eventModels), nil
}

func (r *Repository) DeleteByDelivery(ctx context.Context, deliveryID string) (int64, error) {
	query := `DELETE FROM tracking_events WHERE delivery_id = $1`

	commandTag, err := r.querier.Exec(ctx, query, deliveryID)
	if err != nil {
		return 0, fmt.Errorf("unexpected tracking repository deletebydelivery error: %w", err)
	}

	return commandTag.RowsAffected(), nil
}

func scanEvent(row pgx.Row) (*TrackingEventDB, error) {
	var eventModel TrackingEventDB
	err := row.Scan(
		&eventModel.ID,
		&eventModel.DeliveryID,
		&eventModel.RiderLat,
		&eventModel.RiderLng,
		&eventModel.StatusUpdate,
		&eventModel.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &eventModel, nil
}
