package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/delivery"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const deliveryColumns = `id, customer_id, rider_id, tracking_number,
	pickup_address, pickup_lat, pickup_lng,
	dropoff_address, dropoff_lat, dropoff_lng,
	package_details, package_weight, recipient_name, recipient_phone,
	delivery_type_id, fare_estimate, final_fare,
	payment_method, payment_status, status, notes,
	created_at, updated_at, completed_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, deliveryModifyEntity entities.DeliveryModify) (*entities.Delivery, error) {
	deliveryModifyModel := FromDomainModify(&deliveryModifyEntity)
	query := `INSERT INTO deliveries (customer_id, tracking_number,
			pickup_address, pickup_lat, pickup_lng,
			dropoff_address, dropoff_lat, dropoff_lng,
			package_details, package_weight, recipient_name, recipient_phone,
			delivery_type_id, fare_estimate, payment_method, payment_status, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, COALESCE($18, ''))
		RETURNING ` + deliveryColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		deliveryModifyModel.CustomerID,
		deliveryModifyModel.TrackingNumber,
		deliveryModifyModel.PickupAddress,
		deliveryModifyModel.PickupLat,
		deliveryModifyModel.PickupLng,
		deliveryModifyModel.DropoffAddress,
		deliveryModifyModel.DropoffLat,
		deliveryModifyModel.DropoffLng,
		deliveryModifyModel.PackageDetails,
		deliveryModifyModel.PackageWeight,
		deliveryModifyModel.RecipientName,
		deliveryModifyModel.RecipientPhone,
		deliveryModifyModel.DeliveryTypeID,
		deliveryModifyModel.FareEstimate,
		deliveryModifyModel.PaymentMethod,
		deliveryModifyModel.PaymentStatus,
		deliveryModifyModel.Status,
		deliveryModifyModel.Notes,
	)

	deliveryModel, err := scanDelivery(row)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, delivery.ErrConflict
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return ToDomain(deliveryModel), nil
}

func (r *Repository) Delete(ctx context.Context, deliveryID string) error {
	query := `DELETE FROM deliveries WHERE id = $1`

	commandTag, err := r.querier.Exec(ctx, query, deliveryID)
	if err != nil {
		return fmt.Errorf("unexpected delivery repository delete error: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return delivery.ErrDeliveryNotFound
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, deliveryID string) (*entities.Delivery, error) {
	query := `SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE id = $1`

	deliveryModel, err := scanDelivery(r.querier.QueryRow(ctx, query, deliveryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository getbyid error: %w", err)
	}

	return ToDomain(deliveryModel), nil
}

func (r *Repository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.Delivery, error) {
	query := `SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE tracking_number = $1`

	deliveryModel, err := scanDelivery(r.querier.QueryRow(ctx, query, trackingNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository getbytrackingnumber error: %w", err)
	}

	return ToDomain(deliveryModel), nil
}

func (r *Repository) GetByCustomer(ctx context.Context, customerID string, status *entities.DeliveryStatusType) ([]entities.Delivery, error) {
	return r.getList(ctx, sq.Eq{"customer_id": customerID}, status)
}

func (r *Repository) GetByRider(ctx context.Context, riderID string, status *entities.DeliveryStatusType) ([]entities.Delivery, error) {
	return r.getList(ctx, sq.Eq{"rider_id": riderID}, status)
}

func (r *Repository) GetAll(ctx context.Context, status *entities.DeliveryStatusType) ([]entities.Delivery, error) {
	return r.getList(ctx, nil, status)
}

func (r *Repository) GetPendingUnclaimed(ctx context.Context) ([]entities.Delivery, error) {
	query := `SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE status = 'pending' AND rider_id IS NULL
		ORDER BY created_at`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository getpendingunclaimed error: %w", err)
	}
	defer rows.Close()

	return collectDeliveries(rows)
}

func (r *Repository) GetRecent(ctx context.Context, limit int64) ([]entities.Delivery, error) {
	query := `SELECT ` + deliveryColumns + `
		FROM deliveries
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.querier.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository getrecent error: %w", err)
	}
	defer rows.Close()

	return collectDeliveries(rows)
}

func (r *Repository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM deliveries WHERE created_at >= $1`

	var count int64
	err := r.querier.QueryRow(ctx, query, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected delivery repository countcreatedsince error: %w", err)
	}
	return count, nil
}

// ClaimPending — точка гонки между исполнителями: из двух одновременных
// заявок выигрывает та, чей UPDATE застал запись в pending без исполнителя.
func (r *Repository) ClaimPending(ctx context.Context, deliveryID, riderID string) (*entities.Delivery, error) {
	query := `UPDATE deliveries
		SET rider_id = $2, status = 'assigned', updated_at = NOW()
		WHERE id = $1 AND status = 'pending' AND rider_id IS NULL
		RETURNING ` + deliveryColumns

	deliveryModel, err := scanDelivery(r.querier.QueryRow(ctx, query, deliveryID, riderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository claimpending error: %w", err)
	}

	return ToDomain(deliveryModel), nil
}

func (r *Repository) ReplaceRider(ctx context.Context, deliveryID, riderID string) (*entities.Delivery, error) {
	query := `UPDATE deliveries
		SET rider_id = $2, status = 'assigned', updated_at = NOW()
		WHERE id = $1 AND status IN ('assigned', 'picked_up', 'in_transit')
		RETURNING ` + deliveryColumns

	deliveryModel, err := scanDelivery(r.querier.QueryRow(ctx, query, deliveryID, riderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository replacerider error: %w", err)
	}

	return ToDomain(deliveryModel), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, deliveryID string, from, to entities.DeliveryStatusType) (*entities.Delivery, error) {
	query := `UPDATE deliveries
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING ` + deliveryColumns

	deliveryModel, err := scanDelivery(r.querier.QueryRow(ctx, query, deliveryID, from.String(), to.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository updatestatus error: %w", err)
	}

	return ToDomain(deliveryModel), nil
}

func (r *Repository) MarkDelivered(ctx context.Context, deliveryID string, finalFare int64, completedAt time.Time) (*entities.Delivery, error) {
	query := `UPDATE deliveries
		SET status = 'delivered', final_fare = $2, completed_at = $3,
			payment_status = 'completed', updated_at = NOW()
		WHERE id = $1 AND status = 'in_transit'
		RETURNING ` + deliveryColumns

	deliveryModel, err := scanDelivery(r.querier.QueryRow(ctx, query, deliveryID, finalFare, completedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository markdelivered error: %w", err)
	}

	return ToDomain(deliveryModel), nil
}

// CancelActive снимает исполнителя: rider_id обнуляется вместе со сменой
// статуса, незанятых cancelled-записей с исполнителем не бывает.
func (r *Repository) CancelActive(ctx context.Context, deliveryID string) (*entities.Delivery, error) {
	query := `UPDATE deliveries
		SET status = 'cancelled', rider_id = NULL, updated_at = NOW()
		WHERE id = $1 AND status IN ('pending', 'assigned')
		RETURNING ` + deliveryColumns

	deliveryModel, err := scanDelivery(r.querier.QueryRow(ctx, query, deliveryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository cancelactive error: %w", err)
	}

	return ToDomain(deliveryModel), nil
}

func (r *Repository) getList(ctx context.Context, where interface{}, status *entities.DeliveryStatusType) ([]entities.Delivery, error) {
	builder := qb.
		Select(deliveryColumns).
		From("deliveries")

	if where != nil {
		builder = builder.Where(where)
	}
	if status != nil {
		builder = builder.Where(sq.Eq{"status": status.String()})
	}
	builder = builder.OrderBy("created_at DESC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository getlist error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository getlist error: %w", err)
	}
	defer rows.Close()

	return collectDeliveries(rows)
}

func scanDelivery(row pgx.Row) (*DeliveryDB, error) {
	var deliveryModel DeliveryDB
	err := row.Scan(
		&deliveryModel.ID,
		&deliveryModel.CustomerID,
		&deliveryModel.RiderID,
		&deliveryModel.TrackingNumber,
		&deliveryModel.PickupAddress,
		&deliveryModel.PickupLat,
		&deliveryModel.PickupLng,
		&deliveryModel.DropoffAddress,
		&deliveryModel.DropoffLat,
		&deliveryModel.DropoffLng,
		&deliveryModel.PackageDetails,
		&deliveryModel.PackageWeight,
		&deliveryModel.RecipientName,
		&deliveryModel.RecipientPhone,
		&deliveryModel.DeliveryTypeID,
		&deliveryModel.FareEstimate,
		&deliveryModel.FinalFare,
		&deliveryModel.PaymentMethod,
		&deliveryModel.PaymentStatus,
		&deliveryModel.Status,
		&deliveryModel.Notes,
		&deliveryModel.CreatedAt,
		&deliveryModel.UpdatedAt,
		&deliveryModel.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &deliveryModel, nil
}

func collectDeliveries(rows pgx.Rows) ([]entities.Delivery, error) {
	deliveryModels := make([]DeliveryDB, 0, 8)
	for rows.Next() {
		deliveryModel, err := scanDelivery(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected delivery repository scan error: %w", err)
		}
		deliveryModels = append(deliveryModels, *deliveryModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery repository rows error: %w", err)
	}

	return ToDomainList(deliveryModels), nil
}
