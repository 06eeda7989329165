package rider

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/rider"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const riderColumns = `id, user_id, vehicle_type, vehicle_number, driver_license,
	bank_account, is_available, current_lat, current_lng,
	rating, total_deliveries, approval_status, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, riderModifyEntity entities.RiderModify) (*entities.Rider, error) {
	riderModifyModel := FromDomainModify(&riderModifyEntity)
	query := `INSERT INTO riders (user_id, vehicle_type, vehicle_number, driver_license,
			bank_account, is_available, approval_status)
		VALUES ($1, $2, $3, $4, COALESCE($5, ''), $6, $7)
		RETURNING ` + riderColumns

	riderModel, err := scanRider(r.querier.QueryRow(
		ctx,
		query,
		riderModifyModel.UserID,
		riderModifyModel.VehicleType,
		riderModifyModel.VehicleNumber,
		riderModifyModel.DriverLicense,
		riderModifyModel.BankAccount,
		riderModifyModel.IsAvailable,
		riderModifyModel.ApprovalStatus,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, rider.ErrRiderAlreadyRegistered
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, rider.ErrRiderNotFound
		}
		return nil, fmt.Errorf("unexpected rider repository create error: %w", err)
	}

	return ToDomain(riderModel), nil
}

func (r *Repository) Update(ctx context.Context, riderModifyEntity entities.RiderModify) (*entities.Rider, error) {
	riderModifyModel := FromDomainModify(&riderModifyEntity)

	builder := qb.
		Update("riders")

	// опциональные поля
	if riderModifyModel.VehicleType != nil {
		builder = builder.Set("vehicle_type", riderModifyModel.VehicleType)
	}
	if riderModifyModel.VehicleNumber != nil {
		builder = builder.Set("vehicle_number", riderModifyModel.VehicleNumber)
	}
	if riderModifyModel.DriverLicense != nil {
		builder = builder.Set("driver_license", riderModifyModel.DriverLicense)
	}
	if riderModifyModel.BankAccount != nil {
		builder = builder.Set("bank_account", riderModifyModel.BankAccount)
	}
	if riderModifyModel.IsAvailable != nil {
		builder = builder.Set("is_available", riderModifyModel.IsAvailable)
	}
	if riderModifyModel.CurrentLat != nil {
		builder = builder.Set("current_lat", riderModifyModel.CurrentLat)
	}
	if riderModifyModel.CurrentLng != nil {
		builder = builder.Set("current_lng", riderModifyModel.CurrentLng)
	}
	if riderModifyModel.Rating != nil {
		builder = builder.Set("rating", riderModifyModel.Rating)
	}
	if riderModifyModel.ApprovalStatus != nil {
		builder = builder.Set("approval_status", riderModifyModel.ApprovalStatus)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": riderModifyModel.ID}).
		Suffix("RETURNING " + riderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository update error: %w", err)
	}

	riderModel, err := scanRider(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rider.ErrRiderNotFound
		}
		return nil, fmt.Errorf("unexpected rider repository update error: %w", err)
	}

	return ToDomain(riderModel), nil
}

func (r *Repository) GetByID(ctx context.Context, riderID string) (*entities.Rider, error) {
	query := `SELECT ` + riderColumns + `
		FROM riders
		WHERE id = $1`

	riderModel, err := scanRider(r.querier.QueryRow(ctx, query, riderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rider.ErrRiderNotFound
		}
		return nil, fmt.Errorf("unexpected rider repository getbyid error: %w", err)
	}

	return ToDomain(riderModel), nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID string) (*entities.Rider, error) {
	query := `SELECT ` + riderColumns + `
		FROM riders
		WHERE user_id = $1`

	riderModel, err := scanRider(r.querier.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rider.ErrRiderNotFound
		}
		return nil, fmt.Errorf("unexpected rider repository getbyuserid error: %w", err)
	}

	return ToDomain(riderModel), nil
}

func (r *Repository) GetAll(ctx context.Context, availableOnly bool) ([]entities.Rider, error) {
	builder := qb.
		Select(riderColumns).
		From("riders")

	if availableOnly {
		builder = builder.Where(sq.Eq{
			"approval_status": "approved",
			"is_available":    true,
		})
	}
	builder = builder.OrderBy("created_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository getall error: %w", err)
	}
	defer rows.Close()

	riderModels := make([]RiderDB, 0, 8)
	for rows.Next() {
		riderModel, err := scanRider(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected rider repository getall error: %w", err)
		}
		riderModels = append(riderModels, *riderModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected rider repository getall error: %w", err)
	}

	return ToDomainList(riderModels), nil
}

// DecideApproval одноразовый: условие WHERE пропускает только pending,
// повторное решение упирается в ноль строк.
func (r *Repository) DecideApproval(ctx context.Context, riderID string, decision entities.ApprovalStatusType) (*entities.Rider, error) {
	query := `UPDATE riders
		SET approval_status = $2, updated_at = NOW()
		WHERE id = $1 AND approval_status = 'pending'
		RETURNING ` + riderColumns

	riderModel, err := scanRider(r.querier.QueryRow(ctx, query, riderID, decision.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rider.ErrRiderNotFound
		}
		return nil, fmt.Errorf("unexpected rider repository decideapproval error: %w", err)
	}

	return ToDomain(riderModel), nil
}

func (r *Repository) IncrementTotalDeliveries(ctx context.Context, riderID string) (*entities.Rider, error) {
	query := `UPDATE riders
		SET total_deliveries = total_deliveries + 1, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + riderColumns

	riderModel, err := scanRider(r.querier.QueryRow(ctx, query, riderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rider.ErrRiderNotFound
		}
		return nil, fmt.Errorf("unexpected rider repository incrementtotaldeliveries error: %w", err)
	}

	return ToDomain(riderModel), nil
}

func (r *Repository) UpdateUnavailableWhereStale(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `UPDATE riders
		SET is_available = FALSE, updated_at = NOW()
		WHERE is_available = TRUE AND updated_at < $1`

	commandTag, err := r.querier.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("unexpected rider repository updateunavailablewherestale error: %w", err)
	}

	return commandTag.RowsAffected(), nil
}

func scanRider(row pgx.Row) (*RiderDB, error) {
	var riderModel RiderDB
	err := row.Scan(
		&riderModel.ID,
		&riderModel.UserID,
		&riderModel.VehicleType,
		&riderModel.VehicleNumber,
		&riderModel.DriverLicense,
		&riderModel.BankAccount,
		&riderModel.IsAvailable,
		&riderModel.CurrentLat,
		&riderModel.CurrentLng,
		&riderModel.Rating,
		&riderModel.TotalDeliveries,
		&riderModel.ApprovalStatus,
		&riderModel.CreatedAt,
		&riderModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &riderModel, nil
}
