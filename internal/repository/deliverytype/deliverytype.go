package deliverytype

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/service/delivery"
)

// Справочник тарифов. Записи заводятся миграциями, рантайм их только читает.
const deliveryTypeColumns = `id, name, description, base_price, estimated_hours, is_active, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, typeID string) (*entities.DeliveryType, error) {
	query := `SELECT ` + deliveryTypeColumns + `
		FROM delivery_types
		WHERE id = $1`

	var typeModel entities.DeliveryType
	err := r.querier.QueryRow(ctx, query, typeID).Scan(
		&typeModel.ID,
		&typeModel.Name,
		&typeModel.Description,
		&typeModel.BasePrice,
		&typeModel.EstimatedHours,
		&typeModel.IsActive,
		&typeModel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected deliverytype repository getbyid error: %w", err)
	}

	return &typeModel, nil
}

func (r *Repository) GetActive(ctx context.Context) ([]entities.DeliveryType, error) {
	query := `SELECT ` + deliveryTypeColumns + `
		FROM delivery_types
		WHERE is_active = TRUE
		ORDER BY base_price`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected deliverytype repository getactive error: %w", err)
	}
	defer rows.Close()

	typeModels := make([]entities.DeliveryType, 0, 8)
	for rows.Next() {
		var typeModel entities.DeliveryType
		err := rows.Scan(
			&typeModel.ID,
			&typeModel.Name,
			&typeModel.Description,
			&typeModel.BasePrice,
			&typeModel.EstimatedHours,
			&typeModel.IsActive,
			&typeModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected deliverytype repository getactive error: %w", err)
		}
		typeModels = append(typeModels, typeModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected deliverytype repository getactive error: %w", err)
	}

	return typeModels, nil
}
