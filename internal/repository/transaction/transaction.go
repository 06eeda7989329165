package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/delivery"
)

const transactionColumns = `id, user_id, delivery_id, type, amount, description, status, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, transactionModify entities.TransactionModify) (*entities.Transaction, error) {
	query := `INSERT INTO transactions (user_id, delivery_id, type, amount, description, status)
		VALUES ($1, $2, $3, $4, COALESCE($5, ''), $6)
		RETURNING ` + transactionColumns

	var transactionType, transactionStatus *string
	if transactionModify.Type != nil {
		t := transactionModify.Type.String()
		transactionType = &t
	}
	if transactionModify.Status != nil {
		s := transactionModify.Status.String()
		transactionStatus = &s
	}

	transactionModel, err := scanTransaction(r.querier.QueryRow(
		ctx,
		query,
		transactionModify.UserID,
		transactionModify.DeliveryID,
		transactionType,
		transactionModify.Amount,
		transactionModify.Description,
		transactionStatus,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected transaction repository create error: %w", err)
	}

	return ToDomain(transactionModel), nil
}

func (r *Repository) GetByUser(ctx context.Context, userID string) ([]entities.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.querier.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("unexpected transaction repository getbyuser error: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM transactions
		ORDER BY created_at DESC`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected transaction repository getall error: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func (r *Repository) SumDebitsSince(ctx context.Context, since time.Time) (int64, error) {
	query := `SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE type = 'debit' AND created_at >= $1`

	var total int64
	err := r.querier.QueryRow(ctx, query, since).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("unexpected transaction repository sumdebitssince error: %w", err)
	}
	return total, nil
}

func scanTransaction(row pgx.Row) (*TransactionDB, error) {
	var transactionModel TransactionDB
	err := row.Scan(
		&transactionModel.ID,
		&transactionModel.UserID,
		&transactionModel.DeliveryID,
		&transactionModel.Type,
		&transactionModel.Amount,
		&transactionModel.Description,
		&transactionModel.Status,
		&transactionModel.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &transactionModel, nil
}

func collectTransactions(rows pgx.Rows) ([]entities.Transaction, error) {
	transactionModels := make([]TransactionDB, 0, 8)
	for rows.Next() {
		transactionModel, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected transaction repository scan error: %w", err)
		}
		transactionModels = append(transactionModels, *transactionModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected transaction repository rows error: %w", err)
	}

	return ToDomainList(transactionModels), nil
}
