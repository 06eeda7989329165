//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=transaction_test
package transaction

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	GetByUser(ctx context.Context, userID string) ([]entities.Transaction, error)
	GetAll(ctx context.Context) ([]entities.Transaction, error)
}
