package transaction

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
)

type Transaction struct {
	repository Repository
}

func New(repository Repository) *Transaction {
	return &Transaction{repository: repository}
}

// GetTransactions: каждый видит свою выписку, администратор — общий журнал.
func (s *Transaction) GetTransactions(ctx context.Context, actor entities.Actor) ([]entities.Transaction, error) {
	if actor.IsAdmin() {
		transactions, err := s.repository.GetAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("get transactions: %w", err)
		}
		return transactions, nil
	}

	transactions, err := s.repository.GetByUser(ctx, actor.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("get user transactions: %w", err)
	}
	return transactions, nil
}
