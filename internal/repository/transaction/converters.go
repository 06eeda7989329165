package transaction

import (
	"dispatch/internal/entities"
)

func ToDomain(t *TransactionDB) *entities.Transaction {
	if t == nil {
		return nil
	}

	return &entities.Transaction{
		ID:          t.ID,
		UserID:      t.UserID,
		DeliveryID:  t.DeliveryID,
		Type:        entities.TransactionType(t.Type),
		Amount:      t.Amount,
		Description: t.Description,
		Status:      entities.TransactionStatusType(t.Status),
		CreatedAt:   t.CreatedAt,
	}
}

func ToDomainList(transactionsDB []TransactionDB) []entities.Transaction {
	if len(transactionsDB) == 0 {
		return []entities.Transaction{}
	}

	result := make([]entities.Transaction, len(transactionsDB))
	for i, transactionDB := range transactionsDB {
		result[i] = *ToDomain(&transactionDB)
	}
	return result
}
