package entities

import "time"

type Transaction struct {
	ID          string
	UserID      string
	DeliveryID  *string
	Type        TransactionType
	Amount      int64
	Description string
	Status      TransactionStatusType
	CreatedAt   time.Time
}

type TransactionType string

const (
	TransactionDebit  TransactionType = "debit"
	TransactionCredit TransactionType = "credit"
)

func (t TransactionType) String() string {
	return string(t)
}

type TransactionStatusType string

const (
	TransactionCompleted TransactionStatusType = "completed"
	TransactionPending   TransactionStatusType = "pending"
	TransactionFailed    TransactionStatusType = "failed"
)

func (s TransactionStatusType) String() string {
	return string(s)
}

type TransactionModify struct {
	ID          *string
	UserID      *string
	DeliveryID  *string
	Type        *TransactionType
	Amount      *int64
	Description *string
	Status      *TransactionStatusType
}
