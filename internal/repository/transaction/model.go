package transaction

import "time"

type TransactionDB struct {
	ID          string
	UserID      string
	DeliveryID  *string
	Type        string
	Amount      int64
	Description string
	Status      string
	CreatedAt   time.Time
}
