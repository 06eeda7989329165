//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error)
	Delete(ctx context.Context, deliveryID string) error

	GetByID(ctx context.Context, deliveryID string) (*entities.Delivery, error)
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.Delivery, error)
	GetByCustomer(ctx context.Context, customerID string, status *entities.DeliveryStatusType) ([]entities.Delivery, error)
	GetByRider(ctx context.Context, riderID string, status *entities.DeliveryStatusType) ([]entities.Delivery, error)
	GetAll(ctx context.Context, status *entities.DeliveryStatusType) ([]entities.Delivery, error)
	GetPendingUnclaimed(ctx context.Context) ([]entities.Delivery, error)

	// Условные переходы: ноль затронутых строк означает, что запись не в
	// ожидаемом состоянии, репозиторий возвращает ErrEntityNotFound.
	ClaimPending(ctx context.Context, deliveryID, riderID string) (*entities.Delivery, error)
	ReplaceRider(ctx context.Context, deliveryID, riderID string) (*entities.Delivery, error)
	UpdateStatus(ctx context.Context, deliveryID string, from, to entities.DeliveryStatusType) (*entities.Delivery, error)
	MarkDelivered(ctx context.Context, deliveryID string, finalFare int64, completedAt time.Time) (*entities.Delivery, error)
	CancelActive(ctx context.Context, deliveryID string) (*entities.Delivery, error)
}

type TrackingRepository interface {
	Create(ctx context.Context, eventModify entities.TrackingEventModify) (*entities.TrackingEvent, error)
	GetByDelivery(ctx context.Context, deliveryID string) ([]entities.TrackingEvent, error)
	DeleteByDelivery(ctx context.Context, deliveryID string) (int64, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, transactionModify entities.TransactionModify) (*entities.Transaction, error)
}

type DeliveryTypeRepository interface {
	GetByID(ctx context.Context, typeID string) (*entities.DeliveryType, error)
	GetActive(ctx context.Context) ([]entities.DeliveryType, error)
}

type RiderService interface {
	GetRider(ctx context.Context, riderID string) (*entities.Rider, error)
	GetRiderByUser(ctx context.Context, userID string) (*entities.Rider, error)
	RecordCompletedDelivery(ctx context.Context, riderID string) (*entities.Rider, error)
}

type FareEstimator interface {
	Estimate(pickupLat, pickupLng, dropoffLat, dropoffLng float64, weight entities.WeightClassType, basePrice int64) int64
}

type TrackingNumberFactory interface {
	NewTrackingNumber() string
}

type EventPublisher interface {
	PublishDeliveryEvent(ctx context.Context, event entities.DeliveryEvent) error
}

type TrackingCache interface {
	Get(ctx context.Context, trackingNumber string) (*entities.DeliveryTrack, error)
	Set(ctx context.Context, trackingNumber string, track *entities.DeliveryTrack) error
	Invalidate(ctx context.Context, trackingNumber string) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
