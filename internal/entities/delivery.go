package entities

import "time"

type Delivery struct {
	ID             string
	CustomerID     string
	RiderID        *string
	TrackingNumber string
	PickupAddress  string
	PickupLat      float64
	PickupLng      float64
	DropoffAddress string
	DropoffLat     float64
	DropoffLng     float64
	PackageDetails string
	PackageWeight  WeightClassType
	RecipientName  string
	RecipientPhone string
	DeliveryTypeID *string
	FareEstimate   int64
	FinalFare      *int64
	PaymentMethod  PaymentMethodType
	PaymentStatus  PaymentStatusType
	Status         DeliveryStatusType
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	CompletedAt    *time.Time
}

type DeliveryStatusType string

const (
	DeliveryPending   DeliveryStatusType = "pending"
	DeliveryAssigned  DeliveryStatusType = "assigned"
	DeliveryPickedUp  DeliveryStatusType = "picked_up"
	DeliveryInTransit DeliveryStatusType = "in_transit"
	DeliveryDelivered DeliveryStatusType = "delivered"
	DeliveryCancelled DeliveryStatusType = "cancelled"
)

func (s DeliveryStatusType) String() string {
	return string(s)
}

// IsTerminal: delivered и cancelled закрыты для переходов статуса,
// но запись ещё может быть удалена администратором.
func (s DeliveryStatusType) IsTerminal() bool {
	return s == DeliveryDelivered || s == DeliveryCancelled
}

type WeightClassType string

const (
	WeightLight  WeightClassType = "light"
	WeightMedium WeightClassType = "medium"
	WeightHeavy  WeightClassType = "heavy"
)

func (w WeightClassType) String() string {
	return string(w)
}

type PaymentMethodType string

const (
	PaymentCash     PaymentMethodType = "cash"
	PaymentCard     PaymentMethodType = "card"
	PaymentTransfer PaymentMethodType = "transfer"
	PaymentWallet   PaymentMethodType = "wallet"
)

func (m PaymentMethodType) String() string {
	return string(m)
}

type PaymentStatusType string

const (
	PaymentPending   PaymentStatusType = "pending"
	PaymentCompleted PaymentStatusType = "completed"
	PaymentFailed    PaymentStatusType = "failed"
)

func (s PaymentStatusType) String() string {
	return string(s)
}

type DeliveryModify struct {
	ID             *string
	CustomerID     *string
	RiderID        *string
	TrackingNumber *string
	PickupAddress  *string
	PickupLat      *float64
	PickupLng      *float64
	DropoffAddress *string
	DropoffLat     *float64
	DropoffLng     *float64
	PackageDetails *string
	PackageWeight  *WeightClassType
	RecipientName  *string
	RecipientPhone *string
	DeliveryTypeID *string
	FareEstimate   *int64
	FinalFare      *int64
	PaymentMethod  *PaymentMethodType
	PaymentStatus  *PaymentStatusType
	Status         *DeliveryStatusType
	Notes          *string
	CompletedAt    *time.Time
}

type DeliveryType struct {
	ID             string
	Name           string
	Description    string
	BasePrice      int64
	EstimatedHours int64
	IsActive       bool
	CreatedAt      time.Time
}
