package delivery

import "time"

type DeliveryDB struct {
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
	PackageWeight  string
	RecipientName  string
	RecipientPhone string
	DeliveryTypeID *string
	FareEstimate   int64
	FinalFare      *int64
	PaymentMethod  string
	PaymentStatus  string
	Status         string
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	CompletedAt    *time.Time
}

type DeliveryModifyDB struct {
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
	PackageWeight  *string
	RecipientName  *string
	RecipientPhone *string
	DeliveryTypeID *string
	FareEstimate   *int64
	FinalFare      *int64
	PaymentMethod  *string
	PaymentStatus  *string
	Status         *string
	Notes          *string
	CompletedAt    *time.Time
}
