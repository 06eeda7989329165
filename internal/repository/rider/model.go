package rider

import "time"

type RiderDB struct {
	ID              string
	UserID          string
	VehicleType     string
	VehicleNumber   string
	DriverLicense   string
	BankAccount     string
	IsAvailable     bool
	CurrentLat      *float64
	CurrentLng      *float64
	Rating          float64
	TotalDeliveries int64
	ApprovalStatus  string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type RiderModifyDB struct {
	ID              *string
	UserID          *string
	VehicleType     *string
	VehicleNumber   *string
	DriverLicense   *string
	BankAccount     *string
	IsAvailable     *bool
	CurrentLat      *float64
	CurrentLng      *float64
	Rating          *float64
	TotalDeliveries *int64
	ApprovalStatus  *string
}
