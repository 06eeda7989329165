package entities

import "time"

type Rider struct {
	ID              string
	UserID          string
	VehicleType     VehicleType
	VehicleNumber   string
	DriverLicense   string
	BankAccount     string
	IsAvailable     bool
	CurrentLat      *float64
	CurrentLng      *float64
	Rating          float64
	TotalDeliveries int64
	ApprovalStatus  ApprovalStatusType
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type VehicleType string

const (
	VehicleBike  VehicleType = "bike"
	VehicleCar   VehicleType = "car"
	VehicleVan   VehicleType = "van"
	VehicleTruck VehicleType = "truck"
)

const DefaultVehicleType = VehicleBike

func (t VehicleType) String() string {
	return string(t)
}

type ApprovalStatusType string

const (
	ApprovalPending  ApprovalStatusType = "pending"
	ApprovalApproved ApprovalStatusType = "approved"
	ApprovalRejected ApprovalStatusType = "rejected"
)

func (s ApprovalStatusType) String() string {
	return string(s)
}

type RiderModify struct {
	ID              *string
	UserID          *string
	VehicleType     *VehicleType
	VehicleNumber   *string
	DriverLicense   *string
	BankAccount     *string
	IsAvailable     *bool
	CurrentLat      *float64
	CurrentLng      *float64
	Rating          *float64
	TotalDeliveries *int64
	ApprovalStatus  *ApprovalStatusType
}
