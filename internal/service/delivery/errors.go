package delivery

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDeliveryID     = errors.New("invalid delivery id")
	ErrInvalidRiderID        = errors.New("invalid rider id")
	ErrInvalidTrackingNumber = errors.New("invalid tracking number")
	ErrInvalidCoordinates    = errors.New("coordinates out of range")
	ErrInvalidWeightClass    = errors.New("invalid weight class")
	ErrInvalidPaymentMethod  = errors.New("invalid payment method")

	ErrPermissionDenied  = errors.New("permission denied")
	ErrConflict          = errors.New("delivery conflict")
	ErrDeliveryNotFound  = errors.New("delivery not found")
	ErrAlreadyClaimed    = errors.New("delivery already claimed")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrRiderNotApproved  = errors.New("rider is not approved")
	ErrRiderUnavailable  = errors.New("rider is not available")
)
