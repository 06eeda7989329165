package rider

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidRiderID        = errors.New("invalid rider id")
	ErrInvalidVehicleType    = errors.New("invalid vehicle type")
	ErrInvalidCoordinates    = errors.New("coordinates out of range")
	ErrInvalidDecision       = errors.New("invalid approval decision")

	ErrPermissionDenied       = errors.New("permission denied")
	ErrRiderNotFound          = errors.New("rider not found")
	ErrRiderAlreadyRegistered = errors.New("rider already registered")
	ErrAlreadyDecided         = errors.New("approval already decided")
)
