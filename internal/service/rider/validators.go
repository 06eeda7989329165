package rider

import (
	"strings"

	"dispatch/internal/entities"
)

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidVehicleType(vehicleType entities.VehicleType) bool {
	switch vehicleType {
	case entities.VehicleBike, entities.VehicleCar, entities.VehicleVan, entities.VehicleTruck:
		return true
	}
	return false
}

func isValidLat(lat float64) bool {
	return lat >= -90 && lat <= 90
}

func isValidLng(lng float64) bool {
	return lng >= -180 && lng <= 180
}
