package delivery

import (
	"strings"

	"dispatch/internal/entities"
)

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidTrackingNumber(trackingNumber string) bool {
	return strings.TrimSpace(trackingNumber) != ""
}

func isValidLat(lat float64) bool {
	return lat >= -90 && lat <= 90
}

func isValidLng(lng float64) bool {
	return lng >= -180 && lng <= 180
}

func isValidWeightClass(weight entities.WeightClassType) bool {
	switch weight {
	case entities.WeightLight, entities.WeightMedium, entities.WeightHeavy:
		return true
	}
	return false
}

func isValidPaymentMethod(method entities.PaymentMethodType) bool {
	switch method {
	case entities.PaymentCash, entities.PaymentCard, entities.PaymentTransfer, entities.PaymentWallet:
		return true
	}
	return false
}

func validateBook(deliveryModify entities.DeliveryModify) error {
	if deliveryModify.PickupAddress == nil ||
		deliveryModify.PickupLat == nil ||
		deliveryModify.PickupLng == nil ||
		deliveryModify.DropoffAddress == nil ||
		deliveryModify.DropoffLat == nil ||
		deliveryModify.DropoffLng == nil ||
		deliveryModify.PackageDetails == nil ||
		deliveryModify.PackageWeight == nil ||
		deliveryModify.RecipientName == nil ||
		deliveryModify.RecipientPhone == nil ||
		deliveryModify.PaymentMethod == nil {
		return ErrMissingRequiredFields
	}

	if strings.TrimSpace(*deliveryModify.PickupAddress) == "" ||
		strings.TrimSpace(*deliveryModify.DropoffAddress) == "" ||
		strings.TrimSpace(*deliveryModify.PackageDetails) == "" ||
		strings.TrimSpace(*deliveryModify.RecipientName) == "" ||
		strings.TrimSpace(*deliveryModify.RecipientPhone) == "" {
		return ErrMissingRequiredFields
	}

	if !isValidLat(*deliveryModify.PickupLat) || !isValidLat(*deliveryModify.DropoffLat) ||
		!isValidLng(*deliveryModify.PickupLng) || !isValidLng(*deliveryModify.DropoffLng) {
		return ErrInvalidCoordinates
	}
	if !isValidWeightClass(*deliveryModify.PackageWeight) {
		return ErrInvalidWeightClass
	}
	if !isValidPaymentMethod(*deliveryModify.PaymentMethod) {
		return ErrInvalidPaymentMethod
	}
	return nil
}
