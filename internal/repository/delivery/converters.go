package delivery

import (
	"dispatch/internal/entities"
)

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}

	return &entities.Delivery{
		ID:             d.ID,
		CustomerID:     d.CustomerID,
		RiderID:        d.RiderID,
		TrackingNumber: d.TrackingNumber,
		PickupAddress:  d.PickupAddress,
		PickupLat:      d.PickupLat,
		PickupLng:      d.PickupLng,
		DropoffAddress: d.DropoffAddress,
		DropoffLat:     d.DropoffLat,
		DropoffLng:     d.DropoffLng,
		PackageDetails: d.PackageDetails,
		PackageWeight:  entities.WeightClassType(d.PackageWeight),
		RecipientName:  d.RecipientName,
		RecipientPhone: d.RecipientPhone,
		DeliveryTypeID: d.DeliveryTypeID,
		FareEstimate:   d.FareEstimate,
		FinalFare:      d.FinalFare,
		PaymentMethod:  entities.PaymentMethodType(d.PaymentMethod),
		PaymentStatus:  entities.PaymentStatusType(d.PaymentStatus),
		Status:         entities.DeliveryStatusType(d.Status),
		Notes:          d.Notes,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
		CompletedAt:    d.CompletedAt,
	}
}

func FromDomainModify(deliveryModify *entities.DeliveryModify) *DeliveryModifyDB {
	if deliveryModify == nil {
		return nil
	}
	deliveryDB := &DeliveryModifyDB{
		ID:             deliveryModify.ID,
		CustomerID:     deliveryModify.CustomerID,
		RiderID:        deliveryModify.RiderID,
		TrackingNumber: deliveryModify.TrackingNumber,
		PickupAddress:  deliveryModify.PickupAddress,
		PickupLat:      deliveryModify.PickupLat,
		PickupLng:      deliveryModify.PickupLng,
		DropoffAddress: deliveryModify.DropoffAddress,
		DropoffLat:     deliveryModify.DropoffLat,
		DropoffLng:     deliveryModify.DropoffLng,
		PackageDetails: deliveryModify.PackageDetails,
		RecipientName:  deliveryModify.RecipientName,
		RecipientPhone: deliveryModify.RecipientPhone,
		DeliveryTypeID: deliveryModify.DeliveryTypeID,
		FareEstimate:   deliveryModify.FareEstimate,
		FinalFare:      deliveryModify.FinalFare,
		Notes:          deliveryModify.Notes,
		CompletedAt:    deliveryModify.CompletedAt,
	}

	if deliveryModify.PackageWeight != nil {
		weight := deliveryModify.PackageWeight.String()
		deliveryDB.PackageWeight = &weight
	}
	if deliveryModify.PaymentMethod != nil {
		method := deliveryModify.PaymentMethod.String()
		deliveryDB.PaymentMethod = &method
	}
	if deliveryModify.PaymentStatus != nil {
		status := deliveryModify.PaymentStatus.String()
		deliveryDB.PaymentStatus = &status
	}
	if deliveryModify.Status != nil {
		status := deliveryModify.Status.String()
		deliveryDB.Status = &status
	}

	return deliveryDB
}

func ToDomainList(deliveriesDB []DeliveryDB) []entities.Delivery {
	if len(deliveriesDB) == 0 {
		return []entities.Delivery{}
	}

	result := make([]entities.Delivery, len(deliveriesDB))
	for i, deliveryDB := range deliveriesDB {
		result[i] = *ToDomain(&deliveryDB)
	}
	return result
}
