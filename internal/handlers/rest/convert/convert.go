// Package convert собирает общие преобразования сущностей в DTO ответов,
// чтобы не плодить копии по пакетам хендлеров.
package convert

import (
	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
)

func ToDelivery(d *entities.Delivery) dto.Delivery {
	return dto.Delivery{
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
		PackageWeight:  d.PackageWeight.String(),
		RecipientName:  d.RecipientName,
		RecipientPhone: d.RecipientPhone,
		DeliveryTypeID: d.DeliveryTypeID,
		FareEstimate:   d.FareEstimate,
		FinalFare:      d.FinalFare,
		PaymentMethod:  d.PaymentMethod.String(),
		PaymentStatus:  d.PaymentStatus.String(),
		Status:         d.Status.String(),
		Notes:          d.Notes,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
		CompletedAt:    d.CompletedAt,
	}
}

func ToDeliveryList(deliveries []entities.Delivery) []dto.Delivery {
	result := make([]dto.Delivery, len(deliveries))
	for i := range deliveries {
		result[i] = ToDelivery(&deliveries[i])
	}
	return result
}

func ToProfile(p *entities.Profile) dto.Profile {
	return dto.Profile{
		ID:        p.ID,
		Email:     p.Email,
		FullName:  p.FullName,
		Phone:     p.Phone,
		Role:      p.Role.String(),
		Status:    p.Status.String(),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func ToProfileList(profiles []entities.Profile) []dto.Profile {
	result := make([]dto.Profile, len(profiles))
	for i := range profiles {
		result[i] = ToProfile(&profiles[i])
	}
	return result
}

func ToRider(r *entities.Rider) dto.Rider {
	return dto.Rider{
		ID:              r.ID,
		UserID:          r.UserID,
		VehicleType:     r.VehicleType.String(),
		VehicleNumber:   r.VehicleNumber,
		DriverLicense:   r.DriverLicense,
		BankAccount:     r.BankAccount,
		IsAvailable:     r.IsAvailable,
		CurrentLat:      r.CurrentLat,
		CurrentLng:      r.CurrentLng,
		Rating:          r.Rating,
		TotalDeliveries: r.TotalDeliveries,
		ApprovalStatus:  r.ApprovalStatus.String(),
	}
}

func ToRiderList(riders []entities.Rider) []dto.Rider {
	result := make([]dto.Rider, len(riders))
	for i := range riders {
		result[i] = ToRider(&riders[i])
	}
	return result
}

func ToDeliveryTypeList(deliveryTypes []entities.DeliveryType) []dto.DeliveryType {
	result := make([]dto.DeliveryType, len(deliveryTypes))
	for i, dt := range deliveryTypes {
		result[i] = dto.DeliveryType{
			ID:             dt.ID,
			Name:           dt.Name,
			Description:    dt.Description,
			BasePrice:      dt.BasePrice,
			EstimatedHours: dt.EstimatedHours,
		}
	}
	return result
}

func ToNotificationList(notifications []entities.Notification) []dto.Notification {
	result := make([]dto.Notification, len(notifications))
	for i, n := range notifications {
		result[i] = dto.Notification{
			ID:        n.ID,
			UserID:    n.UserID,
			Title:     n.Title,
			Message:   n.Message,
			Type:      n.Type,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		}
	}
	return result
}

func ToTransactionList(transactions []entities.Transaction) []dto.Transaction {
	result := make([]dto.Transaction, len(transactions))
	for i, t := range transactions {
		result[i] = dto.Transaction{
			ID:          t.ID,
			UserID:      t.UserID,
			DeliveryID:  t.DeliveryID,
			Type:        t.Type.String(),
			Amount:      t.Amount,
			Description: t.Description,
			Status:      t.Status.String(),
			CreatedAt:   t.CreatedAt,
		}
	}
	return result
}

func ToAdminStatsResponse(stats *entities.AdminStats) dto.AdminStatsResponse {
	return dto.AdminStatsResponse{
		Deliveries: dto.PeriodTotals{
			Today: stats.Deliveries.Today,
			Week:  stats.Deliveries.Week,
			Month: stats.Deliveries.Month,
		},
		Revenue: dto.PeriodTotals{
			Today: stats.Revenue.Today,
			Week:  stats.Revenue.Week,
			Month: stats.Revenue.Month,
		},
		RecentDeliveries: ToDeliveryList(stats.RecentDeliveries),
	}
}

// ToTrackResponse — публичная проекция: без телефонов, адресов забора
// координат и платёжных полей, только то, что видит получатель.
func ToTrackResponse(track *entities.DeliveryTrack) dto.TrackResponse {
	events := make([]dto.TrackingEvent, len(track.Events))
	for i, e := range track.Events {
		events[i] = dto.TrackingEvent{
			RiderLat:     e.RiderLat,
			RiderLng:     e.RiderLng,
			StatusUpdate: e.StatusUpdate,
			CreatedAt:    e.CreatedAt,
		}
	}

	return dto.TrackResponse{
		TrackingNumber: track.Delivery.TrackingNumber,
		Status:         track.Delivery.Status.String(),
		PickupAddress:  track.Delivery.PickupAddress,
		DropoffAddress: track.Delivery.DropoffAddress,
		RecipientName:  track.Delivery.RecipientName,
		FareEstimate:   track.Delivery.FareEstimate,
		CompletedAt:    track.Delivery.CompletedAt,
		Events:         events,
	}
}
