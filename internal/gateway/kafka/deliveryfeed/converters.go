package deliveryfeed

import (
	"time"

	"dispatch/internal/entities"
)

// Схема сообщения фида. Поля только добавляются, консьюмеры терпимы
// к неизвестным ключам.
type deliveryEventDTO struct {
	Type           string    `json:"type"`
	DeliveryID     string    `json:"delivery_id"`
	TrackingNumber string    `json:"tracking_number"`
	CustomerID     string    `json:"customer_id"`
	RiderID        *string   `json:"rider_id,omitempty"`
	RiderUserID    *string   `json:"rider_user_id,omitempty"`
	Status         string    `json:"status"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func fromDomain(event entities.DeliveryEvent) deliveryEventDTO {
	return deliveryEventDTO{
		Type:           event.Type.String(),
		DeliveryID:     event.DeliveryID,
		TrackingNumber: event.TrackingNumber,
		CustomerID:     event.CustomerID,
		RiderID:        event.RiderID,
		RiderUserID:    event.RiderUserID,
		Status:         event.Status.String(),
		OccurredAt:     event.OccurredAt,
	}
}

func toDomain(dto deliveryEventDTO) entities.DeliveryEvent {
	return entities.DeliveryEvent{
		Type:           entities.DeliveryEventType(dto.Type),
		DeliveryID:     dto.DeliveryID,
		TrackingNumber: dto.TrackingNumber,
		CustomerID:     dto.CustomerID,
		RiderID:        dto.RiderID,
		RiderUserID:    dto.RiderUserID,
		Status:         entities.DeliveryStatusType(dto.Status),
		OccurredAt:     dto.OccurredAt,
	}
}
