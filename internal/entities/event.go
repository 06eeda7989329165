package entities

import "time"

// DeliveryEvent публикуется в фид изменений после коммита перехода.
// Доставка гарантируется at-least-once, порядок между таблицами не гарантируется.
type DeliveryEvent struct {
	Type           DeliveryEventType
	DeliveryID     string
	TrackingNumber string
	CustomerID     string
	RiderID        *string
	RiderUserID    *string
	Status         DeliveryStatusType
	OccurredAt     time.Time
}

type DeliveryEventType string

const (
	EventBooked          DeliveryEventType = "booked"
	EventAccepted        DeliveryEventType = "accepted"
	EventAssignedByAdmin DeliveryEventType = "assigned_by_admin"
	EventReassigned      DeliveryEventType = "reassigned"
	EventPickedUp        DeliveryEventType = "picked_up"
	EventInTransit       DeliveryEventType = "in_transit"
	EventDelivered       DeliveryEventType = "delivered"
	EventCancelled       DeliveryEventType = "cancelled"
)

func (t DeliveryEventType) String() string {
	return string(t)
}
