package delivery

import "dispatch/internal/entities"

// Сообщения журнала трекинга фиксированы: их видит получатель на
// публичной странице, менять формулировки нельзя без миграции текстов.
const (
	trackingMsgAssigned   = "Rider has been assigned to your delivery"
	trackingMsgPickedUp   = "Your package has been picked up and is on the way"
	trackingMsgInTransit  = "Your package is now in transit to the destination"
	trackingMsgDelivered  = "Your package has been successfully delivered"
	trackingMsgReassigned = "Delivery has been reassigned to a new rider"
)

var advanceOrder = map[entities.DeliveryStatusType]entities.DeliveryStatusType{
	entities.DeliveryAssigned:  entities.DeliveryPickedUp,
	entities.DeliveryPickedUp:  entities.DeliveryInTransit,
	entities.DeliveryInTransit: entities.DeliveryDelivered,
}

var advanceMessage = map[entities.DeliveryStatusType]string{
	entities.DeliveryPickedUp:  trackingMsgPickedUp,
	entities.DeliveryInTransit: trackingMsgInTransit,
	entities.DeliveryDelivered: trackingMsgDelivered,
}

var advanceEvent = map[entities.DeliveryStatusType]entities.DeliveryEventType{
	entities.DeliveryPickedUp:  entities.EventPickedUp,
	entities.DeliveryInTransit: entities.EventInTransit,
	entities.DeliveryDelivered: entities.EventDelivered,
}

func nextStatus(current entities.DeliveryStatusType) (entities.DeliveryStatusType, bool) {
	next, ok := advanceOrder[current]
	return next, ok
}
