package tracking

import (
	"dispatch/internal/entities"
)

func ToDomain(e *TrackingEventDB) *entities.TrackingEvent {
	if e == nil {
		return nil
	}

	return &entities.TrackingEvent{
		ID:           e.ID,
		DeliveryID:   e.DeliveryID,
		RiderLat:     e.RiderLat,
		RiderLng:     e.RiderLng,
		StatusUpdate: e.StatusUpdate,
		CreatedAt:    e.CreatedAt,
	}
}

func ToDomainList(eventsDB []TrackingEventDB) []entities.TrackingEvent {
	if len(eventsDB) == 0 {
		return []entities.TrackingEvent{}
	}

	result := make([]entities.TrackingEvent, len(eventsDB))
	for i, eventDB := range eventsDB {
		result[i] = *ToDomain(&eventDB)
	}
	return result
}
