package tracking

import "time"

type TrackingEventDB struct {
	ID           string
	DeliveryID   string
	RiderLat     float64
	RiderLng     float64
	StatusUpdate string
	CreatedAt    time.Time
}
