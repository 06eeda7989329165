package entities

import "time"

// TrackingEvent — строго append-only журнал по одной доставке.
// Удаляется только каскадом перед удалением родительской записи.
type TrackingEvent struct {
	ID           string
	DeliveryID   string
	RiderLat     float64
	RiderLng     float64
	StatusUpdate string
	CreatedAt    time.Time
}

// DeliveryTrack — публичная проекция для трекинга по номеру:
// сама доставка плюс история событий от новых к старым.
type DeliveryTrack struct {
	Delivery Delivery
	Events   []TrackingEvent
}

type TrackingEventModify struct {
	ID           *string
	DeliveryID   *string
	RiderLat     *float64
	RiderLng     *float64
	StatusUpdate *string
}
