package entities

import "time"

type Notification struct {
	ID        string
	UserID    string
	Title     string
	Message   string
	Type      string
	IsRead    bool
	CreatedAt time.Time
}

const NotificationTypeDelivery = "delivery"

type NotificationModify struct {
	ID      *string
	UserID  *string
	Title   *string
	Message *string
	Type    *string
	IsRead  *bool
}
