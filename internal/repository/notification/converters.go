package notification

import (
	"dispatch/internal/entities"
)

func ToDomain(n *NotificationDB) *entities.Notification {
	if n == nil {
		return nil
	}

	return &entities.Notification{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func ToDomainList(notificationsDB []NotificationDB) []entities.Notification {
	if len(notificationsDB) == 0 {
		return []entities.Notification{}
	}

	result := make([]entities.Notification, len(notificationsDB))
	for i, notificationDB := range notificationsDB {
		result[i] = *ToDomain(&notificationDB)
	}
	return result
}
