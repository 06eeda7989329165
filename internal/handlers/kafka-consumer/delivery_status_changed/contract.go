package delivery_status_changed

import (
	"dispatch/internal/entities"
	"dispatch/internal/pkg/factory/notification_handle"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type HandlerFactory interface {
	GetHandler(eventType entities.DeliveryEventType) (notification_handle.ExecuteFn, error)
}
