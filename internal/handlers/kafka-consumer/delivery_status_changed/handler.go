package delivery_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/factory/notification_handle"
	"dispatch/pkg/logger"
)

type deliveryEventDTO struct {
	Type           string    `json:"type"`
	DeliveryID     string    `json:"delivery_id"`
	TrackingNumber string    `json:"tracking_number"`
	CustomerID     string    `json:"customer_id"`
	RiderID        *string   `json:"rider_id"`
	RiderUserID    *string   `json:"rider_user_id"`
	Status         string    `json:"status"`
	OccurredAt     time.Time `json:"occurred_at"`
}

type Handler struct {
	factory                  HandlerFactory
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, factory HandlerFactory, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		factory:                  factory,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("delivery.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("delivery.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var eventDTO deliveryEventDTO
	err := json.Unmarshal(message.Value, &eventDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("delivery.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("delivery", eventDTO.DeliveryID),
		logger.NewField("event_type", eventDTO.Type),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("delivery.status.changed processing")

	event := entities.DeliveryEvent{
		Type:           entities.DeliveryEventType(eventDTO.Type),
		DeliveryID:     eventDTO.DeliveryID,
		TrackingNumber: eventDTO.TrackingNumber,
		CustomerID:     eventDTO.CustomerID,
		RiderID:        eventDTO.RiderID,
		RiderUserID:    eventDTO.RiderUserID,
		Status:         entities.DeliveryStatusType(eventDTO.Status),
		OccurredAt:     eventDTO.OccurredAt,
	}

	handle, err := h.factory.GetHandler(event.Type)
	if err != nil {
		msgLog.With(
			logger.NewField("error", err),
		).Warn("delivery.status.changed handler unknown event type")
		sess.MarkMessage(message, "")
		return false
	}

	err = handle(ctx, event)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, notification_handle.ErrUndefinedEvent):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.status.changed handler undefined event")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.status.changed handler failed to process event")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("delivery.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
