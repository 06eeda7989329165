package notification_handle

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
)

var ErrUndefinedEvent = errors.New("undefined delivery event")

// Заголовки пушей фиксированы, мобильный клиент группирует по ним.
const (
	titleBooked   = "Delivery Booked"
	titleUpdate   = "Delivery Update"
	titleAssigned = "New Delivery Assigned"
)

type NotificationService interface {
	Notify(ctx context.Context, userID, title, message string) (*entities.Notification, error)
}

type ExecuteFn func(ctx context.Context, event entities.DeliveryEvent) error

// EventHandlerFactory раздаёт обработчики событий фида: каждое событие
// превращается в уведомления затронутым сторонам.
type EventHandlerFactory struct {
	notificationService NotificationService
}

func NewEventHandlerFactory(notificationService NotificationService) *EventHandlerFactory {
	return &EventHandlerFactory{
		notificationService: notificationService,
	}
}

func (f *EventHandlerFactory) GetHandler(eventType entities.DeliveryEventType) (ExecuteFn, error) {
	switch eventType {
	case entities.EventBooked:
		return f.bookedHandler, nil
	case entities.EventAccepted:
		return f.acceptedHandler, nil
	case entities.EventAssignedByAdmin, entities.EventReassigned:
		return f.riderAssignedHandler, nil
	case entities.EventPickedUp:
		return f.statusHandler("Your package has been picked up and is on the way"), nil
	case entities.EventInTransit:
		return f.statusHandler("Your package is now in transit to the destination"), nil
	case entities.EventDelivered:
		return f.statusHandler("Your package has been successfully delivered"), nil
	case entities.EventCancelled:
		return f.cancelledHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUndefinedEvent, eventType)
	}
}

func (f *EventHandlerFactory) bookedHandler(ctx context.Context, event entities.DeliveryEvent) error {
	message := "Your delivery has been booked. Tracking number: " + event.TrackingNumber
	_, err := f.notificationService.Notify(ctx, event.CustomerID, titleBooked, message)
	if err != nil {
		return fmt.Errorf("notify customer for booked delivery %s: %w", event.DeliveryID, err)
	}
	return nil
}

// acceptedHandler уведомляет только клиента: исполнитель сам взял заказ.
func (f *EventHandlerFactory) acceptedHandler(ctx context.Context, event entities.DeliveryEvent) error {
	_, err := f.notificationService.Notify(ctx, event.CustomerID, titleUpdate,
		"A rider has been assigned to your delivery and will pick up your package soon.")
	if err != nil {
		return fmt.Errorf("notify customer for accepted delivery %s: %w", event.DeliveryID, err)
	}
	return nil
}

// riderAssignedHandler уведомляет только исполнителя: назначение пришло
// от админа, а не по его собственному действию.
func (f *EventHandlerFactory) riderAssignedHandler(ctx context.Context, event entities.DeliveryEvent) error {
	if event.RiderUserID == nil {
		return nil
	}

	_, err := f.notificationService.Notify(ctx, *event.RiderUserID, titleAssigned,
		"You have been assigned delivery "+event.TrackingNumber)
	if err != nil {
		return fmt.Errorf("notify rider for assigned delivery %s: %w", event.DeliveryID, err)
	}
	return nil
}

func (f *EventHandlerFactory) statusHandler(message string) ExecuteFn {
	return func(ctx context.Context, event entities.DeliveryEvent) error {
		_, err := f.notificationService.Notify(ctx, event.CustomerID, titleUpdate, message)
		if err != nil {
			return fmt.Errorf("notify customer for delivery %s: %w", event.DeliveryID, err)
		}
		return nil
	}
}

func (f *EventHandlerFactory) cancelledHandler(ctx context.Context, event entities.DeliveryEvent) error {
	message := "Your delivery " + event.TrackingNumber + " has been cancelled"
	_, err := f.notificationService.Notify(ctx, event.CustomerID, titleUpdate, message)
	if err != nil {
		return fmt.Errorf("notify customer for cancelled delivery %s: %w", event.DeliveryID, err)
	}
	return nil
}
