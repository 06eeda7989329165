package delivery

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

// Доля гонорара исполнителя от итоговой стоимости доставки.
const riderEarningShare = 0.8

type Delivery struct {
	repository      Repository
	trackingRepo    TrackingRepository
	transactionRepo TransactionRepository
	typesRepo       DeliveryTypeRepository
	riderService    RiderService
	fareEstimator   FareEstimator
	trackingNumbers TrackingNumberFactory
	publisher       EventPublisher
	cache           TrackingCache
	txManager       TxManager
	log             logger.Logger
}

func New(
	repository Repository,
	trackingRepo TrackingRepository,
	transactionRepo TransactionRepository,
	typesRepo DeliveryTypeRepository,
	riderService RiderService,
	fareEstimator FareEstimator,
	trackingNumbers TrackingNumberFactory,
	publisher EventPublisher,
	cache TrackingCache,
	txManager TxManager,
	log logger.Logger,
) *Delivery {
	return &Delivery{
		repository:      repository,
		trackingRepo:    trackingRepo,
		transactionRepo: transactionRepo,
		typesRepo:       typesRepo,
		riderService:    riderService,
		fareEstimator:   fareEstimator,
		trackingNumbers: trackingNumbers,
		publisher:       publisher,
		cache:           cache,
		txManager:       txManager,
		log:             log,
	}
}

func (d *Delivery) Book(ctx context.Context, actor entities.Actor, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	if !actor.IsCustomer() {
		return nil, ErrPermissionDenied
	}
	if err := validateBook(deliveryModify); err != nil {
		return nil, err
	}

	basePrice := int64(0)
	if deliveryModify.DeliveryTypeID != nil {
		deliveryType, err := d.typesRepo.GetByID(ctx, *deliveryModify.DeliveryTypeID)
		if err != nil {
			return nil, fmt.Errorf("get delivery type: %w", err)
		}
		if deliveryType.IsActive {
			basePrice = deliveryType.BasePrice
		}
	}

	fare := d.fareEstimator.Estimate(
		*deliveryModify.PickupLat, *deliveryModify.PickupLng,
		*deliveryModify.DropoffLat, *deliveryModify.DropoffLng,
		*deliveryModify.PackageWeight, basePrice,
	)

	trackingNumber := d.trackingNumbers.NewTrackingNumber()
	pendingStatus := entities.DeliveryPending
	paymentPending := entities.PaymentPending

	deliveryModify.CustomerID = &actor.ProfileID
	deliveryModify.TrackingNumber = &trackingNumber
	deliveryModify.FareEstimate = &fare
	deliveryModify.Status = &pendingStatus
	deliveryModify.PaymentStatus = &paymentPending
	deliveryModify.RiderID = nil
	deliveryModify.FinalFare = nil
	deliveryModify.CompletedAt = nil

	created, err := d.repository.Create(ctx, deliveryModify)
	if err != nil {
		return nil, fmt.Errorf("create delivery: %w", err)
	}

	d.publish(ctx, newDeliveryEvent(entities.EventBooked, created, nil))
	return created, nil
}

// Accept — гонка за заказ между исполнителями. Победителя определяет
// единственный условный UPDATE, проигравший получает ErrAlreadyClaimed.
func (d *Delivery) Accept(ctx context.Context, actor entities.Actor, deliveryID string) (*entities.Delivery, error) {
	if !actor.IsRider() {
		return nil, ErrPermissionDenied
	}
	if !isValidID(deliveryID) {
		return nil, ErrInvalidDeliveryID
	}

	rider, err := d.riderService.GetRiderByUser(ctx, actor.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("get rider by user: %w", err)
	}
	if rider.ApprovalStatus != entities.ApprovalApproved {
		return nil, ErrRiderNotApproved
	}
	if !rider.IsAvailable {
		return nil, ErrRiderUnavailable
	}

	var claimed *entities.Delivery
	err = d.txManager.Do(ctx, func(ctx context.Context) error {
		claimed, err = d.repository.ClaimPending(ctx, deliveryID, rider.ID)
		if err != nil {
			if errors.Is(err, ErrDeliveryNotFound) {
				return d.classifyClaimFailure(ctx, deliveryID)
			}
			return fmt.Errorf("claim delivery: %w", err)
		}

		if err := d.appendTrackingEvent(ctx, claimed.ID, rider, claimed, trackingMsgAssigned); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	d.invalidateTrack(ctx, claimed.TrackingNumber)
	d.publish(ctx, newDeliveryEvent(entities.EventAccepted, claimed, &rider.UserID))
	return claimed, nil
}

func (d *Delivery) AdminAssign(ctx context.Context, actor entities.Actor, deliveryID, riderID string) (*entities.Delivery, error) {
	if !actor.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	if !isValidID(deliveryID) {
		return nil, ErrInvalidDeliveryID
	}
	if !isValidID(riderID) {
		return nil, ErrInvalidRiderID
	}

	rider, err := d.riderService.GetRider(ctx, riderID)
	if err != nil {
		return nil, fmt.Errorf("get rider: %w", err)
	}
	if rider.ApprovalStatus != entities.ApprovalApproved {
		return nil, ErrRiderNotApproved
	}

	assigned, err := d.repository.ClaimPending(ctx, deliveryID, rider.ID)
	if err != nil {
		if errors.Is(err, ErrDeliveryNotFound) {
			return nil, d.classifyClaimFailure(ctx, deliveryID)
		}
		return nil, fmt.Errorf("assign delivery: %w", err)
	}

	d.invalidateTrack(ctx, assigned.TrackingNumber)
	d.publish(ctx, newDeliveryEvent(entities.EventAssignedByAdmin, assigned, &rider.UserID))
	return assigned, nil
}

func (d *Delivery) Reassign(ctx context.Context, actor entities.Actor, deliveryID, riderID string) (*entities.Delivery, error) {
	if !actor.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	if !isValidID(deliveryID) {
		return nil, ErrInvalidDeliveryID
	}
	if !isValidID(riderID) {
		return nil, ErrInvalidRiderID
	}

	rider, err := d.riderService.GetRider(ctx, riderID)
	if err != nil {
		return nil, fmt.Errorf("get rider: %w", err)
	}
	if rider.ApprovalStatus != entities.ApprovalApproved {
		return nil, ErrRiderNotApproved
	}

	var reassigned *entities.Delivery
	err = d.txManager.Do(ctx, func(ctx context.Context) error {
		reassigned, err = d.repository.ReplaceRider(ctx, deliveryID, rider.ID)
		if err != nil {
			if errors.Is(err, ErrDeliveryNotFound) {
				return d.classifyClaimFailure(ctx, deliveryID)
			}
			return fmt.Errorf("reassign delivery: %w", err)
		}

		if err := d.appendTrackingEvent(ctx, reassigned.ID, rider, reassigned, trackingMsgReassigned); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	d.invalidateTrack(ctx, reassigned.TrackingNumber)
	d.publish(ctx, newDeliveryEvent(entities.EventReassigned, reassigned, &rider.UserID))
	return reassigned, nil
}

// Advance двигает доставку ровно на один шаг. Повторный или внеочередной
// вызов упирается в условный UPDATE и возвращает ErrInvalidTransition.
func (d *Delivery) Advance(ctx context.Context, actor entities.Actor, deliveryID string) (*entities.Delivery, error) {
	if !actor.IsRider() {
		return nil, ErrPermissionDenied
	}
	if !isValidID(deliveryID) {
		return nil, ErrInvalidDeliveryID
	}

	rider, err := d.riderService.GetRiderByUser(ctx, actor.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("get rider by user: %w", err)
	}

	current, err := d.repository.GetByID(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	if current.RiderID == nil || *current.RiderID != rider.ID {
		return nil, ErrPermissionDenied
	}

	next, ok := nextStatus(current.Status)
	if !ok {
		return nil, ErrInvalidTransition
	}

	if next == entities.DeliveryDelivered {
		return d.complete(ctx, current, rider)
	}

	var advanced *entities.Delivery
	err = d.txManager.Do(ctx, func(ctx context.Context) error {
		advanced, err = d.repository.UpdateStatus(ctx, deliveryID, current.Status, next)
		if err != nil {
			if errors.Is(err, ErrDeliveryNotFound) {
				return ErrInvalidTransition
			}
			return fmt.Errorf("update status: %w", err)
		}

		if err := d.appendTrackingEvent(ctx, advanced.ID, rider, advanced, advanceMessage[next]); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	d.invalidateTrack(ctx, advanced.TrackingNumber)
	d.publish(ctx, newDeliveryEvent(advanceEvent[next], advanced, &rider.UserID))
	return advanced, nil
}

// complete закрывает доставку одной сериализуемой транзакцией: статус,
// итоговая стоимость, проводки по обеим сторонам и счётчик исполнителя.
// Либо всё, либо ничего — частично закрытых доставок не бывает.
func (d *Delivery) complete(ctx context.Context, current *entities.Delivery, rider *entities.Rider) (*entities.Delivery, error) {
	completedAt := time.Now().UTC()
	earning := int64(math.Round(float64(current.FareEstimate) * riderEarningShare))

	var completed *entities.Delivery
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		completed, err = d.repository.MarkDelivered(ctx, current.ID, current.FareEstimate, completedAt)
		if err != nil {
			if errors.Is(err, ErrDeliveryNotFound) {
				return ErrInvalidTransition
			}
			return fmt.Errorf("mark delivered: %w", err)
		}

		debitType := entities.TransactionDebit
		debitAmount := current.FareEstimate
		debitDescription := "Payment for delivery " + completed.TrackingNumber
		completedTxn := entities.TransactionCompleted
		_, err = d.transactionRepo.Create(ctx, entities.TransactionModify{
			UserID:      &completed.CustomerID,
			DeliveryID:  &completed.ID,
			Type:        &debitType,
			Amount:      &debitAmount,
			Description: &debitDescription,
			Status:      &completedTxn,
		})
		if err != nil {
			return fmt.Errorf("create debit transaction: %w", err)
		}

		creditType := entities.TransactionCredit
		creditDescription := "Earnings for delivery " + completed.TrackingNumber
		_, err = d.transactionRepo.Create(ctx, entities.TransactionModify{
			UserID:      &rider.UserID,
			DeliveryID:  &completed.ID,
			Type:        &creditType,
			Amount:      &earning,
			Description: &creditDescription,
			Status:      &completedTxn,
		})
		if err != nil {
			return fmt.Errorf("create credit transaction: %w", err)
		}

		if _, err = d.riderService.RecordCompletedDelivery(ctx, rider.ID); err != nil {
			return fmt.Errorf("record completed delivery: %w", err)
		}

		if err := d.appendTrackingEvent(ctx, completed.ID, rider, completed, trackingMsgDelivered); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	d.invalidateTrack(ctx, completed.TrackingNumber)
	d.publish(ctx, newDeliveryEvent(entities.EventDelivered, completed, &rider.UserID))
	return completed, nil
}

func (d *Delivery) Cancel(ctx context.Context, actor entities.Actor, deliveryID string) (*entities.Delivery, error) {
	if !actor.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	if !isValidID(deliveryID) {
		return nil, ErrInvalidDeliveryID
	}

	cancelled, err := d.repository.CancelActive(ctx, deliveryID)
	if err != nil {
		if errors.Is(err, ErrDeliveryNotFound) {
			return nil, d.classifyClaimFailure(ctx, deliveryID)
		}
		return nil, fmt.Errorf("cancel delivery: %w", err)
	}

	d.invalidateTrack(ctx, cancelled.TrackingNumber)
	d.publish(ctx, newDeliveryEvent(entities.EventCancelled, cancelled, nil))
	return cancelled, nil
}

// DeleteDelivery убирает запись целиком: сначала каскад журнала трекинга,
// затем сама доставка, в одной транзакции.
func (d *Delivery) DeleteDelivery(ctx context.Context, actor entities.Actor, deliveryID string) error {
	if !isValidID(deliveryID) {
		return ErrInvalidDeliveryID
	}

	target, err := d.repository.GetByID(ctx, deliveryID)
	if err != nil {
		return fmt.Errorf("get delivery: %w", err)
	}

	if !actor.IsAdmin() {
		if !actor.IsRider() || !target.Status.IsTerminal() {
			return ErrPermissionDenied
		}
		rider, err := d.riderService.GetRiderByUser(ctx, actor.ProfileID)
		if err != nil {
			return fmt.Errorf("get rider by user: %w", err)
		}
		if target.RiderID == nil || *target.RiderID != rider.ID {
			return ErrPermissionDenied
		}
	}

	err = d.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := d.trackingRepo.DeleteByDelivery(ctx, deliveryID); err != nil {
			return fmt.Errorf("delete tracking events: %w", err)
		}
		if err := d.repository.Delete(ctx, deliveryID); err != nil {
			return fmt.Errorf("delete delivery: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	d.invalidateTrack(ctx, target.TrackingNumber)
	return nil
}

func (d *Delivery) GetDelivery(ctx context.Context, actor entities.Actor, deliveryID string) (*entities.Delivery, error) {
	if !isValidID(deliveryID) {
		return nil, ErrInvalidDeliveryID
	}

	found, err := d.repository.GetByID(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}

	switch {
	case actor.IsAdmin():
		return found, nil
	case actor.IsCustomer():
		if found.CustomerID != actor.ProfileID {
			return nil, ErrPermissionDenied
		}
		return found, nil
	case actor.IsRider():
		rider, err := d.riderService.GetRiderByUser(ctx, actor.ProfileID)
		if err != nil {
			return nil, fmt.Errorf("get rider by user: %w", err)
		}
		if found.RiderID == nil || *found.RiderID != rider.ID {
			return nil, ErrPermissionDenied
		}
		return found, nil
	}
	return nil, ErrPermissionDenied
}

// GetDeliveries отдаёт список в объёме роли: клиент видит свои заказы,
// исполнитель назначенные на него, администратор всё с фильтром по статусу.
func (d *Delivery) GetDeliveries(ctx context.Context, actor entities.Actor, status *entities.DeliveryStatusType) ([]entities.Delivery, error) {
	switch {
	case actor.IsAdmin():
		deliveries, err := d.repository.GetAll(ctx, status)
		if err != nil {
			return nil, fmt.Errorf("get deliveries: %w", err)
		}
		return deliveries, nil
	case actor.IsCustomer():
		deliveries, err := d.repository.GetByCustomer(ctx, actor.ProfileID, status)
		if err != nil {
			return nil, fmt.Errorf("get customer deliveries: %w", err)
		}
		return deliveries, nil
	case actor.IsRider():
		rider, err := d.riderService.GetRiderByUser(ctx, actor.ProfileID)
		if err != nil {
			return nil, fmt.Errorf("get rider by user: %w", err)
		}
		deliveries, err := d.repository.GetByRider(ctx, rider.ID, status)
		if err != nil {
			return nil, fmt.Errorf("get rider deliveries: %w", err)
		}
		return deliveries, nil
	}
	return nil, ErrPermissionDenied
}

func (d *Delivery) GetAvailableDeliveries(ctx context.Context, actor entities.Actor) ([]entities.Delivery, error) {
	if !actor.IsRider() {
		return nil, ErrPermissionDenied
	}

	deliveries, err := d.repository.GetPendingUnclaimed(ctx)
	if err != nil {
		return nil, fmt.Errorf("get pending deliveries: %w", err)
	}
	return deliveries, nil
}

// GetDeliveryTypes — публичный каталог тарифов: клиент выбирает из него
// delivery_type_id перед бронированием.
func (d *Delivery) GetDeliveryTypes(ctx context.Context) ([]entities.DeliveryType, error) {
	deliveryTypes, err := d.typesRepo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("get delivery types: %w", err)
	}
	return deliveryTypes, nil
}

// TrackByNumber — публичная точка без сессии, поэтому наружу уходит только
// то, что видно получателю. Результат кэшируется с коротким TTL.
func (d *Delivery) TrackByNumber(ctx context.Context, trackingNumber string) (*entities.DeliveryTrack, error) {
	if !isValidTrackingNumber(trackingNumber) {
		return nil, ErrInvalidTrackingNumber
	}
	trackingNumber = strings.ToUpper(strings.TrimSpace(trackingNumber))

	if cached, err := d.cache.Get(ctx, trackingNumber); err == nil && cached != nil {
		return cached, nil
	}

	found, err := d.repository.GetByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, fmt.Errorf("get delivery by tracking number: %w", err)
	}

	events, err := d.trackingRepo.GetByDelivery(ctx, found.ID)
	if err != nil {
		return nil, fmt.Errorf("get tracking events: %w", err)
	}

	track := &entities.DeliveryTrack{
		Delivery: *found,
		Events:   events,
	}

	if err := d.cache.Set(ctx, trackingNumber, track); err != nil {
		d.log.Warn("tracking cache set failed",
			logger.NewField("tracking_number", trackingNumber),
			logger.NewField("error", err.Error()),
		)
	}
	return track, nil
}

// classifyClaimFailure различает «записи нет» и «запись уже не в нужном
// статусе» после нулевого условного UPDATE.
func (d *Delivery) classifyClaimFailure(ctx context.Context, deliveryID string) error {
	_, err := d.repository.GetByID(ctx, deliveryID)
	if err != nil {
		if errors.Is(err, ErrDeliveryNotFound) {
			return ErrDeliveryNotFound
		}
		return fmt.Errorf("get delivery: %w", err)
	}
	return ErrAlreadyClaimed
}

func (d *Delivery) appendTrackingEvent(ctx context.Context, deliveryID string, rider *entities.Rider, delivery *entities.Delivery, message string) error {
	// координаты исполнителя могут быть ещё не присланы, тогда берём точку забора
	lat := delivery.PickupLat
	lng := delivery.PickupLng
	if rider.CurrentLat != nil && rider.CurrentLng != nil {
		lat = *rider.CurrentLat
		lng = *rider.CurrentLng
	}

	_, err := d.trackingRepo.Create(ctx, entities.TrackingEventModify{
		DeliveryID:   &deliveryID,
		RiderLat:     &lat,
		RiderLng:     &lng,
		StatusUpdate: &message,
	})
	if err != nil {
		return fmt.Errorf("create tracking event: %w", err)
	}
	return nil
}

// Публикация идёт после коммита: фид изменений at-least-once и не должен
// откатывать уже зафиксированный переход.
func (d *Delivery) publish(ctx context.Context, event entities.DeliveryEvent) {
	if err := d.publisher.PublishDeliveryEvent(ctx, event); err != nil {
		d.log.Error("delivery event publish failed",
			logger.NewField("event_type", event.Type.String()),
			logger.NewField("delivery_id", event.DeliveryID),
			logger.NewField("error", err.Error()),
		)
	}
}

func (d *Delivery) invalidateTrack(ctx context.Context, trackingNumber string) {
	if err := d.cache.Invalidate(ctx, trackingNumber); err != nil {
		d.log.Warn("tracking cache invalidate failed",
			logger.NewField("tracking_number", trackingNumber),
			logger.NewField("error", err.Error()),
		)
	}
}

func newDeliveryEvent(eventType entities.DeliveryEventType, delivery *entities.Delivery, riderUserID *string) entities.DeliveryEvent {
	return entities.DeliveryEvent{
		Type:           eventType,
		DeliveryID:     delivery.ID,
		TrackingNumber: delivery.TrackingNumber,
		CustomerID:     delivery.CustomerID,
		RiderID:        delivery.RiderID,
		RiderUserID:    riderUserID,
		Status:         delivery.Status,
		OccurredAt:     time.Now().UTC(),
	}
}
