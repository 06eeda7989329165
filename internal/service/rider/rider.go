package rider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/entities"
)

type Rider struct {
	repository     Repository
	profileService ProfileService
	txManager      TxManager
}

func New(repository Repository, profileService ProfileService, txManager TxManager) *Rider {
	return &Rider{
		repository:     repository,
		profileService: profileService,
		txManager:      txManager,
	}
}

// RegisterRider заводит анкету исполнителя для текущего пользователя.
// Анкета одна на пользователя, стартует в статусе pending и недоступна
// для заказов до решения администратора.
func (s *Rider) RegisterRider(ctx context.Context, actor entities.Actor, riderModify entities.RiderModify) (*entities.Rider, error) {
	if !actor.IsRider() {
		return nil, ErrPermissionDenied
	}
	if riderModify.VehicleType == nil ||
		riderModify.VehicleNumber == nil ||
		riderModify.DriverLicense == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidVehicleType(*riderModify.VehicleType) {
		return nil, ErrInvalidVehicleType
	}

	pendingApproval := entities.ApprovalPending
	notAvailable := false

	riderModify.UserID = &actor.ProfileID
	riderModify.ApprovalStatus = &pendingApproval
	riderModify.IsAvailable = &notAvailable
	riderModify.Rating = nil
	riderModify.TotalDeliveries = nil

	created, err := s.repository.Create(ctx, riderModify)
	if err != nil {
		return nil, fmt.Errorf("create rider: %w", err)
	}
	return created, nil
}

// UpdateRider — доступность, позиция и данные транспорта. Менять можно
// только собственную анкету; статус одобрения этим путём не трогается.
func (s *Rider) UpdateRider(ctx context.Context, actor entities.Actor, riderModify entities.RiderModify) (*entities.Rider, error) {
	if !actor.IsRider() {
		return nil, ErrPermissionDenied
	}

	own, err := s.repository.GetByUserID(ctx, actor.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("get rider by user: %w", err)
	}

	if riderModify.VehicleType == nil &&
		riderModify.VehicleNumber == nil &&
		riderModify.DriverLicense == nil &&
		riderModify.BankAccount == nil &&
		riderModify.IsAvailable == nil &&
		riderModify.CurrentLat == nil &&
		riderModify.CurrentLng == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if riderModify.VehicleType != nil && !isValidVehicleType(*riderModify.VehicleType) {
		return nil, ErrInvalidVehicleType
	}
	if riderModify.CurrentLat != nil && !isValidLat(*riderModify.CurrentLat) {
		return nil, ErrInvalidCoordinates
	}
	if riderModify.CurrentLng != nil && !isValidLng(*riderModify.CurrentLng) {
		return nil, ErrInvalidCoordinates
	}

	riderModify.ID = &own.ID
	riderModify.UserID = nil
	riderModify.ApprovalStatus = nil
	riderModify.Rating = nil
	riderModify.TotalDeliveries = nil

	updated, err := s.repository.Update(ctx, riderModify)
	if err != nil {
		return nil, fmt.Errorf("update rider: %w", err)
	}
	return updated, nil
}

// DecideApproval — одноразовое решение по анкете: pending переходит в
// approved или rejected, повторное решение невозможно. Вместе со статусом
// анкеты в той же транзакции меняется и статус профиля пользователя.
func (s *Rider) DecideApproval(ctx context.Context, actor entities.Actor, riderID string, decision entities.ApprovalStatusType) (*entities.Rider, error) {
	if !actor.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	if !isValidID(riderID) {
		return nil, ErrInvalidRiderID
	}
	if decision != entities.ApprovalApproved && decision != entities.ApprovalRejected {
		return nil, ErrInvalidDecision
	}

	var decided *entities.Rider
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		decided, err = s.repository.DecideApproval(ctx, riderID, decision)
		if err != nil {
			if errors.Is(err, ErrRiderNotFound) {
				return s.classifyDecisionFailure(ctx, riderID)
			}
			return fmt.Errorf("decide approval: %w", err)
		}

		profileStatus := entities.ProfileActive
		if decision == entities.ApprovalRejected {
			profileStatus = entities.ProfileSuspended
		}
		if _, err = s.profileService.SetStatus(ctx, decided.UserID, profileStatus); err != nil {
			return fmt.Errorf("set profile status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return decided, nil
}

func (s *Rider) GetRider(ctx context.Context, riderID string) (*entities.Rider, error) {
	if !isValidID(riderID) {
		return nil, ErrInvalidRiderID
	}

	found, err := s.repository.GetByID(ctx, riderID)
	if err != nil {
		return nil, fmt.Errorf("get rider: %w", err)
	}
	return found, nil
}

func (s *Rider) GetRiderByUser(ctx context.Context, userID string) (*entities.Rider, error) {
	if !isValidID(userID) {
		return nil, ErrInvalidRiderID
	}

	found, err := s.repository.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get rider by user: %w", err)
	}
	return found, nil
}

func (s *Rider) GetRiders(ctx context.Context, actor entities.Actor, availableOnly bool) ([]entities.Rider, error) {
	if !actor.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	riders, err := s.repository.GetAll(ctx, availableOnly)
	if err != nil {
		return nil, fmt.Errorf("get riders: %w", err)
	}
	return riders, nil
}

// RecordCompletedDelivery вызывается изнутри транзакции закрытия доставки.
func (s *Rider) RecordCompletedDelivery(ctx context.Context, riderID string) (*entities.Rider, error) {
	if !isValidID(riderID) {
		return nil, ErrInvalidRiderID
	}

	updated, err := s.repository.IncrementTotalDeliveries(ctx, riderID)
	if err != nil {
		return nil, fmt.Errorf("increment total deliveries: %w", err)
	}
	return updated, nil
}

// SweepStaleRiders снимает доступность с исполнителей, не обновлявших
// позицию дольше окна давности. Запускается фоновой задачей.
func (s *Rider) SweepStaleRiders(ctx context.Context, stalenessWindow time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-stalenessWindow)

	rowsAffected, err := s.repository.UpdateUnavailableWhereStale(ctx, cutoff)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("sweep timed out: %w", err)
		}
		return 0, fmt.Errorf("sweep stale riders: %w", err)
	}
	return rowsAffected, nil
}

func (s *Rider) classifyDecisionFailure(ctx context.Context, riderID string) error {
	_, err := s.repository.GetByID(ctx, riderID)
	if err != nil {
		if errors.Is(err, ErrRiderNotFound) {
			return ErrRiderNotFound
		}
		return fmt.Errorf("get rider: %w", err)
	}
	return ErrAlreadyDecided
}
