package profile

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"dispatch/internal/entities"
)

type Profile struct {
	repository     Repository
	credentials    CredentialRepository
	passwordHasher PasswordHasher
	tokenIssuer    TokenIssuer
	idFactory      IDFactory
	txManager      TxManager
	validate       *validator.Validate
	adminSecret    string
}

func New(
	repository Repository,
	credentials CredentialRepository,
	passwordHasher PasswordHasher,
	tokenIssuer TokenIssuer,
	idFactory IDFactory,
	txManager TxManager,
	adminSecret string,
) *Profile {
	return &Profile{
		repository:     repository,
		credentials:    credentials,
		passwordHasher: passwordHasher,
		tokenIssuer:    tokenIssuer,
		idFactory:      idFactory,
		txManager:      txManager,
		validate:       validator.New(),
		adminSecret:    adminSecret,
	}
}

type SignupInput struct {
	Email    string            `validate:"required,email"`
	Password string            `validate:"required,min=8"`
	FullName string            `validate:"required"`
	Phone    string            `validate:"required,e164"`
	Role     entities.RoleType `validate:"required,oneof=customer rider"`
}

type LoginResult struct {
	Token   string
	Profile entities.Profile
}

// Signup создаёт учётную запись и профиль одной транзакцией: если профиль
// не записался, учётная запись тоже не появляется. Роль admin через
// регистрацию недоступна, исполнители стартуют со статусом pending.
func (s *Profile) Signup(ctx context.Context, input SignupInput) (*entities.Profile, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	passwordHash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	profileStatus := entities.ProfileActive
	if input.Role == entities.RoleRider {
		profileStatus = entities.ProfilePending
	}

	userID := s.idFactory.NewID()

	var created *entities.Profile
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.credentials.Create(ctx, userID, input.Email, passwordHash); err != nil {
			return fmt.Errorf("create credential: %w", err)
		}

		created, err = s.repository.Create(ctx, entities.ProfileModify{
			ID:       &userID,
			Email:    &input.Email,
			FullName: &input.FullName,
			Phone:    &input.Phone,
			Role:     &input.Role,
			Status:   &profileStatus,
		})
		if err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Profile) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, ErrMissingRequiredFields
	}

	userID, passwordHash, err := s.credentials.GetHashByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get credential: %w", err)
	}

	if err := s.passwordHasher.Compare(passwordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	found, err := s.repository.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	token, err := s.tokenIssuer.Issue(found.ID, found.Role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &LoginResult{Token: token, Profile: *found}, nil
}

// PromoteAdmin поднимает существующий профиль до администратора по
// разделяемому секрету. Секрет сравнивается за постоянное время.
func (s *Profile) PromoteAdmin(ctx context.Context, email, secret string) (*entities.Profile, error) {
	if email == "" || secret == "" {
		return nil, ErrMissingRequiredFields
	}
	if subtle.ConstantTimeCompare([]byte(secret), []byte(s.adminSecret)) != 1 {
		return nil, ErrInvalidSecret
	}

	found, err := s.repository.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get profile by email: %w", err)
	}

	adminRole := entities.RoleAdmin
	activeStatus := entities.ProfileActive
	promoted, err := s.repository.Update(ctx, entities.ProfileModify{
		ID:     &found.ID,
		Role:   &adminRole,
		Status: &activeStatus,
	})
	if err != nil {
		return nil, fmt.Errorf("promote profile: %w", err)
	}
	return promoted, nil
}

// SetStatus — внутренний переключатель статуса, вызывается другими
// сервисами внутри их транзакций. Проверка прав лежит на вызывающем.
func (s *Profile) SetStatus(ctx context.Context, profileID string, status entities.ProfileStatusType) (*entities.Profile, error) {
	if !isValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	updated, err := s.repository.Update(ctx, entities.ProfileModify{
		ID:     &profileID,
		Status: &status,
	})
	if err != nil {
		return nil, fmt.Errorf("update profile status: %w", err)
	}
	return updated, nil
}

func (s *Profile) AdminSetStatus(ctx context.Context, actor entities.Actor, profileID string, status entities.ProfileStatusType) (*entities.Profile, error) {
	if !actor.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	return s.SetStatus(ctx, profileID, status)
}

func (s *Profile) GetProfile(ctx context.Context, actor entities.Actor, profileID string) (*entities.Profile, error) {
	if !actor.IsAdmin() && actor.ProfileID != profileID {
		return nil, ErrPermissionDenied
	}

	found, err := s.repository.GetByID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return found, nil
}

func (s *Profile) GetProfiles(ctx context.Context, actor entities.Actor) ([]entities.Profile, error) {
	if !actor.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	profiles, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get profiles: %w", err)
	}
	return profiles, nil
}

func isValidStatus(status entities.ProfileStatusType) bool {
	switch status {
	case entities.ProfileActive, entities.ProfileSuspended, entities.ProfilePending:
		return true
	}
	return false
}
