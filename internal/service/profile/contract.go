//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=profile_test
package profile

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, profileModify entities.ProfileModify) (*entities.Profile, error)
	Update(ctx context.Context, profileModify entities.ProfileModify) (*entities.Profile, error)

	GetByID(ctx context.Context, profileID string) (*entities.Profile, error)
	GetByEmail(ctx context.Context, email string) (*entities.Profile, error)
	GetAll(ctx context.Context) ([]entities.Profile, error)
}

type CredentialRepository interface {
	Create(ctx context.Context, userID, email, passwordHash string) error
	GetHashByEmail(ctx context.Context, email string) (string, string, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(passwordHash, password string) error
}

type TokenIssuer interface {
	Issue(profileID string, role entities.RoleType) (string, error)
}

type IDFactory interface {
	NewID() string
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
