package credential

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"dispatch/internal/repository"
	"dispatch/internal/service/profile"
)

// Хранилище учётных записей. Хэш пароля не покидает пакет профиля,
// доменной сущности у этой таблицы нет.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, userID, email, passwordHash string) error {
	query := `INSERT INTO auth_users (id, email, password_hash)
		VALUES ($1, $2, $3)`

	_, err := r.querier.Exec(ctx, query, userID, email, passwordHash)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return profile.ErrEmailTaken
		}
		return fmt.Errorf("unexpected credential repository create error: %w", err)
	}
	return nil
}

func (r *Repository) GetHashByEmail(ctx context.Context, email string) (string, string, error) {
	query := `SELECT id, password_hash
		FROM auth_users
		WHERE email = $1`

	var userID, passwordHash string
	err := r.querier.QueryRow(ctx, query, email).Scan(&userID, &passwordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", "", profile.ErrProfileNotFound
		}
		return "", "", fmt.Errorf("unexpected credential repository gethashbyemail error: %w", err)
	}

	return userID, passwordHash, nil
}
