package profile

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/profile"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const profileColumns = `id, email, full_name, phone, role, status, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, profileModifyEntity entities.ProfileModify) (*entities.Profile, error) {
	profileModifyModel := FromDomainModify(&profileModifyEntity)
	query := `INSERT INTO profiles (id, email, full_name, phone, role, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + profileColumns

	profileModel, err := scanProfile(r.querier.QueryRow(
		ctx,
		query,
		profileModifyModel.ID,
		profileModifyModel.Email,
		profileModifyModel.FullName,
		profileModifyModel.Phone,
		profileModifyModel.Role,
		profileModifyModel.Status,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, profile.ErrEmailTaken
		}
		return nil, fmt.Errorf("unexpected profile repository create error: %w", err)
	}

	return ToDomain(profileModel), nil
}

func (r *Repository) Update(ctx context.Context, profileModifyEntity entities.ProfileModify) (*entities.Profile, error) {
	profileModifyModel := FromDomainModify(&profileModifyEntity)

	builder := qb.
		Update("profiles")

	// опциональные поля
	if profileModifyModel.Email != nil {
		builder = builder.Set("email", profileModifyModel.Email)
	}
	if profileModifyModel.FullName != nil {
		builder = builder.Set("full_name", profileModifyModel.FullName)
	}
	if profileModifyModel.Phone != nil {
		builder = builder.Set("phone", profileModifyModel.Phone)
	}
	if profileModifyModel.Role != nil {
		builder = builder.Set("role", profileModifyModel.Role)
	}
	if profileModifyModel.Status != nil {
		builder = builder.Set("status", profileModifyModel.Status)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": profileModifyModel.ID}).
		Suffix("RETURNING " + profileColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected profile repository update error: %w", err)
	}

	profileModel, err := scanProfile(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, profile.ErrProfileNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, profile.ErrEmailTaken
		}
		return nil, fmt.Errorf("unexpected profile repository update error: %w", err)
	}

	return ToDomain(profileModel), nil
}

func (r *Repository) GetByID(ctx context.Context, profileID string) (*entities.Profile, error) {
	query := `SELECT ` + profileColumns + `
		FROM profiles
		WHERE id = $1`

	profileModel, err := scanProfile(r.querier.QueryRow(ctx, query, profileID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, profile.ErrProfileNotFound
		}
		return nil, fmt.Errorf("unexpected profile repository getbyid error: %w", err)
	}

	return ToDomain(profileModel), nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.Profile, error) {
	query := `SELECT ` + profileColumns + `
		FROM profiles
		WHERE email = $1`

	profileModel, err := scanProfile(r.querier.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, profile.ErrProfileNotFound
		}
		return nil, fmt.Errorf("unexpected profile repository getbyemail error: %w", err)
	}

	return ToDomain(profileModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Profile, error) {
	query := `SELECT ` + profileColumns + `
		FROM profiles
		ORDER BY created_at`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected profile repository getall error: %w", err)
	}
	defer rows.Close()

	profileModels := make([]ProfileDB, 0, 8)
	for rows.Next() {
		profileModel, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected profile repository getall error: %w", err)
		}
		profileModels = append(profileModels, *profileModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected profile repository getall error: %w", err)
	}

	return ToDomainList(profileModels), nil
}

func scanProfile(row pgx.Row) (*ProfileDB, error) {
	var profileModel ProfileDB
	err := row.Scan(
		&profileModel.ID,
		&profileModel.Email,
		&profileModel.FullName,
		&profileModel.Phone,
		&profileModel.Role,
		&profileModel.Status,
		&profileModel.CreatedAt,
		&profileModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profileModel, nil
}
