package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finanzapp/finanzas-backend/internal/apperrors"
	"github.com/finanzapp/finanzas-backend/internal/core/domain"
	portsrepo "github.com/finanzapp/finanzas-backend/internal/core/ports/repositories"
)

type PgxUserRepository struct {
	BaseRepository
}

// newPgxUserRepository creates a new repository for user data.
func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryWithTx {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.UserRepositoryWithTx = (*PgxUserRepository)(nil)

const userColumns = `
	user_id, name, email, password_hash, preferred_currency,
	refresh_token_hash, refresh_token_expiry_time, deleted_at,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.UserID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.PreferredCurrency,
		&user.RefreshTokenHash,
		&user.RefreshTokenExpiryTime,
		&user.DeletedAt,
		&user.CreatedAt,
		&user.CreatedBy,
		&user.LastUpdatedAt,
		&user.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SaveUser persists a new user.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
		INSERT INTO users (user_id, name, email, password_hash, preferred_currency, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		user.UserID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.PreferredCurrency,
		user.CreatedAt,
		user.CreatedBy,
		user.LastUpdatedAt,
		user.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

// FindUserByID retrieves a non-deleted user by ID.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1 AND deleted_at IS NULL;`

	user, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return user, nil
}

// FindUserByEmail retrieves a non-deleted user by email.
func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND deleted_at IS NULL;`

	user, err := scanUser(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

// ListUsers retrieves non-deleted users with limit/offset pagination.
func (r *PgxUserRepository) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE deleted_at IS NULL ORDER BY created_at LIMIT $1 OFFSET $2;`

	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.User, error) {
		user, err := scanUser(row)
		if err != nil {
			return domain.User{}, err
		}
		return *user, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan users: %w", err)
	}
	return users, nil
}

// UpdateUser persists profile changes to an existing user.
func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	query := `
		UPDATE users
		SET name = $2, preferred_currency = $3, last_updated_at = $4, last_updated_by = $5
		WHERE user_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query,
		user.UserID,
		user.Name,
		user.PreferredCurrency,
		user.LastUpdatedAt,
		user.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkUserDeleted soft-deletes a user.
func (r *PgxUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	query := `
		UPDATE users
		SET deleted_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE user_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, userID, deletedAt, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to mark user deleted: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateRefreshToken stores (or clears) the refresh token hash and expiry.
func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiryTime *time.Time) error {
	query := `
		UPDATE users
		SET refresh_token_hash = $2, refresh_token_expiry_time = $3
		WHERE user_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, userID, refreshTokenHash, expiryTime)
	if err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
