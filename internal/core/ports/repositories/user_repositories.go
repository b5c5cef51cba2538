package repositories

import (
	"context"
	"time"

	"github.com/finanzapp/finanzas-backend/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a user by ID. Soft-deleted users are excluded.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email address.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsers retrieves users with limit/offset pagination.
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser persists changes to an existing user.
	UpdateUser(ctx context.Context, user domain.User) error

	// MarkUserDeleted soft-deletes a user.
	MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error

	// UpdateRefreshToken stores the hash and expiry of a user's refresh
	// token; empty hash and nil expiry clear it.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiryTime *time.Time) error
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}

// UserRepositoryWithTx extends UserRepositoryFacade with transaction capabilities.
type UserRepositoryWithTx interface {
	UserRepositoryFacade
	TransactionManager
}
