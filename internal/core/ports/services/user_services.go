package services

import (
	"context"
	"time"

	"github.com/finanzapp/finanzas-backend/internal/core/domain"
	"github.com/finanzapp/finanzas-backend/internal/dto"
)

// UserReaderSvc defines read operations for user data.
type UserReaderSvc interface {
	// GetUserByID retrieves a specific user.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers retrieves users with pagination.
	ListUsers(ctx context.Context, params dto.ListUsersParams) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data.
type UserWriterSvc interface {
	// RegisterUser creates a new user with a hashed password.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// UpdateUser applies partial updates to the user's own profile.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// DeleteUser soft-deletes the user.
	DeleteUser(ctx context.Context, userID string) error

	// UpdateRefreshToken stores (or clears) the user's refresh token hash.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiryTime *time.Time) error
}

// UserAuthenticatorSvc authenticates credentials and external identities.
type UserAuthenticatorSvc interface {
	// AuthenticateUser verifies email/password and returns the user.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)

	// FindOrCreateGoogleUser resolves a Google identity to a local user,
	// creating one on first sign-in.
	FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthenticatorSvc
}
