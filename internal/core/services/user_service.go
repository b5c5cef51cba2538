package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finanzapp/finanzas-backend/internal/apperrors"
	"github.com/finanzapp/finanzas-backend/internal/core/domain"
	"github.com/finanzapp/finanzas-backend/internal/core/fx"
	portsrepo "github.com/finanzapp/finanzas-backend/internal/core/ports/repositories"
	"github.com/finanzapp/finanzas-backend/internal/dto"
	"github.com/finanzapp/finanzas-backend/internal/utils"
)

// UserService provides business logic for user accounts.
type UserService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) *UserService {
	return &UserService{userRepo: userRepo}
}

// RegisterUser registers a new user with a hashed password.
func (s *UserService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	preferred := strings.ToUpper(req.PreferredCurrency)
	if preferred == "" {
		preferred = string(fx.ARS)
	}

	now := time.Now()
	user := domain.User{
		UserID:            uuid.NewString(),
		Name:              req.Name,
		Email:             email,
		PasswordHash:      hashedPassword,
		PreferredCurrency: preferred,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	user.CreatedBy = user.UserID
	user.LastUpdatedBy = user.UserID

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save user in service: %w", err)
	}
	return &user, nil
}

// AuthenticateUser verifies credentials and returns the user on success.
func (s *UserService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to find user for authentication: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}
	return user, nil
}

// FindOrCreateGoogleUser returns the user matching the Google profile
// email, creating an account on first sign-in.
func (s *UserService) FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(info.Email))

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up google user: %w", err)
	}

	// First sign-in via Google: no local password is set.
	now := time.Now()
	newUser := domain.User{
		UserID:            uuid.NewString(),
		Name:              info.Name,
		Email:             email,
		PreferredCurrency: string(fx.ARS),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	newUser.CreatedBy = newUser.UserID
	newUser.LastUpdatedBy = newUser.UserID

	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		return nil, fmt.Errorf("failed to create google user: %w", err)
	}
	return &newUser, nil
}

// GetUserByID retrieves a user by their ID.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID in service: %w", err)
	}
	return user, nil
}

// ListUsers retrieves a paginated list of users.
func (s *UserService) ListUsers(ctx context.Context, params dto.ListUsersParams) ([]domain.User, error) {
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	users, err := s.userRepo.ListUsers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users in service: %w", err)
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}

// UpdateUser applies the provided partial update to the user's profile.
func (s *UserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user for update: %w", err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.PreferredCurrency != nil {
		user.PreferredCurrency = strings.ToUpper(*req.PreferredCurrency)
	}
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = userID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update user in service: %w", err)
	}
	return user, nil
}

// DeleteUser soft deletes a user account.
func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.userRepo.MarkUserDeleted(ctx, userID, time.Now(), userID); err != nil {
		return fmt.Errorf("failed to delete user in service: %w", err)
	}
	return nil
}

// UpdateRefreshToken stores the hashed refresh token and its expiry.
// Passing an empty hash clears the stored token (logout).
func (s *UserService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiryTime *time.Time) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, refreshTokenHash, expiryTime); err != nil {
		return fmt.Errorf("failed to update refresh token in service: %w", err)
	}
	return nil
}
