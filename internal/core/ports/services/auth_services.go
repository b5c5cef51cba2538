package services

import (
	"context"
	"time"

	"github.com/finanzapp/finanzas-backend/internal/core/domain"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// TokenSvcFacade issues and validates access and refresh tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT for the user and returns it
	// with its expiry time.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken creates a new opaque refresh token and its expiry.
	// The caller is responsible for persisting its hash.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateAndParseRefreshToken checks a raw refresh token against the
	// user's stored hash and expiry and returns the user when valid.
	ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshToken string) (*domain.User, error)
}

// GoogleOAuthHandlerSvcFacade wraps the Google OAuth code flow and ID-token
// validation.
type GoogleOAuthHandlerSvcFacade interface {
	// GenerateStateString creates the CSRF token for the OAuth redirect.
	GenerateStateString(ctx context.Context) (string, error)

	// GetGoogleLoginURL returns the URL to send the user to for consent.
	GetGoogleLoginURL(ctx context.Context, state string) string

	// ExchangeCodeForToken redeems an authorization code.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// GetUserInfo fetches the user's profile with the given token.
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)

	// ValidateGoogleIDToken verifies an ID token obtained client-side.
	ValidateGoogleIDToken(ctx context.Context, idToken string) (*idtoken.Payload, error)
}
