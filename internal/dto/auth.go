package dto

import "time"

// LoginRequest carries user credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued access token. The refresh token travels in
// an HTTP-only cookie, not in the body.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// RefreshRequest identifies the user whose refresh cookie should be rotated.
type RefreshRequest struct {
	UserID string `json:"userID" binding:"required,uuid"`
}

// GoogleCallbackQuery binds the OAuth redirect parameters.
type GoogleCallbackQuery struct {
	Code  string `form:"code" binding:"required"`
	State string `form:"state" binding:"required"`
}

// GoogleIDTokenRequest carries a Google ID token obtained client-side.
type GoogleIDTokenRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}
