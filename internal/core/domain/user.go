package domain

import "time"

// User represents a user of the application in the domain.
type User struct {
	UserID            string `json:"userID"` // Primary Key (UUID)
	Name              string `json:"name"`
	Email             string `json:"email"`
	PasswordHash      string `json:"-"`
	PreferredCurrency string `json:"preferredCurrency"` // Display currency for balances
	AuditFields
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	DeletedAt              *time.Time `json:"deletedAt,omitempty"` // Soft delete marker
}

// GoogleUserInfo is the subset of the Google userinfo payload we consume.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
