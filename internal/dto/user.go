package dto

import (
	"time"

	"github.com/finanzapp/finanzas-backend/internal/core/domain"
)

// RegisterUserRequest is the payload for user self-registration.
type RegisterUserRequest struct {
	Name              string `json:"name" binding:"required,max=100"`
	Email             string `json:"email" binding:"required,email"`
	Password          string `json:"password" binding:"required,min=8,max=72"`
	PreferredCurrency string `json:"preferredCurrency" binding:"omitempty,currencycode"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Pointers differentiate omitted fields from zero-value fields.
type UpdateUserRequest struct {
	Name              *string `json:"name" binding:"omitempty,max=100"`
	PreferredCurrency *string `json:"preferredCurrency" binding:"omitempty,currencycode"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}

// UserResponse is the public representation of a user.
type UserResponse struct {
	UserID            string    `json:"userID"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	PreferredCurrency string    `json:"preferredCurrency"`
	CreatedAt         time.Time `json:"createdAt"`
	LastUpdatedAt     time.Time `json:"lastUpdatedAt"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:            user.UserID,
		Name:              user.Name,
		Email:             user.Email,
		PreferredCurrency: user.PreferredCurrency,
		CreatedAt:         user.CreatedAt,
		LastUpdatedAt:     user.LastUpdatedAt,
	}
}

// ToListUsersResponse converts a slice of domain.User to ListUsersResponse.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: out}
}
