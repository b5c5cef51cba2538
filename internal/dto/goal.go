package dto

import (
	"time"

	"github.com/finanzapp/finanzas-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateGoalRequest is the payload for creating a saving goal.
type CreateGoalRequest struct {
	Name         string          `json:"name" binding:"required,max=100"`
	TargetAmount decimal.Decimal `json:"targetAmount" binding:"required"`
	CurrencyCode string          `json:"currencyCode" binding:"required,currencycode"`
	TargetDate   *time.Time      `json:"targetDate"`
}

// UpdateGoalRequest defines the fields that may be changed on a goal.
type UpdateGoalRequest struct {
	Name         *string          `json:"name" binding:"omitempty,max=100"`
	TargetAmount *decimal.Decimal `json:"targetAmount"`
	TargetDate   *time.Time       `json:"targetDate"`
}

// ContributeGoalRequest adds an amount to a goal's saved total.
type ContributeGoalRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"max=256"`
}

// GoalResponse is the public representation of a saving goal.
type GoalResponse struct {
	GoalID          string          `json:"goalID"`
	Name            string          `json:"name"`
	TargetAmount    decimal.Decimal `json:"targetAmount"`
	SavedAmount     decimal.Decimal `json:"savedAmount"`
	CurrencyCode    string          `json:"currencyCode"`
	ProgressPercent decimal.Decimal `json:"progressPercent"`
	TargetDate      *time.Time      `json:"targetDate,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ListGoalsResponse wraps the list of goals.
type ListGoalsResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain.Goal to its response DTO.
func ToGoalResponse(g *domain.Goal) GoalResponse {
	return GoalResponse{
		GoalID:          g.GoalID,
		Name:            g.Name,
		TargetAmount:    g.TargetAmount,
		SavedAmount:     g.SavedAmount,
		CurrencyCode:    g.CurrencyCode,
		ProgressPercent: g.ProgressPercent(),
		TargetDate:      g.TargetDate,
		CreatedAt:       g.CreatedAt,
	}
}

// ToListGoalsResponse converts a slice of domain goals.
func ToListGoalsResponse(goals []domain.Goal) ListGoalsResponse {
	out := make([]GoalResponse, len(goals))
	for i := range goals {
		out[i] = ToGoalResponse(&goals[i])
	}
	return ListGoalsResponse{Goals: out}
}
