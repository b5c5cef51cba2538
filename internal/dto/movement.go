package dto

import (
	"time"

	"github.com/finanzapp/finanzas-backend/internal/core/domain"
	"github.com/finanzapp/finanzas-backend/internal/core/fx"
	"github.com/shopspring/decimal"
)

// CreateMovementRequest is the payload for recording a movement.
type CreateMovementRequest struct {
	Type         domain.MovementType `json:"type" binding:"required,oneof=INCOME EXPENSE SAVING"`
	Amount       decimal.Decimal     `json:"amount" binding:"required"`
	CurrencyCode string              `json:"currencyCode" binding:"required,currencycode"`
	Category     string              `json:"category" binding:"required,max=64"`
	Description  string              `json:"description" binding:"max=256"`
	OccurredAt   time.Time           `json:"occurredAt" binding:"required"`
}

// UpdateMovementRequest defines the fields that may be changed on a movement.
type UpdateMovementRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	Category    *string          `json:"category" binding:"omitempty,max=64"`
	Description *string          `json:"description" binding:"omitempty,max=256"`
	OccurredAt  *time.Time       `json:"occurredAt"`
}

// ListMovementsParams filters and paginates the movement list.
type ListMovementsParams struct {
	Year      int    `form:"year" binding:"omitempty,min=2000,max=2200"`
	Month     int    `form:"month" binding:"omitempty,min=1,max=12"`
	Type      string `form:"type" binding:"omitempty,oneof=INCOME EXPENSE SAVING"`
	Limit     int    `form:"limit,default=50" binding:"omitempty,min=1,max=200"`
	NextToken string `form:"nextToken"`
}

// MovementResponse is the public representation of a movement.
type MovementResponse struct {
	MovementID      string              `json:"movementID"`
	Type            domain.MovementType `json:"type"`
	Amount          decimal.Decimal     `json:"amount"`
	FormattedAmount string              `json:"formattedAmount"`
	CurrencyCode    string              `json:"currencyCode"`
	Category        string              `json:"category"`
	Description     string              `json:"description"`
	OccurredAt      time.Time           `json:"occurredAt"`
	CreatedAt       time.Time           `json:"createdAt"`
}

// ListMovementsResponse wraps a page of movements.
type ListMovementsResponse struct {
	Movements []MovementResponse `json:"movements"`
	NextToken string             `json:"nextToken,omitempty"`
}

// MonthlySummaryResponse aggregates a month of movements for display.
type MonthlySummaryResponse struct {
	Year             int             `json:"year"`
	Month            int             `json:"month"`
	Income           decimal.Decimal `json:"income"`
	Expenses         decimal.Decimal `json:"expenses"`
	Savings          decimal.Decimal `json:"savings"`
	Balance          decimal.Decimal `json:"balance"`
	FormattedBalance string          `json:"formattedBalance"`
	CurrencyCode     string          `json:"currencyCode"`
}

// ToMonthlySummaryResponse converts a domain.MonthlySummary, formatting the
// balance in the given currency.
func ToMonthlySummaryResponse(s *domain.MonthlySummary, currencyCode string) MonthlySummaryResponse {
	balance, _ := s.Balance.Float64()
	return MonthlySummaryResponse{
		Year:             s.Year,
		Month:            int(s.Month),
		Income:           s.Income,
		Expenses:         s.Expenses,
		Savings:          s.Savings,
		Balance:          s.Balance,
		FormattedBalance: fx.FormatBalance(balance, fx.Code(currencyCode)),
		CurrencyCode:     currencyCode,
	}
}

// ToMovementResponse converts a domain.Movement to its response DTO.
func ToMovementResponse(m *domain.Movement) MovementResponse {
	amount, _ := m.Amount.Float64()
	return MovementResponse{
		MovementID:      m.MovementID,
		Type:            m.Type,
		Amount:          m.Amount,
		FormattedAmount: fx.FormatMovementAmount(amount, fx.Code(m.CurrencyCode)),
		CurrencyCode:    m.CurrencyCode,
		Category:        m.Category,
		Description:     m.Description,
		OccurredAt:      m.OccurredAt,
		CreatedAt:       m.CreatedAt,
	}
}

// ToListMovementsResponse converts a page of domain movements.
func ToListMovementsResponse(movements []domain.Movement, nextToken string) ListMovementsResponse {
	out := make([]MovementResponse, len(movements))
	for i := range movements {
		out[i] = ToMovementResponse(&movements[i])
	}
	return ListMovementsResponse{Movements: out, NextToken: nextToken}
}
