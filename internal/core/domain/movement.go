package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType classifies a money movement.
type MovementType string

const (
	Income  MovementType = "INCOME"
	Expense MovementType = "EXPENSE"
	Saving  MovementType = "SAVING"
)

// IsValid reports whether the movement type is one of the known values.
func (t MovementType) IsValid() bool {
	switch t {
	case Income, Expense, Saving:
		return true
	}
	return false
}

// Movement is a single income, expense or saving entry for a user.
type Movement struct {
	MovementID   string          `json:"movementID"` // Primary Key (UUID)
	UserID       string          `json:"userID"`     // Owner
	Type         MovementType    `json:"type"`
	Amount       decimal.Decimal `json:"amount"` // Always positive; sign is implied by Type
	CurrencyCode string          `json:"currencyCode"`
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	OccurredAt   time.Time       `json:"occurredAt"` // When the movement happened, not when it was recorded
	AuditFields
}

// MonthlySummary aggregates a user's movements for one calendar month.
type MonthlySummary struct {
	Year     int             `json:"year"`
	Month    time.Month      `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Savings  decimal.Decimal `json:"savings"`
	Balance  decimal.Decimal `json:"balance"` // Income - Expenses - Savings
}
