package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a saving goal a user is working towards.
type Goal struct {
	GoalID       string          `json:"goalID"` // Primary Key (UUID)
	UserID       string          `json:"userID"` // Owner
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	SavedAmount  decimal.Decimal `json:"savedAmount"`
	CurrencyCode string          `json:"currencyCode"`
	TargetDate   *time.Time      `json:"targetDate,omitempty"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// ProgressPercent returns how much of the target has been saved, capped at 100.
func (g Goal) ProgressPercent() decimal.Decimal {
	if g.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	pct := g.SavedAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100))
	hundred := decimal.NewFromInt(100)
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct.Round(2)
}
