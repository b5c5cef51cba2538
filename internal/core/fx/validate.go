package fx

import "math"

// MaxAmount is the largest amount the UI accepts for a single movement.
const MaxAmount = 999_999_999

// AmountValidation is the user-facing outcome of an amount check. It is a
// display-time courtesy, not a storage-layer constraint.
type AmountValidation struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// ValidateAmount checks that an amount is a positive number within bounds and
// returns a human-readable reason when it is not.
func ValidateAmount(amount float64) AmountValidation {
	switch {
	case math.IsNaN(amount) || math.IsInf(amount, 0):
		return AmountValidation{Reason: "amount is not a valid number"}
	case amount < 0:
		return AmountValidation{Reason: "amount cannot be negative"}
	case amount == 0:
		return AmountValidation{Reason: "amount must be greater than zero"}
	case amount > MaxAmount:
		return AmountValidation{Reason: "amount exceeds the maximum allowed"}
	}
	return AmountValidation{Valid: true}
}
