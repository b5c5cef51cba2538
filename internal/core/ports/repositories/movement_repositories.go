package repositories

import (
	"context"
	"time"

	"github.com/finanzapp/finanzas-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MovementListFilter narrows and paginates a movement listing. The zero value
// lists everything newest-first up to Limit.
type MovementListFilter struct {
	From      *time.Time          // inclusive lower bound on OccurredAt
	To        *time.Time          // exclusive upper bound on OccurredAt
	Type      domain.MovementType // empty means all types
	Limit     int
	NextToken string // cursor from a previous page
}

// MovementReader defines read operations for movement data.
type MovementReader interface {
	// FindMovementByID retrieves a single movement.
	FindMovementByID(ctx context.Context, movementID string) (*domain.Movement, error)

	// ListMovements retrieves a user's movements newest-first and returns the
	// cursor for the next page (empty when exhausted).
	ListMovements(ctx context.Context, userID string, filter MovementListFilter) ([]domain.Movement, string, error)

	// SumByType totals a user's movement amounts per type within [from, to).
	SumByType(ctx context.Context, userID string, from, to time.Time) (map[domain.MovementType]decimal.Decimal, error)
}

// MovementWriter defines write operations for movement data.
type MovementWriter interface {
	// SaveMovement persists a new movement.
	SaveMovement(ctx context.Context, movement domain.Movement) error

	// UpdateMovement persists changes to an existing movement.
	UpdateMovement(ctx context.Context, movement domain.Movement) error

	// DeleteMovement removes a movement.
	DeleteMovement(ctx context.Context, movementID string) error
}

// MovementRepositoryFacade combines all movement-related repository interfaces.
type MovementRepositoryFacade interface {
	MovementReader
	MovementWriter
}

// MovementRepositoryWithTx extends MovementRepositoryFacade with transaction capabilities.
type MovementRepositoryWithTx interface {
	MovementRepositoryFacade
	TransactionManager
}
