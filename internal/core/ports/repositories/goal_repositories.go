package repositories

import (
	"context"
	"time"

	"github.com/finanzapp/finanzas-backend/internal/core/domain"
)

// GoalReader defines read operations for saving-goal data.
type GoalReader interface {
	// FindGoalByID retrieves a single goal. Soft-deleted goals are excluded.
	FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error)

	// ListGoals retrieves all of a user's goals, oldest-first.
	ListGoals(ctx context.Context, userID string) ([]domain.Goal, error)
}

// GoalWriter defines write operations for saving-goal data.
type GoalWriter interface {
	// SaveGoal persists a new goal.
	SaveGoal(ctx context.Context, goal domain.Goal) error

	// UpdateGoal persists changes to an existing goal.
	UpdateGoal(ctx context.Context, goal domain.Goal) error

	// MarkGoalDeleted soft-deletes a goal.
	MarkGoalDeleted(ctx context.Context, goalID string, deletedAt time.Time, deletedBy string) error
}

// GoalRepositoryFacade combines all goal-related repository interfaces.
type GoalRepositoryFacade interface {
	GoalReader
	GoalWriter
}

// GoalRepositoryWithTx extends GoalRepositoryFacade with transaction capabilities.
type GoalRepositoryWithTx interface {
	GoalRepositoryFacade
	TransactionManager
}
