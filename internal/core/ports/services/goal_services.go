package services

import (
	"context"

	"github.com/finanzapp/finanzas-backend/internal/core/domain"
	"github.com/finanzapp/finanzas-backend/internal/dto"
)

// GoalReaderSvc defines read operations for saving-goal data.
type GoalReaderSvc interface {
	// GetGoal retrieves a goal owned by the given user.
	GetGoal(ctx context.Context, userID, goalID string) (*domain.Goal, error)

	// ListGoals retrieves all of the user's goals.
	ListGoals(ctx context.Context, userID string) ([]domain.Goal, error)
}

// GoalWriterSvc defines write operations for saving-goal data.
type GoalWriterSvc interface {
	// CreateGoal creates a new saving goal for the user.
	CreateGoal(ctx context.Context, userID string, req dto.CreateGoalRequest) (*domain.Goal, error)

	// UpdateGoal applies partial updates to a goal the user owns.
	UpdateGoal(ctx context.Context, userID, goalID string, req dto.UpdateGoalRequest) (*domain.Goal, error)

	// DeleteGoal soft-deletes a goal the user owns.
	DeleteGoal(ctx context.Context, userID, goalID string) error

	// Contribute adds to a goal's saved amount and records the matching
	// SAVING movement.
	Contribute(ctx context.Context, userID, goalID string, req dto.ContributeGoalRequest) (*domain.Goal, error)
}

// GoalSvcFacade combines all goal-related service interfaces.
type GoalSvcFacade interface {
	GoalReaderSvc
	GoalWriterSvc
}
