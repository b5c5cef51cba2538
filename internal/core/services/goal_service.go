package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzapp/finanzas-backend/internal/apperrors"
	"github.com/finanzapp/finanzas-backend/internal/core/domain"
	portsrepo "github.com/finanzapp/finanzas-backend/internal/core/ports/repositories"
	portssvc "github.com/finanzapp/finanzas-backend/internal/core/ports/services"
	"github.com/finanzapp/finanzas-backend/internal/dto"
)

// GoalService provides business logic for saving goals. Contributions also
// record a SAVING movement so they show up in the monthly summary.
type GoalService struct {
	goalRepo        portsrepo.GoalRepositoryFacade
	movementRepo    portsrepo.MovementRepositoryFacade
	currencyService portssvc.CurrencySvcFacade
}

// NewGoalService creates a new GoalService.
func NewGoalService(goalRepo portsrepo.GoalRepositoryFacade, movementRepo portsrepo.MovementRepositoryFacade, currencyService portssvc.CurrencySvcFacade) *GoalService {
	return &GoalService{
		goalRepo:        goalRepo,
		movementRepo:    movementRepo,
		currencyService: currencyService,
	}
}

// CreateGoal creates a new saving goal for the user.
func (s *GoalService) CreateGoal(ctx context.Context, userID string, req dto.CreateGoalRequest) (*domain.Goal, error) {
	if err := validateAmount(req.TargetAmount); err != nil {
		return nil, err
	}

	currencyCode := strings.ToUpper(req.CurrencyCode)
	if _, err := s.currencyService.GetCurrencyByCode(ctx, currencyCode); err != nil {
		return nil, fmt.Errorf("%w: unknown currency %s", apperrors.ErrValidation, currencyCode)
	}

	now := time.Now()
	goal := domain.Goal{
		GoalID:       uuid.NewString(),
		UserID:       userID,
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		SavedAmount:  decimal.Zero,
		CurrencyCode: currencyCode,
		TargetDate:   req.TargetDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to save goal in service: %w", err)
	}
	return &goal, nil
}

// GetGoal retrieves a goal, enforcing ownership.
func (s *GoalService) GetGoal(ctx context.Context, userID, goalID string) (*domain.Goal, error) {
	goal, err := s.goalRepo.FindGoalByID(ctx, goalID)
	if err != nil {
		return nil, fmt.Errorf("failed to get goal in service: %w", err)
	}
	if goal.UserID != userID {
		return nil, fmt.Errorf("%w: goal belongs to another user", apperrors.ErrForbidden)
	}
	return goal, nil
}

// ListGoals retrieves all of the user's goals.
func (s *GoalService) ListGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	goals, err := s.goalRepo.ListGoals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals in service: %w", err)
	}
	if goals == nil {
		return []domain.Goal{}, nil
	}
	return goals, nil
}

// UpdateGoal applies partial updates to a goal the user owns.
func (s *GoalService) UpdateGoal(ctx context.Context, userID, goalID string, req dto.UpdateGoalRequest) (*domain.Goal, error) {
	goal, err := s.GetGoal(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		goal.Name = *req.Name
	}
	if req.TargetAmount != nil {
		if err := validateAmount(*req.TargetAmount); err != nil {
			return nil, err
		}
		goal.TargetAmount = *req.TargetAmount
	}
	if req.TargetDate != nil {
		goal.TargetDate = req.TargetDate
	}
	goal.LastUpdatedAt = time.Now()
	goal.LastUpdatedBy = userID

	if err := s.goalRepo.UpdateGoal(ctx, *goal); err != nil {
		return nil, fmt.Errorf("failed to update goal in service: %w", err)
	}
	return goal, nil
}

// DeleteGoal soft-deletes a goal the user owns.
func (s *GoalService) DeleteGoal(ctx context.Context, userID, goalID string) error {
	if _, err := s.GetGoal(ctx, userID, goalID); err != nil {
		return err
	}
	if err := s.goalRepo.MarkGoalDeleted(ctx, goalID, time.Now(), userID); err != nil {
		return fmt.Errorf("failed to delete goal in service: %w", err)
	}
	return nil
}

// Contribute adds to the goal's saved amount and records the matching
// SAVING movement in the goal's currency.
func (s *GoalService) Contribute(ctx context.Context, userID, goalID string, req dto.ContributeGoalRequest) (*domain.Goal, error) {
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}

	goal, err := s.GetGoal(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	movement := domain.Movement{
		MovementID:   uuid.NewString(),
		UserID:       userID,
		Type:         domain.Saving,
		Amount:       req.Amount,
		CurrencyCode: goal.CurrencyCode,
		Category:     "Goal: " + goal.Name,
		Description:  req.Description,
		OccurredAt:   now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.movementRepo.SaveMovement(ctx, movement); err != nil {
		return nil, fmt.Errorf("failed to record goal contribution movement: %w", err)
	}

	goal.SavedAmount = goal.SavedAmount.Add(req.Amount)
	goal.LastUpdatedAt = now
	goal.LastUpdatedBy = userID

	if err := s.goalRepo.UpdateGoal(ctx, *goal); err != nil {
		return nil, fmt.Errorf("failed to update goal saved amount: %w", err)
	}
	return goal, nil
}
