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
	"github.com/finanzapp/finanzas-backend/internal/core/fx"
	portsrepo "github.com/finanzapp/finanzas-backend/internal/core/ports/repositories"
	portssvc "github.com/finanzapp/finanzas-backend/internal/core/ports/services"
	"github.com/finanzapp/finanzas-backend/internal/dto"
)

// MovementService provides business logic for income, expense and saving
// movements.
type MovementService struct {
	movementRepo    portsrepo.MovementRepositoryFacade
	currencyService portssvc.CurrencySvcFacade
}

// NewMovementService creates a new MovementService.
func NewMovementService(movementRepo portsrepo.MovementRepositoryFacade, currencyService portssvc.CurrencySvcFacade) *MovementService {
	return &MovementService{
		movementRepo:    movementRepo,
		currencyService: currencyService,
	}
}

// validateAmount enforces the shared bounds for user-entered amounts.
func validateAmount(amount decimal.Decimal) error {
	value, _ := amount.Float64()
	if v := fx.ValidateAmount(value); !v.Valid {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, v.Reason)
	}
	return nil
}

// CreateMovement records a new movement for the user.
func (s *MovementService) CreateMovement(ctx context.Context, userID string, req dto.CreateMovementRequest) (*domain.Movement, error) {
	if !req.Type.IsValid() {
		return nil, fmt.Errorf("%w: invalid movement type %q", apperrors.ErrValidation, req.Type)
	}
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}

	currencyCode := strings.ToUpper(req.CurrencyCode)
	if _, err := s.currencyService.GetCurrencyByCode(ctx, currencyCode); err != nil {
		return nil, fmt.Errorf("%w: unknown currency %s", apperrors.ErrValidation, currencyCode)
	}

	now := time.Now()
	movement := domain.Movement{
		MovementID:   uuid.NewString(),
		UserID:       userID,
		Type:         req.Type,
		Amount:       req.Amount,
		CurrencyCode: currencyCode,
		Category:     req.Category,
		Description:  req.Description,
		OccurredAt:   req.OccurredAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.movementRepo.SaveMovement(ctx, movement); err != nil {
		return nil, fmt.Errorf("failed to save movement in service: %w", err)
	}
	return &movement, nil
}

// GetMovement retrieves a movement, enforcing ownership.
func (s *MovementService) GetMovement(ctx context.Context, userID, movementID string) (*domain.Movement, error) {
	movement, err := s.movementRepo.FindMovementByID(ctx, movementID)
	if err != nil {
		return nil, fmt.Errorf("failed to get movement in service: %w", err)
	}
	if movement.UserID != userID {
		return nil, fmt.Errorf("%w: movement belongs to another user", apperrors.ErrForbidden)
	}
	return movement, nil
}

// ListMovements retrieves a page of the user's movements newest-first.
func (s *MovementService) ListMovements(ctx context.Context, userID string, params dto.ListMovementsParams) ([]domain.Movement, string, error) {
	filter := portsrepo.MovementListFilter{
		Type:      domain.MovementType(params.Type),
		Limit:     params.Limit,
		NextToken: params.NextToken,
	}
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if params.Year != 0 {
		from, to := monthRange(params.Year, params.Month)
		filter.From = &from
		filter.To = &to
	}

	movements, nextToken, err := s.movementRepo.ListMovements(ctx, userID, filter)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list movements in service: %w", err)
	}
	if movements == nil {
		movements = []domain.Movement{}
	}
	return movements, nextToken, nil
}

// MonthlySummary aggregates the user's movements for one calendar month.
func (s *MovementService) MonthlySummary(ctx context.Context, userID string, year, month int) (*domain.MonthlySummary, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", apperrors.ErrValidation)
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	sums, err := s.movementRepo.SumByType(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to sum movements in service: %w", err)
	}

	income := sums[domain.Income]
	expenses := sums[domain.Expense]
	savings := sums[domain.Saving]

	return &domain.MonthlySummary{
		Year:     year,
		Month:    time.Month(month),
		Income:   income,
		Expenses: expenses,
		Savings:  savings,
		Balance:  income.Sub(expenses).Sub(savings),
	}, nil
}

// UpdateMovement applies partial updates to a movement the user owns.
func (s *MovementService) UpdateMovement(ctx context.Context, userID, movementID string, req dto.UpdateMovementRequest) (*domain.Movement, error) {
	movement, err := s.GetMovement(ctx, userID, movementID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if err := validateAmount(*req.Amount); err != nil {
			return nil, err
		}
		movement.Amount = *req.Amount
	}
	if req.Category != nil {
		movement.Category = *req.Category
	}
	if req.Description != nil {
		movement.Description = *req.Description
	}
	if req.OccurredAt != nil {
		movement.OccurredAt = *req.OccurredAt
	}
	movement.LastUpdatedAt = time.Now()
	movement.LastUpdatedBy = userID

	if err := s.movementRepo.UpdateMovement(ctx, *movement); err != nil {
		return nil, fmt.Errorf("failed to update movement in service: %w", err)
	}
	return movement, nil
}

// DeleteMovement removes a movement the user owns.
func (s *MovementService) DeleteMovement(ctx context.Context, userID, movementID string) error {
	if _, err := s.GetMovement(ctx, userID, movementID); err != nil {
		return err
	}
	if err := s.movementRepo.DeleteMovement(ctx, movementID); err != nil {
		return fmt.Errorf("failed to delete movement in service: %w", err)
	}
	return nil
}

// monthRange returns [from, to) for the given year and optional month.
// A zero month covers the whole year.
func monthRange(year, month int) (time.Time, time.Time) {
	if month == 0 {
		from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		return from, from.AddDate(1, 0, 0)
	}
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}
