package services

import (
	"context"

	"github.com/finanzapp/finanzas-backend/internal/core/domain"
	"github.com/finanzapp/finanzas-backend/internal/dto"
)

// MovementReaderSvc defines read operations for movement data.
type MovementReaderSvc interface {
	// GetMovement retrieves a movement owned by the given user.
	GetMovement(ctx context.Context, userID, movementID string) (*domain.Movement, error)

	// ListMovements retrieves a page of the user's movements plus the cursor
	// for the next page.
	ListMovements(ctx context.Context, userID string, params dto.ListMovementsParams) ([]domain.Movement, string, error)

	// MonthlySummary aggregates the user's movements for a calendar month.
	MonthlySummary(ctx context.Context, userID string, year, month int) (*domain.MonthlySummary, error)
}

// MovementWriterSvc defines write operations for movement data.
type MovementWriterSvc interface {
	// CreateMovement records a new movement for the user.
	CreateMovement(ctx context.Context, userID string, req dto.CreateMovementRequest) (*domain.Movement, error)

	// UpdateMovement applies partial updates to a movement the user owns.
	UpdateMovement(ctx context.Context, userID, movementID string, req dto.UpdateMovementRequest) (*domain.Movement, error)

	// DeleteMovement removes a movement the user owns.
	DeleteMovement(ctx context.Context, userID, movementID string) error
}

// MovementSvcFacade combines all movement-related service interfaces.
type MovementSvcFacade interface {
	MovementReaderSvc
	MovementWriterSvc
}
