package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finanzapp/finanzas-backend/internal/apperrors"
	"github.com/finanzapp/finanzas-backend/internal/core/domain"
	portsrepo "github.com/finanzapp/finanzas-backend/internal/core/ports/repositories"
)

type PgxGoalRepository struct {
	BaseRepository
}

// newPgxGoalRepository creates a new repository for saving-goal data.
func newPgxGoalRepository(pool *pgxpool.Pool) portsrepo.GoalRepositoryWithTx {
	return &PgxGoalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.GoalRepositoryWithTx = (*PgxGoalRepository)(nil)

const goalColumns = `
	goal_id, user_id, name, target_amount, saved_amount, currency_code, target_date,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanGoal(row pgx.Row) (domain.Goal, error) {
	var goal domain.Goal
	err := row.Scan(
		&goal.GoalID,
		&goal.UserID,
		&goal.Name,
		&goal.TargetAmount,
		&goal.SavedAmount,
		&goal.CurrencyCode,
		&goal.TargetDate,
		&goal.CreatedAt,
		&goal.CreatedBy,
		&goal.LastUpdatedAt,
		&goal.LastUpdatedBy,
	)
	return goal, err
}

// SaveGoal persists a new goal.
func (r *PgxGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	query := `
		INSERT INTO goals (goal_id, user_id, name, target_amount, saved_amount, currency_code, target_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		goal.GoalID,
		goal.UserID,
		goal.Name,
		goal.TargetAmount,
		goal.SavedAmount,
		goal.CurrencyCode,
		goal.TargetDate,
		goal.CreatedAt,
		goal.CreatedBy,
		goal.LastUpdatedAt,
		goal.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save goal: %w", err)
	}
	return nil
}

// FindGoalByID retrieves a non-deleted goal by ID.
func (r *PgxGoalRepository) FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE goal_id = $1 AND deleted_at IS NULL;`

	goal, err := scanGoal(r.Pool.QueryRow(ctx, query, goalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find goal by ID: %w", err)
	}
	return &goal, nil
}

// ListGoals retrieves all of a user's non-deleted goals, oldest-first.
func (r *PgxGoalRepository) ListGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE user_id = $1 AND deleted_at IS NULL ORDER BY created_at;`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer rows.Close()

	goals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Goal, error) {
		return scanGoal(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan goals: %w", err)
	}
	return goals, nil
}

// UpdateGoal persists changes to an existing goal.
func (r *PgxGoalRepository) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	query := `
		UPDATE goals
		SET name = $2, target_amount = $3, saved_amount = $4, target_date = $5, last_updated_at = $6, last_updated_by = $7
		WHERE goal_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query,
		goal.GoalID,
		goal.Name,
		goal.TargetAmount,
		goal.SavedAmount,
		goal.TargetDate,
		goal.LastUpdatedAt,
		goal.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkGoalDeleted soft-deletes a goal.
func (r *PgxGoalRepository) MarkGoalDeleted(ctx context.Context, goalID string, deletedAt time.Time, deletedBy string) error {
	query := `
		UPDATE goals
		SET deleted_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE goal_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, goalID, deletedAt, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to mark goal deleted: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
