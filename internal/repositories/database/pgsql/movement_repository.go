package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/finanzapp/finanzas-backend/internal/apperrors"
	"github.com/finanzapp/finanzas-backend/internal/core/domain"
	portsrepo "github.com/finanzapp/finanzas-backend/internal/core/ports/repositories"
	"github.com/finanzapp/finanzas-backend/internal/utils/pagination"
)

type PgxMovementRepository struct {
	BaseRepository
}

// newPgxMovementRepository creates a new repository for movement data.
func newPgxMovementRepository(pool *pgxpool.Pool) portsrepo.MovementRepositoryWithTx {
	return &PgxMovementRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.MovementRepositoryWithTx = (*PgxMovementRepository)(nil)

const movementColumns = `
	movement_id, user_id, type, amount, currency_code, category, description,
	occurred_at, created_at, created_by, last_updated_at, last_updated_by
`

func scanMovement(row pgx.Row) (domain.Movement, error) {
	var movement domain.Movement
	err := row.Scan(
		&movement.MovementID,
		&movement.UserID,
		&movement.Type,
		&movement.Amount,
		&movement.CurrencyCode,
		&movement.Category,
		&movement.Description,
		&movement.OccurredAt,
		&movement.CreatedAt,
		&movement.CreatedBy,
		&movement.LastUpdatedAt,
		&movement.LastUpdatedBy,
	)
	return movement, err
}

// SaveMovement persists a new movement.
func (r *PgxMovementRepository) SaveMovement(ctx context.Context, movement domain.Movement) error {
	query := `
		INSERT INTO movements (movement_id, user_id, type, amount, currency_code, category, description, occurred_at, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		movement.MovementID,
		movement.UserID,
		movement.Type,
		movement.Amount,
		movement.CurrencyCode,
		movement.Category,
		movement.Description,
		movement.OccurredAt,
		movement.CreatedAt,
		movement.CreatedBy,
		movement.LastUpdatedAt,
		movement.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save movement: %w", err)
	}
	return nil
}

// FindMovementByID retrieves a single movement.
func (r *PgxMovementRepository) FindMovementByID(ctx context.Context, movementID string) (*domain.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE movement_id = $1;`

	movement, err := scanMovement(r.Pool.QueryRow(ctx, query, movementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find movement by ID: %w", err)
	}
	return &movement, nil
}

// ListMovements retrieves a user's movements newest-first with keyset
// pagination over (occurred_at, created_at).
func (r *PgxMovementRepository) ListMovements(ctx context.Context, userID string, filter portsrepo.MovementListFilter) ([]domain.Movement, string, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + movementColumns + ` FROM movements WHERE user_id = $1`)
	args := []any{userID}

	if filter.From != nil {
		args = append(args, *filter.From)
		fmt.Fprintf(&sb, " AND occurred_at >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		fmt.Fprintf(&sb, " AND occurred_at < $%d", len(args))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		fmt.Fprintf(&sb, " AND type = $%d", len(args))
	}
	if filter.NextToken != "" {
		cursorOccurredAt, cursorCreatedAt, err := pagination.DecodeToken(filter.NextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		args = append(args, cursorOccurredAt, cursorCreatedAt)
		fmt.Fprintf(&sb, " AND (occurred_at, created_at) < ($%d, $%d)", len(args)-1, len(args))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	// Fetch one extra row to know whether another page exists.
	args = append(args, limit+1)
	fmt.Fprintf(&sb, " ORDER BY occurred_at DESC, created_at DESC LIMIT $%d;", len(args))

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to query movements: %w", err)
	}
	defer rows.Close()

	movements, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Movement, error) {
		return scanMovement(row)
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to scan movements: %w", err)
	}

	nextToken := ""
	if len(movements) > limit {
		movements = movements[:limit]
		last := movements[len(movements)-1]
		nextToken = pagination.EncodeToken(last.OccurredAt, last.CreatedAt)
	}
	return movements, nextToken, nil
}

// SumByType totals a user's movement amounts per type within [from, to).
func (r *PgxMovementRepository) SumByType(ctx context.Context, userID string, from, to time.Time) (map[domain.MovementType]decimal.Decimal, error) {
	query := `
		SELECT type, COALESCE(SUM(amount), 0)
		FROM movements
		WHERE user_id = $1 AND occurred_at >= $2 AND occurred_at < $3
		GROUP BY type;
	`
	rows, err := r.Pool.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to sum movements: %w", err)
	}
	defer rows.Close()

	sums := make(map[domain.MovementType]decimal.Decimal)
	for rows.Next() {
		var movementType domain.MovementType
		var total decimal.Decimal
		if err := rows.Scan(&movementType, &total); err != nil {
			return nil, fmt.Errorf("failed to scan movement sum: %w", err)
		}
		sums[movementType] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate movement sums: %w", err)
	}
	return sums, nil
}

// UpdateMovement persists changes to an existing movement.
func (r *PgxMovementRepository) UpdateMovement(ctx context.Context, movement domain.Movement) error {
	query := `
		UPDATE movements
		SET amount = $2, category = $3, description = $4, occurred_at = $5, last_updated_at = $6, last_updated_by = $7
		WHERE movement_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		movement.MovementID,
		movement.Amount,
		movement.Category,
		movement.Description,
		movement.OccurredAt,
		movement.LastUpdatedAt,
		movement.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update movement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteMovement removes a movement.
func (r *PgxMovementRepository) DeleteMovement(ctx context.Context, movementID string) error {
	query := `DELETE FROM movements WHERE movement_id = $1;`

	tag, err := r.Pool.Exec(ctx, query, movementID)
	if err != nil {
		return fmt.Errorf("failed to delete movement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
