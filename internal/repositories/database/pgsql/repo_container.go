package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/finanzapp/finanzas-backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:     newPgxUserRepository(dbPool),
		CurrencyRepo: newPgxCurrencyRepository(dbPool),
		MovementRepo: newPgxMovementRepository(dbPool),
		GoalRepo:     newPgxGoalRepository(dbPool),
	}
}
