package services

import (
	"log/slog"

	portsrepo "github.com/finanzapp/finanzas-backend/internal/core/ports/repositories"
	portssvc "github.com/finanzapp/finanzas-backend/internal/core/ports/services"
	"github.com/finanzapp/finanzas-backend/internal/metrics"
	"github.com/finanzapp/finanzas-backend/internal/platform/cache"
	"github.com/finanzapp/finanzas-backend/internal/platform/config"
)

// NewServiceContainer wires all services with their dependencies.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider, store cache.Cache, fxMetrics *metrics.FXMetrics, logger *slog.Logger) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Movement = NewMovementService(repos.MovementRepo, container.Currency)
	container.Goal = NewGoalService(repos.GoalRepo, repos.MovementRepo, container.Currency)
	container.FX = NewFXService(store, logger, WithFXMetrics(fxMetrics))
	container.TokenService = NewTokenService(cfg, container.User)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.UserSvcFacade     = (*UserService)(nil)
	_ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)
	_ portssvc.MovementSvcFacade = (*MovementService)(nil)
	_ portssvc.GoalSvcFacade     = (*GoalService)(nil)
	_ portssvc.FXSvcFacade       = (*FXService)(nil)
)
