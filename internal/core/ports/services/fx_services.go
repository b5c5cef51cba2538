package services

import (
	"context"

	"github.com/finanzapp/finanzas-backend/internal/core/fx"
)

// FXSvcFacade exposes the currency conversion and quote caching operations.
//
// These operations have no fatal error conditions: cache read, decode and
// write failures all degrade to a freshly generated in-memory value, so the
// methods return values directly rather than errors.
type FXSvcFacade interface {
	// CurrentQuote returns the cached USDT/ARS quote, regenerating and
	// re-caching it when missing or stale.
	CurrentQuote(ctx context.Context) fx.Quote

	// CurrentRates returns the cached exchange-rate snapshot, regenerating
	// and re-caching it when missing or stale.
	CurrentRates(ctx context.Context) fx.RatesSnapshot

	// Convert converts an amount between two currencies using the current
	// rates, routing ARS<->USDT through the live quote.
	Convert(ctx context.Context, amount float64, from, to fx.Code) (converted float64, rate float64, snapshot fx.RatesSnapshot)
}
