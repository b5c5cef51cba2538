package services

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/finanzapp/finanzas-backend/internal/core/fx"
	"github.com/finanzapp/finanzas-backend/internal/metrics"
	"github.com/finanzapp/finanzas-backend/internal/platform/cache"
)

const (
	quoteCacheKey = "finanzas:usdt_quote"
	ratesCacheKey = "finanzas:exchange_rates"
)

// FXService serves the USDT/ARS quote and the exchange rate snapshot,
// caching both in the shared key-value store so concurrent instances
// observe the same values within a TTL window.
//
// None of its methods return errors: a cache miss, a stale entry, a
// corrupt payload or an unreachable store all degrade to regenerating a
// fresh value, which is always possible.
type FXService struct {
	store   cache.Cache
	gen     *fx.Generator
	now     func() time.Time
	metrics *metrics.FXMetrics
	logger  *slog.Logger
}

// FXServiceOption configures optional dependencies of the FXService.
type FXServiceOption func(*FXService)

// WithFXGenerator overrides the value generator (used in tests for
// deterministic quotes).
func WithFXGenerator(gen *fx.Generator) FXServiceOption {
	return func(s *FXService) { s.gen = gen }
}

// WithFXClock overrides the staleness clock.
func WithFXClock(now func() time.Time) FXServiceOption {
	return func(s *FXService) { s.now = now }
}

// WithFXMetrics attaches Prometheus counters. Without this option the
// service records nothing.
func WithFXMetrics(m *metrics.FXMetrics) FXServiceOption {
	return func(s *FXService) { s.metrics = m }
}

// NewFXService creates a new FXService backed by the given store.
func NewFXService(store cache.Cache, logger *slog.Logger, opts ...FXServiceOption) *FXService {
	s := &FXService{
		store:  store,
		gen:    fx.NewGenerator(nil, nil),
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// CurrentQuote returns the cached USDT/ARS quote when it is still fresh,
// otherwise generates a new one and writes it back to the store.
func (s *FXService) CurrentQuote(ctx context.Context) fx.Quote {
	var cached fx.Quote
	reason, ok := s.readCached(ctx, quoteCacheKey, "quote", &cached)
	if ok {
		if !fx.IsStale(cached.Timestamp, s.now()) {
			s.metricsCacheHit("quote")
			return cached
		}
		reason = "stale"
	}

	quote := s.gen.Quote()
	s.metricsRegeneration("quote", reason)
	s.writeBack(ctx, quoteCacheKey, "quote", quote)
	return quote
}

// CurrentRates returns the cached exchange rate snapshot when fresh,
// otherwise generates and caches a new one.
func (s *FXService) CurrentRates(ctx context.Context) fx.RatesSnapshot {
	var cached fx.RatesSnapshot
	reason, ok := s.readCached(ctx, ratesCacheKey, "rates", &cached)
	if ok {
		if !fx.IsStale(cached.Timestamp, s.now()) {
			s.metricsCacheHit("rates")
			return cached
		}
		reason = "stale"
	}

	snapshot := s.gen.RatesSnapshot()
	s.metricsRegeneration("rates", reason)
	s.writeBack(ctx, ratesCacheKey, "rates", snapshot)
	return snapshot
}

// Convert converts amount between two supported currencies using the
// current snapshot. ARS<->USDT conversions prefer the live quote price
// over the pivoted rate.
func (s *FXService) Convert(ctx context.Context, amount float64, from, to fx.Code) (float64, float64, fx.RatesSnapshot) {
	snapshot := s.CurrentRates(ctx)

	var converted, rate float64
	switch {
	case from == fx.ARS && to == fx.USDT:
		quote := s.CurrentQuote(ctx)
		converted = snapshot.Rates.ConvertToUSDT(amount, from, &quote)
		rate = 1 / quote.Price
	case from == fx.USDT && to == fx.ARS:
		quote := s.CurrentQuote(ctx)
		converted = snapshot.Rates.ConvertFromUSDT(amount, to, &quote)
		rate = quote.Price
	default:
		converted = snapshot.Rates.Convert(amount, from, to)
		rate = snapshot.Rates.ExchangeRate(from, to)
	}

	if s.metrics != nil {
		s.metrics.RecordConversion(string(from), string(to))
	}
	return converted, rate, snapshot
}

// readCached loads and decodes a cache entry. When ok is false the
// returned reason explains why a regeneration is needed.
func (s *FXService) readCached(ctx context.Context, key, kind string, dest any) (reason string, ok bool) {
	raw, err := s.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrKeyNotFound) {
			s.logger.WarnContext(ctx, "FX cache read failed", "kind", kind, "error", err)
		}
		return "missing", false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		s.logger.WarnContext(ctx, "FX cache entry is corrupt, regenerating", "kind", kind, "error", err)
		return "decode_error", false
	}
	return "", true
}

// writeBack persists a freshly generated value. Failures are logged and
// swallowed: the caller already holds a usable value.
func (s *FXService) writeBack(ctx context.Context, key, kind string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to encode FX cache entry", "kind", kind, "error", err)
		return
	}
	if err := s.store.Set(ctx, key, string(payload), 0); err != nil {
		s.logger.WarnContext(ctx, "FX cache write failed", "kind", kind, "error", err)
		if s.metrics != nil {
			s.metrics.RecordCacheWriteError(kind)
		}
	}
}

func (s *FXService) metricsCacheHit(kind string) {
	if s.metrics != nil {
		s.metrics.RecordCacheHit(kind)
	}
}

func (s *FXService) metricsRegeneration(kind, reason string) {
	if s.metrics != nil {
		s.metrics.RecordRegeneration(kind, reason)
	}
}
