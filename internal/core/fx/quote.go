package fx

import (
	"math"
	"math/rand"
	"time"
)

// QuoteSource records where a quote or rate snapshot came from.
type QuoteSource string

const (
	SourceSimulated QuoteSource = "simulated"
	SourceExternal  QuoteSource = "external"
)

// QuoteTTL is how long a cached quote or rate snapshot stays fresh.
const QuoteTTL = time.Hour

const (
	quoteBasePrice = 1200.0 // ARS per USDT around which simulated quotes move
	quoteMaxDelta  = 20.0
	rateJitterPct  = 0.01
)

// Quote is the ARS-per-USDT price at a point in time.
type Quote struct {
	Price     float64     `json:"price"`
	Timestamp time.Time   `json:"timestamp"`
	Source    QuoteSource `json:"source"`
}

// RatesSnapshot is a timestamped copy of the full rate table.
type RatesSnapshot struct {
	Base      Code        `json:"base"` // Always USD
	Rates     Rates       `json:"rates"`
	Timestamp time.Time   `json:"timestamp"`
	Source    QuoteSource `json:"source"`
}

// IsStale reports whether a value generated at ts has outlived the TTL.
func IsStale(ts time.Time, now time.Time) bool {
	return now.Sub(ts) >= QuoteTTL
}

// ShouldRefresh reports whether a cached value needs regeneration: true when
// there is no prior timestamp or the existing one is stale.
func ShouldRefresh(lastUpdate *time.Time, now time.Time) bool {
	if lastUpdate == nil {
		return true
	}
	return IsStale(*lastUpdate, now)
}

// Generator produces simulated quotes and rate snapshots. The random source
// and clock are injectable so generation is reproducible under test. This
// randomness stands in for a real market-data feed and is not
// cryptographically meaningful.
type Generator struct {
	rnd *rand.Rand
	now func() time.Time
}

// NewGenerator builds a Generator. A nil rnd falls back to a time-seeded
// source; a nil now falls back to time.Now.
func NewGenerator(rnd *rand.Rand, now func() time.Time) *Generator {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if now == nil {
		now = time.Now
	}
	return &Generator{rnd: rnd, now: now}
}

// Quote simulates a fresh USDT/ARS quote: base price plus a uniform delta of
// at most ±20, rounded to 2 decimals. The price always lies in [1180, 1220].
func (g *Generator) Quote() Quote {
	delta := (g.rnd.Float64()*2 - 1) * quoteMaxDelta
	price := math.Round((quoteBasePrice+delta)*100) / 100
	return Quote{
		Price:     price,
		Timestamp: g.now(),
		Source:    SourceSimulated,
	}
}

// RatesSnapshot simulates fluctuation by applying an independent ±1%
// multiplicative jitter to every non-USD base rate. USD stays exactly 1.
func (g *Generator) RatesSnapshot() RatesSnapshot {
	rates := BaseRates()
	for code, rate := range rates {
		if code == USD {
			continue
		}
		jitter := 1 + (g.rnd.Float64()*2-1)*rateJitterPct
		rates[code] = rate * jitter
	}
	return RatesSnapshot{
		Base:      USD,
		Rates:     rates,
		Timestamp: g.now(),
		Source:    SourceSimulated,
	}
}
