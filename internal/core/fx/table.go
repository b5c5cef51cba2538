// Package fx holds the static currency table and the pure conversion,
// formatting and quote-generation logic. Amounts are float64 throughout;
// ledger-grade arithmetic lives elsewhere on decimal types.
package fx

import "log/slog"

// Code identifies a supported currency. The set is closed; unknown codes
// degrade to a 1:1 rate rather than failing.
type Code string

const (
	USD  Code = "USD"
	USDT Code = "USDT" // Stablecoin proxy, pegged 1:1 to USD for pivot purposes
	ARS  Code = "ARS"
	EUR  Code = "EUR"
	GBP  Code = "GBP"
	BRL  Code = "BRL"
	CLP  Code = "CLP"
	COP  Code = "COP"
	MXN  Code = "MXN"
	PEN  Code = "PEN"
	UYU  Code = "UYU"
)

// RateEntry carries the display metadata for one currency.
type RateEntry struct {
	Code   Code   `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

var entries = map[Code]RateEntry{
	USD:  {Code: USD, Symbol: "US$", Name: "US Dollar"},
	USDT: {Code: USDT, Symbol: "USDT", Name: "Tether"},
	ARS:  {Code: ARS, Symbol: "$", Name: "Peso Argentino"},
	EUR:  {Code: EUR, Symbol: "€", Name: "Euro"},
	GBP:  {Code: GBP, Symbol: "£", Name: "British Pound"},
	BRL:  {Code: BRL, Symbol: "R$", Name: "Real Brasileiro"},
	CLP:  {Code: CLP, Symbol: "CLP$", Name: "Peso Chileno"},
	COP:  {Code: COP, Symbol: "COP$", Name: "Peso Colombiano"},
	MXN:  {Code: MXN, Symbol: "MX$", Name: "Peso Mexicano"},
	PEN:  {Code: PEN, Symbol: "S/", Name: "Sol Peruano"},
	UYU:  {Code: UYU, Symbol: "$U", Name: "Peso Uruguayo"},
}

// baseRates maps each currency to the value of one unit in USD.
// USD must stay exactly 1; simulated fluctuation never touches it.
var baseRates = Rates{
	USD:  1,
	USDT: 1,
	ARS:  1.0 / 1200.0,
	EUR:  1.09,
	GBP:  1.27,
	BRL:  0.18,
	CLP:  0.0011,
	COP:  0.00024,
	MXN:  0.055,
	PEN:  0.27,
	UYU:  0.025,
}

// Codes returns the closed set of supported currency codes in a stable order.
func Codes() []Code {
	return []Code{USD, USDT, ARS, EUR, GBP, BRL, CLP, COP, MXN, PEN, UYU}
}

// Entries returns the display metadata for every supported currency.
func Entries() []RateEntry {
	out := make([]RateEntry, 0, len(entries))
	for _, code := range Codes() {
		out = append(out, entries[code])
	}
	return out
}

// Entry returns the display metadata for a code. Lookups are total: an
// unknown code yields a bare entry using the code itself as symbol and name.
func Entry(code Code) RateEntry {
	if e, ok := entries[code]; ok {
		return e
	}
	slog.Warn("unknown currency code, using bare display entry", slog.String("code", string(code)))
	return RateEntry{Code: code, Symbol: string(code), Name: string(code)}
}

// Rates maps currency code to the USD value of one unit of that currency.
type Rates map[Code]float64

// BaseRates returns a copy of the static rate table.
func BaseRates() Rates {
	out := make(Rates, len(baseRates))
	for code, rate := range baseRates {
		out[code] = rate
	}
	return out
}

// Rate returns the USD rate for a code. An unknown code falls back to 1:1
// with a warning; conversion never fails on a missing rate.
func (r Rates) Rate(code Code) float64 {
	if rate, ok := r[code]; ok && rate > 0 {
		return rate
	}
	slog.Warn("no exchange rate for currency, falling back to 1:1", slog.String("code", string(code)))
	return 1
}
