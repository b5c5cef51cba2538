package fx

import (
	"math"

	"github.com/Rhymond/go-money"
)

// Options controls how Format renders an amount.
type Options struct {
	ShowDecimals *bool  // default true; false renders whole units only
	ShowSymbol   *bool  // default true
	Locale       string // default derived from the currency
}

// localeByCode maps each currency to the locale that drives its grouping and
// decimal punctuation. Unmapped codes fall back to the generic en-US style.
var localeByCode = map[Code]string{
	USD:  "en-US",
	USDT: "en-US",
	ARS:  "es-AR",
	EUR:  "de-DE",
	GBP:  "en-GB",
	BRL:  "pt-BR",
	CLP:  "es-CL",
	COP:  "es-CO",
	MXN:  "es-MX",
	PEN:  "es-PE",
	UYU:  "es-UY",
}

type localeSeparators struct {
	decimal  string
	thousand string
}

var separatorsByLocale = map[string]localeSeparators{
	"en-US": {decimal: ".", thousand: ","},
	"en-GB": {decimal: ".", thousand: ","},
	"de-DE": {decimal: ",", thousand: "."},
	"pt-BR": {decimal: ",", thousand: "."},
	"es-AR": {decimal: ",", thousand: "."},
	"es-CL": {decimal: ",", thousand: "."},
	"es-CO": {decimal: ",", thousand: "."},
	"es-MX": {decimal: ".", thousand: ","},
	"es-PE": {decimal: ".", thousand: ","},
	"es-UY": {decimal: ",", thousand: "."},
}

// LocaleFor returns the display locale for a currency code.
func LocaleFor(code Code) string {
	if locale, ok := localeByCode[code]; ok {
		return locale
	}
	return "en-US"
}

// Format renders an amount as a locale-aware decimal string with the
// currency's display symbol. Rendering is delegated to a go-money formatter
// built from the per-locale separators.
func Format(amount float64, code Code, opts Options) string {
	showDecimals := opts.ShowDecimals == nil || *opts.ShowDecimals
	showSymbol := opts.ShowSymbol == nil || *opts.ShowSymbol

	locale := opts.Locale
	if locale == "" {
		locale = LocaleFor(code)
	}
	seps, ok := separatorsByLocale[locale]
	if !ok {
		seps = separatorsByLocale["en-US"]
	}

	fraction := 0
	minor := int64(math.Round(amount))
	if showDecimals {
		fraction = 2
		minor = int64(math.Round(amount * 100))
	}

	template := "1"
	if showSymbol {
		template = "$ 1"
	}

	formatter := money.NewFormatter(fraction, seps.decimal, seps.thousand, Entry(code).Symbol, template)
	return formatter.Format(minor)
}

// FormatBalance renders an amount the way account balances are shown: with
// symbol, without decimals.
func FormatBalance(amount float64, code Code) string {
	showDecimals := false
	return Format(amount, code, Options{ShowDecimals: &showDecimals})
}

// FormatMovementAmount renders an amount the way movement rows are shown:
// with symbol and two decimals.
func FormatMovementAmount(amount float64, code Code) string {
	return Format(amount, code, Options{})
}
