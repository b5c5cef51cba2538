package fx

import (
	"strconv"
	"strings"
)

// ParseNumber is the inverse of Format: it strips currency symbols and
// whitespace, then decides which punctuation mark is the decimal separator.
// A comma after the last period with at most two trailing digits is the
// decimal separator and periods are thousands separators. Otherwise a period
// with at most two trailing digits is the decimal separator; any other
// punctuation is a thousands separator. Input that is not numeric after
// cleanup yields 0, never an error.
func ParseNumber(input string) float64 {
	var b strings.Builder
	for _, r := range input {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	lastComma := strings.LastIndex(cleaned, ",")
	lastPeriod := strings.LastIndex(cleaned, ".")

	switch {
	case lastComma > lastPeriod && len(cleaned)-lastComma-1 <= 2:
		// Comma is the decimal separator; drop thousands periods and any
		// earlier commas.
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		lastComma = strings.LastIndex(cleaned, ",")
		cleaned = strings.ReplaceAll(cleaned[:lastComma], ",", "") + "." + cleaned[lastComma+1:]
	case lastPeriod >= 0 && len(cleaned)-lastPeriod-1 <= 2:
		// Period is the decimal separator; drop commas and earlier periods.
		cleaned = strings.ReplaceAll(cleaned, ",", "")
		lastPeriod = strings.LastIndex(cleaned, ".")
		cleaned = strings.ReplaceAll(cleaned[:lastPeriod], ".", "") + "." + cleaned[lastPeriod+1:]
	default:
		// Everything else is a thousands separator.
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return value
}
