// Package odds holds the pure pricing math: odds-format conversion, no-vig
// de-biasing and expected value. No state, no I/O, safe to call from any
// goroutine.
package odds

import "math"

// AmericanToDecimal converts an American price to its decimal payout
// multiplier (stake included). Returns false for 0: a "pick" token has no
// defined payout ratio and must be special-cased by the caller before
// conversion.
func AmericanToDecimal(american int) (float64, bool) {
	if american == 0 {
		return 0, false
	}
	if american > 0 {
		return float64(american)/100 + 1, true
	}
	return 100/math.Abs(float64(american)) + 1, true
}

// DecimalToAmerican converts a decimal multiplier to the nearest American
// integer. Returns false when decimal <= 1.0001 (no representable edge) or
// the value is not finite.
func DecimalToAmerican(decimal float64) (int, bool) {
	if math.IsNaN(decimal) || math.IsInf(decimal, 0) || decimal <= 1.0001 {
		return 0, false
	}
	if decimal >= 2.0 {
		return int(math.Round((decimal - 1) * 100)), true
	}
	return int(math.Round(-100 / (decimal - 1))), true
}
