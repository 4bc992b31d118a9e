package odds

// EV sanity band. Edges outside it are mispaired lines or bad data, not
// opportunities, and must never be surfaced.
const (
	MinPlausibleEV = -0.50
	MaxPlausibleEV = 0.20
)

// ComputeEV returns the expected value of taking betAmerican when
// trueAmerican is the fair price, as a raw ratio (0.017 = +1.7%). Returns
// false on unconvertible input, an undefined edge, or a value outside the
// sanity band.
func ComputeEV(betAmerican, trueAmerican int) (float64, bool) {
	betDecimal, ok := AmericanToDecimal(betAmerican)
	if !ok {
		return 0, false
	}
	trueDecimal, ok := AmericanToDecimal(trueAmerican)
	if !ok {
		return 0, false
	}
	return ComputeEVDecimal(betDecimal, trueDecimal)
}

// ComputeEVDecimal is ComputeEV over decimal odds.
func ComputeEVDecimal(betDecimal, trueDecimal float64) (float64, bool) {
	if betDecimal <= 1.0001 || trueDecimal <= 1.0001 {
		return 0, false
	}
	ev := betDecimal/trueDecimal - 1
	if ev < MinPlausibleEV || ev > MaxPlausibleEV {
		return 0, false
	}
	return ev, true
}
