package odds

import "math"

const (
	devigTolerance  = 1e-6
	devigMaxIter    = 100
	minValidDecimal = 1.0001
	// Implied sums at or below this carry no detectable margin; adjusting
	// them only amplifies feed noise.
	fairSumCutoff = 1.0001 + 1e-5
)

// Devig strips the bookmaker margin from one market's decimal odds using
// the power method: find k with sum(p_i^k) = 1 and renormalize. Input and
// output correspond positionally; invalid inputs (0, <=1.0001, non-finite)
// yield 0 in the same position. Call it once per market, never across
// markets.
//
// Proportional normalization is biased toward favorites under uneven vig,
// so it is used only as the fallback when the power iteration fails
// numerically.
func Devig(decimalOdds []float64) []float64 {
	out := make([]float64, len(decimalOdds))

	validIdx := make([]int, 0, len(decimalOdds))
	for i, odd := range decimalOdds {
		if odd > minValidDecimal && !math.IsInf(odd, 0) && !math.IsNaN(odd) {
			validIdx = append(validIdx, i)
		}
	}
	if len(validIdx) < 2 {
		return out
	}

	implied := make([]float64, len(validIdx))
	sum := 0.0
	for i, idx := range validIdx {
		implied[i] = 1 / decimalOdds[idx]
		sum += implied[i]
	}

	if sum <= fairSumCutoff {
		// Already fair; pass the quoted prices through.
		for _, idx := range validIdx {
			out[idx] = round3(decimalOdds[idx])
		}
		return out
	}

	trueProbs := adjustPowerProbabilities(implied)
	for i, idx := range validIdx {
		if trueProbs[i] > 1e-9 {
			out[idx] = round3(1 / trueProbs[i])
		}
	}
	return out
}

// adjustPowerProbabilities finds k such that sum(p_i^k) = 1 by
// Newton-Raphson and returns the renormalized powered probabilities.
// Inputs must be positive. Falls back to proportional normalization on
// numerical failure.
func adjustPowerProbabilities(probs []float64) []float64 {
	k := 1.0
	powered := make([]float64, len(probs))

	for iter := 0; iter < devigMaxIter; iter++ {
		sumPowered := 0.0
		for i, p := range probs {
			powered[i] = math.Pow(p, k)
			sumPowered += powered[i]
		}
		if !isFinite(sumPowered) || sumPowered == 0 {
			return proportional(probs)
		}

		overround := sumPowered - 1
		if math.Abs(overround) < devigTolerance {
			break
		}

		// f'(k) = sum(p^k * ln p); ln p < 0 for probabilities, so the
		// derivative underflowing toward zero means we cannot step further.
		derivative := 0.0
		for i, p := range probs {
			derivative += powered[i] * math.Log(p)
		}
		if math.Abs(derivative) < 1e-9 {
			break
		}
		k -= overround / derivative
		if !isFinite(k) {
			return proportional(probs)
		}
	}

	sumFinal := 0.0
	for i, p := range probs {
		powered[i] = math.Pow(p, k)
		sumFinal += powered[i]
	}
	if !isFinite(sumFinal) || sumFinal <= 1e-9 {
		return proportional(probs)
	}
	for i := range powered {
		powered[i] /= sumFinal
	}
	return powered
}

func proportional(probs []float64) []float64 {
	sum := 0.0
	for _, p := range probs {
		sum += p
	}
	out := make([]float64, len(probs))
	if sum == 0 {
		return out
	}
	for i, p := range probs {
		out[i] = p / sum
	}
	return out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
