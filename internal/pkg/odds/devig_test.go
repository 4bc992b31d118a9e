package odds

import (
	"math"
	"testing"
)

func TestDevigRemovesMargin(t *testing.T) {
	// Standard -110/-110 two-way: implied sum ~1.047.
	out := Devig([]float64{1.91, 1.91})

	if out[0] == 0 || out[1] == 0 {
		t.Fatalf("Devig returned empty outcome: %v", out)
	}
	if math.Abs(out[0]-out[1]) > 1e-9 {
		t.Errorf("symmetric input must devig to symmetric output, got %v", out)
	}
	if math.Abs(out[0]-2.0) > 1e-3 {
		t.Errorf("fair price for a symmetric two-way should be ~2.0, got %v", out[0])
	}
	probSum := 1/out[0] + 1/out[1]
	if math.Abs(probSum-1.0) > 1e-6 {
		t.Errorf("true probabilities must sum to 1, got %v", probSum)
	}
}

func TestDevigNoOpWhenFair(t *testing.T) {
	out := Devig([]float64{2.0, 2.0})
	if out[0] != 2.0 || out[1] != 2.0 {
		t.Errorf("already-fair market must pass through unchanged, got %v", out)
	}
}

func TestDevigThreeWay(t *testing.T) {
	out := Devig([]float64{2.10, 3.40, 3.90})

	probSum := 0.0
	for i, o := range out {
		if o <= 1.0 {
			t.Fatalf("outcome %d devigged to %v", i, o)
		}
		if o <= []float64{2.10, 3.40, 3.90}[i] {
			t.Errorf("no-vig price must exceed the quoted price, got %v at %d", o, i)
		}
		probSum += 1 / o
	}
	// Output is rounded to 3 decimals, so allow formatting slack.
	if math.Abs(probSum-1.0) > 1e-3 {
		t.Errorf("true probabilities must sum to ~1, got %v", probSum)
	}
}

func TestDevigSkipsInvalidPositions(t *testing.T) {
	out := Devig([]float64{1.60, 0, 2.45})
	if out[1] != 0 {
		t.Errorf("invalid input position must map to 0, got %v", out[1])
	}
	if out[0] == 0 || out[2] == 0 {
		t.Errorf("valid positions must still be devigged, got %v", out)
	}
}

func TestDevigDegenerateMarket(t *testing.T) {
	tests := [][]float64{
		{1.91},
		{1.91, 0},
		{0, 0},
		{1.91, math.NaN()},
		{1.91, math.Inf(1)},
		{},
	}
	for _, odds := range tests {
		out := Devig(odds)
		if len(out) != len(odds) {
			t.Fatalf("Devig(%v) returned %d values, want %d", odds, len(out), len(odds))
		}
		for i, o := range out {
			if o != 0 {
				t.Errorf("Devig(%v)[%d] = %v, want 0 for degenerate market", odds, i, o)
			}
		}
	}
}

func TestAdjustPowerFallsBackOnUnderflow(t *testing.T) {
	// Probabilities this small underflow the Newton derivative on the first
	// iteration and leave the powered sum below the usable floor, forcing
	// the proportional fallback.
	out := adjustPowerProbabilities([]float64{1e-300, 1e-300})
	for i, p := range out {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			t.Fatalf("fallback produced non-finite probability at %d: %v", i, out)
		}
	}
	if math.Abs(out[0]-0.5) > 1e-9 || math.Abs(out[1]-0.5) > 1e-9 {
		t.Errorf("equal inputs must normalize to [0.5 0.5], got %v", out)
	}
}

func TestProportional(t *testing.T) {
	out := proportional([]float64{0.6, 0.6})
	if math.Abs(out[0]-0.5) > 1e-9 || math.Abs(out[1]-0.5) > 1e-9 {
		t.Errorf("proportional([0.6 0.6]) = %v, want [0.5 0.5]", out)
	}

	out = proportional([]float64{0, 0})
	if out[0] != 0 || out[1] != 0 {
		t.Errorf("all-zero input must stay zero, got %v", out)
	}
}

func TestDevigNeverReturnsNonFinite(t *testing.T) {
	tests := [][]float64{
		{1.0002, 1.0002},         // near-minimum prices, huge k
		{1.0002, 1e9},            // extreme skew
		{1.91, 1.91, 1e12},       // longshot dominated by underflow
		{math.Inf(1), 1.91, 2.0}, // non-finite position filtered out
		{math.NaN(), 1.91, 2.0},
	}
	for _, odds := range tests {
		out := Devig(odds)
		for i, o := range out {
			if math.IsNaN(o) || math.IsInf(o, 0) {
				t.Errorf("Devig(%v)[%d] = %v, non-finite values must never escape", odds, i, o)
			}
		}
	}
}

func TestDevigUnevenVig(t *testing.T) {
	// Heavy favorite with vig; the power method should concentrate the
	// margin removal on the longshot.
	in := []float64{1.30, 3.20}
	out := Devig(in)

	probSum := 1/out[0] + 1/out[1]
	if math.Abs(probSum-1.0) > 1e-3 {
		t.Fatalf("true probabilities must sum to ~1, got %v", probSum)
	}
	favBoost := out[0]/in[0] - 1
	dogBoost := out[1]/in[1] - 1
	if dogBoost <= favBoost {
		t.Errorf("power method should boost the longshot more: fav %+.4f dog %+.4f", favBoost, dogBoost)
	}
}
