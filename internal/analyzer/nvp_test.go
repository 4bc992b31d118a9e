package analyzer

import (
	"math"
	"testing"

	"github.com/oddscout/oddscout/internal/pkg/models"
)

func TestAnnotateSnapshotMoneyline(t *testing.T) {
	snap := &models.PinnacleSnapshot{
		Home: "Red Sox",
		Away: "Yankees",
		Periods: map[string]*models.PinnaclePeriod{
			models.PeriodKeyFullGame: {
				MoneyLine: &models.MoneyLineMarket{Home: 1.60, Away: 2.45},
			},
		},
	}

	AnnotateSnapshot(snap)

	ml := snap.Period(models.FullGame).MoneyLine
	if ml.NVPHome == 0 || ml.NVPAway == 0 {
		t.Fatalf("NVP not computed: %+v", ml)
	}
	// Implied sum ~1.033; power devig lands near 1.64 / 2.57.
	if math.Abs(ml.NVPHome-1.639) > 0.01 {
		t.Errorf("NVPHome = %v, want ~1.639", ml.NVPHome)
	}
	if math.Abs(ml.NVPAway-2.565) > 0.02 {
		t.Errorf("NVPAway = %v, want ~2.565", ml.NVPAway)
	}
	probSum := 1/ml.NVPHome + 1/ml.NVPAway
	if math.Abs(probSum-1.0) > 1e-3 {
		t.Errorf("no-vig probabilities must sum to ~1, got %v", probSum)
	}

	if ml.AmericanHome != -167 {
		t.Errorf("AmericanHome = %d, want -167", ml.AmericanHome)
	}
	if ml.AmericanAway != 145 {
		t.Errorf("AmericanAway = %d, want +145", ml.AmericanAway)
	}
	if ml.NVPAmericanHome == 0 || ml.NVPAmericanAway == 0 {
		t.Errorf("American NVP prices not filled: %+v", ml)
	}
	if ml.NVPDraw != 0 || ml.NVPAmericanDraw != 0 {
		t.Errorf("absent draw must stay absent, got %+v", ml)
	}
}

func TestAnnotateSnapshotAllPeriodsAndMarkets(t *testing.T) {
	snap := &models.PinnacleSnapshot{
		Periods: map[string]*models.PinnaclePeriod{
			models.PeriodKeyFullGame: {
				Spreads: map[string]*models.SpreadMarket{
					"-1.5": {Hdp: -1.5, Home: 1.91, Away: 1.91},
				},
				Totals: map[string]*models.TotalMarket{
					"8.5": {Points: 8.5, Over: 1.87, Under: 1.95},
				},
			},
			models.PeriodKeyFirstHalf: {
				MoneyLine: &models.MoneyLineMarket{Home: 1.91, Away: 1.91},
			},
			// Unknown period keys pass through annotation too.
			"num_3": {
				MoneyLine: &models.MoneyLineMarket{Home: 1.91, Away: 1.91},
			},
		},
	}

	AnnotateSnapshot(snap)

	spread := snap.Period(models.FullGame).Spreads["-1.5"]
	if spread.NVPHome != 2.0 || spread.NVPAway != 2.0 {
		t.Errorf("symmetric spread must devig to 2.0/2.0, got %+v", spread)
	}
	total := snap.Period(models.FullGame).Totals["8.5"]
	if total.NVPOver == 0 || total.NVPUnder == 0 {
		t.Errorf("total not annotated: %+v", total)
	}
	if total.NVPOver >= total.NVPUnder {
		t.Errorf("shorter side must stay shorter after devig: %+v", total)
	}
	if snap.Period(models.FirstHalf).MoneyLine.NVPHome != 2.0 {
		t.Errorf("first half not annotated: %+v", snap.Period(models.FirstHalf).MoneyLine)
	}
	if snap.Periods["num_3"].MoneyLine.NVPHome != 2.0 {
		t.Errorf("extra period not annotated: %+v", snap.Periods["num_3"].MoneyLine)
	}
}

func TestAnnotateSnapshotDegenerate(t *testing.T) {
	snap := &models.PinnacleSnapshot{
		Periods: map[string]*models.PinnaclePeriod{
			models.PeriodKeyFullGame: {
				MoneyLine: &models.MoneyLineMarket{Home: 1.60}, // one-sided
			},
		},
	}
	AnnotateSnapshot(snap)

	ml := snap.Period(models.FullGame).MoneyLine
	if ml.NVPHome != 0 {
		t.Errorf("degenerate market must not produce an NVP, got %v", ml.NVPHome)
	}
	if ml.AmericanHome != -167 {
		t.Errorf("quoted American price must still be filled, got %d", ml.AmericanHome)
	}
}
