// Package analyzer turns a reference snapshot and a scraped secondary-book
// board into a ranked list of comparable quotes with expected value.
package analyzer

import (
	"github.com/oddscout/oddscout/internal/pkg/models"
	"github.com/oddscout/oddscout/internal/pkg/odds"
)

// AnnotateSnapshot computes no-vig prices for every market in the snapshot
// and fills in the American representations, in place. Each market is
// devigged independently; periods the matcher ignores are still annotated
// so callers can display them.
func AnnotateSnapshot(s *models.PinnacleSnapshot) {
	if s == nil {
		return
	}
	for _, period := range s.Periods {
		if period == nil {
			continue
		}
		if ml := period.MoneyLine; ml != nil {
			nvp := odds.Devig([]float64{ml.Home, ml.Draw, ml.Away})
			ml.NVPHome, ml.NVPDraw, ml.NVPAway = nvp[0], nvp[1], nvp[2]
			ml.AmericanHome = americanOrZero(ml.Home)
			ml.AmericanDraw = americanOrZero(ml.Draw)
			ml.AmericanAway = americanOrZero(ml.Away)
			ml.NVPAmericanHome = americanOrZero(ml.NVPHome)
			ml.NVPAmericanDraw = americanOrZero(ml.NVPDraw)
			ml.NVPAmericanAway = americanOrZero(ml.NVPAway)
		}
		for _, spread := range period.Spreads {
			if spread == nil {
				continue
			}
			nvp := odds.Devig([]float64{spread.Home, spread.Away})
			spread.NVPHome, spread.NVPAway = nvp[0], nvp[1]
			spread.AmericanHome = americanOrZero(spread.Home)
			spread.AmericanAway = americanOrZero(spread.Away)
			spread.NVPAmericanHome = americanOrZero(spread.NVPHome)
			spread.NVPAmericanAway = americanOrZero(spread.NVPAway)
		}
		for _, total := range period.Totals {
			if total == nil {
				continue
			}
			nvp := odds.Devig([]float64{total.Over, total.Under})
			total.NVPOver, total.NVPUnder = nvp[0], nvp[1]
			total.AmericanOver = americanOrZero(total.Over)
			total.AmericanUnder = americanOrZero(total.Under)
			total.NVPAmericanOver = americanOrZero(total.NVPOver)
			total.NVPAmericanUnder = americanOrZero(total.NVPUnder)
		}
	}
}

func americanOrZero(decimal float64) int {
	american, ok := odds.DecimalToAmerican(decimal)
	if !ok {
		return 0
	}
	return american
}
