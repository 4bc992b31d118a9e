package analyzer

import (
	"math"

	"github.com/oddscout/oddscout/internal/pkg/models"
	"github.com/oddscout/oddscout/internal/pkg/odds"
)

// Tolerates feed formatting differences like "1.5" vs "1.50".
const lineTolerance = 0.01

// PairMarkets pairs the scraped full-game board against the annotated
// reference snapshot. The board arrives already oriented to the reference
// home/away sides, so pairing is by market type and line only. Markets
// without a counterpart yield nothing; that is normal, not an error.
func PairMarkets(game *models.BetbckGame, snap *models.PinnacleSnapshot) []models.MatchedBet {
	if game == nil || snap == nil {
		return nil
	}
	period := snap.Period(models.FullGame)
	if period == nil {
		return nil
	}

	homeName := game.Pair.ReferenceHome
	awayName := game.Pair.ReferenceAway

	var bets []models.MatchedBet

	if ml := period.MoneyLine; ml != nil {
		bets = appendBet(bets, models.Moneyline, homeName, 0, game.HomeMoneyline, ml.NVPAmericanHome)
		bets = appendBet(bets, models.Moneyline, awayName, 0, game.AwayMoneyline, ml.NVPAmericanAway)
		bets = appendBet(bets, models.Moneyline, "Draw", 0, game.DrawMoneyline, ml.NVPAmericanDraw)
	}

	// Every alternate line on the board is its own pairing candidate.
	for _, opt := range game.HomeSpreads {
		if spread := findSpread(period.Spreads, opt.Line); spread != nil {
			bets = appendBet(bets, models.Spread, homeName, opt.Line, opt.Odds, spread.NVPAmericanHome)
		}
	}
	for _, opt := range game.AwaySpreads {
		// Away lines are negations of the reference's home-side handicap.
		if spread := findSpread(period.Spreads, -opt.Line); spread != nil {
			bets = appendBet(bets, models.Spread, awayName, opt.Line, opt.Odds, spread.NVPAmericanAway)
		}
	}

	if game.TotalLine != 0 {
		if total := findTotal(period.Totals, game.TotalLine); total != nil {
			bets = appendBet(bets, models.Total, "Over", game.TotalLine, game.TotalOverOdds, total.NVPAmericanOver)
			bets = appendBet(bets, models.Total, "Under", game.TotalLine, game.TotalUnderOdds, total.NVPAmericanUnder)
		}
	}

	return bets
}

func appendBet(bets []models.MatchedBet, market models.MarketType, selection string, line float64, betbckAmerican, nvpAmerican int) []models.MatchedBet {
	if betbckAmerican == 0 || nvpAmerican == 0 {
		return bets
	}
	ev, ok := odds.ComputeEV(betbckAmerican, nvpAmerican)
	if !ok {
		return bets
	}
	return append(bets, models.MatchedBet{
		Market:         market,
		Period:         models.FullGame,
		Selection:      selection,
		Line:           line,
		BetbckAmerican: betbckAmerican,
		NVPAmerican:    nvpAmerican,
		EV:             ev,
	})
}

func findSpread(spreads map[string]*models.SpreadMarket, hdp float64) *models.SpreadMarket {
	for _, spread := range spreads {
		if spread != nil && math.Abs(spread.Hdp-hdp) <= lineTolerance {
			return spread
		}
	}
	return nil
}

func findTotal(totals map[string]*models.TotalMarket, points float64) *models.TotalMarket {
	for _, total := range totals {
		if total != nil && math.Abs(total.Points-points) <= lineTolerance {
			return total
		}
	}
	return nil
}
