package analyzer

import (
	"context"
	"testing"

	"github.com/oddscout/oddscout/internal/pkg/models"
	"github.com/oddscout/oddscout/internal/pkg/teams"
)

type captureHistory struct {
	eventID string
	bets    []models.MatchedBet
}

func (c *captureHistory) SaveBets(_ context.Context, eventID, _ string, bets []models.MatchedBet) error {
	c.eventID = eventID
	c.bets = bets
	return nil
}

func (c *captureHistory) Close() error { return nil }

// Full pipeline: an alerted event whose board names differ from the feed's,
// matched by normalization, devigged and priced for edge.
func TestAnalyzeEndToEnd(t *testing.T) {
	localHome, localAway := "Boston Red Sox", "NY Yankees"
	refHome, refAway := "Red Sox", "Yankees"

	match := teams.MatchEvent(localHome, localAway, refHome, refAway)
	if !match.Matched {
		t.Fatal("boards for the same game must match")
	}
	if !match.LocalIsHome {
		t.Fatal("sides are listed in the same order, orientation must not flip")
	}

	game := &models.BetbckGame{
		Pair: models.EventPair{
			BetbckLocal:   localHome,
			BetbckVisitor: localAway,
			ReferenceHome: refHome,
			ReferenceAway: refAway,
			LocalIsHome:   match.LocalIsHome,
		},
		HomeMoneyline: -150,
		AwayMoneyline: 130,
	}
	snap := &models.PinnacleSnapshot{
		EventID: "12345",
		Home:    refHome,
		Away:    refAway,
		Periods: map[string]*models.PinnaclePeriod{
			models.PeriodKeyFullGame: {
				MoneyLine: &models.MoneyLineMarket{Home: 1.60, Away: 2.45},
			},
		},
	}

	history := &captureHistory{}
	a := New(nil, nil, history)
	bets := a.Analyze(context.Background(), "12345", game, snap)

	if len(bets) != 2 {
		t.Fatalf("got %d bets, want 2", len(bets))
	}

	// Home -150 against a ~1.64 no-vig price is a small positive edge.
	home := bets[0]
	if home.Selection != refHome || home.Market != models.Moneyline {
		t.Fatalf("best bet = %+v, want home moneyline first after sorting", home)
	}
	if home.EV < 0.005 || home.EV > 0.03 {
		t.Errorf("home EV = %v, want ~+1.5%%", home.EV)
	}
	if home.NVPAmerican != -156 {
		t.Errorf("home NVP = %d, want -156", home.NVPAmerican)
	}

	// Away +130 against ~2.57 is well short of fair.
	away := bets[1]
	if away.Selection != refAway {
		t.Fatalf("second bet = %+v, want away moneyline", away)
	}
	if away.EV >= 0 {
		t.Errorf("away EV = %v, want negative", away.EV)
	}

	if history.eventID != "12345" || len(history.bets) != 2 {
		t.Errorf("history sink not fed: id=%q bets=%d", history.eventID, len(history.bets))
	}
}

func TestAnalyzeNothingPaired(t *testing.T) {
	history := &captureHistory{}
	a := New(nil, nil, history)

	game := &models.BetbckGame{HomeMoneyline: -110}
	snap := &models.PinnacleSnapshot{
		Periods: map[string]*models.PinnaclePeriod{},
	}

	if bets := a.Analyze(context.Background(), "99", game, snap); len(bets) != 0 {
		t.Fatalf("got %v, want none", bets)
	}
	if history.eventID != "" {
		t.Error("empty result must not be persisted")
	}
}
