package analyzer

import (
	"context"
	"log/slog"
	"sort"

	"github.com/oddscout/oddscout/internal/pkg/config"
	"github.com/oddscout/oddscout/internal/pkg/models"
	"github.com/oddscout/oddscout/internal/pkg/storage"
)

// Analyzer runs the comparison pipeline for one event at a time. The
// notifier and history sink are optional.
type Analyzer struct {
	cfg      *config.AnalyzerConfig
	notifier *TelegramNotifier
	history  storage.BetHistory
}

func New(cfg *config.AnalyzerConfig, notifier *TelegramNotifier, history storage.BetHistory) *Analyzer {
	return &Analyzer{
		cfg:      cfg,
		notifier: notifier,
		history:  history,
	}
}

// Analyze annotates the snapshot with no-vig prices, pairs the board
// against it and returns the matched bets ranked by EV descending.
// Bets at or above the configured threshold are pushed to Telegram; all
// surfaced bets go to history when a sink is configured.
func (a *Analyzer) Analyze(ctx context.Context, eventID string, game *models.BetbckGame, snap *models.PinnacleSnapshot) []models.MatchedBet {
	AnnotateSnapshot(snap)

	bets := PairMarkets(game, snap)
	sort.Slice(bets, func(i, j int) bool {
		return bets[i].EV > bets[j].EV
	})

	if len(bets) == 0 {
		return bets
	}

	matchName := snap.Home + " vs " + snap.Away
	slog.Info("Analyzed event",
		"event_id", eventID,
		"match", matchName,
		"bets", len(bets),
		"best_ev_percent", bets[0].EV*100)

	if a.history != nil {
		if err := a.history.SaveBets(ctx, eventID, matchName, bets); err != nil {
			slog.Error("Failed to save matched bets", "event_id", eventID, "error", err)
		}
	}

	if a.notifier != nil && a.cfg != nil {
		for _, bet := range bets {
			if bet.EV*100 >= a.cfg.MinValuePercent {
				a.notifier.NotifyBet(matchName, bet)
			}
		}
	}

	return bets
}
