package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/oddscout/oddscout/internal/analyzer"
)

// RunRefresher re-fetches reference odds for every active event on the
// configured interval until ctx is cancelled. Events keep displaying live
// no-vig prices even when no new alert arrives.
func (s *Server) RunRefresher(ctx context.Context) {
	interval := s.cfg.RefreshInterval
	if interval <= 0 {
		interval = 3 * time.Second
	}
	slog.Info("Refresher started", "interval", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Refresher stopped")
			return
		case <-ticker.C:
			s.refreshActive(ctx)
		}
	}
}

func (s *Server) refreshActive(ctx context.Context) {
	for _, eventID := range s.store.ActiveIDs() {
		snap, err := s.fetcher.FetchEvent(ctx, eventID)
		if err != nil {
			slog.Warn("Refresh fetch failed", "event_id", eventID, "error", err)
			continue
		}
		analyzer.AnnotateSnapshot(snap)
		s.store.UpdateSnapshot(eventID, snap)
	}
}
