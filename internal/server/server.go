// Package server exposes the alert intake and live events endpoints and
// drives the comparison pipeline for each alerted event.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/oddscout/oddscout/internal/analyzer"
	"github.com/oddscout/oddscout/internal/pkg/config"
	"github.com/oddscout/oddscout/internal/pkg/models"
	"github.com/oddscout/oddscout/internal/pkg/store"
	"github.com/oddscout/oddscout/internal/pkg/teams"
	"github.com/oddscout/oddscout/internal/scraper/betbck"
)

// OddsFetcher supplies live reference odds for an event.
type OddsFetcher interface {
	FetchEvent(ctx context.Context, eventID string) (*models.PinnacleSnapshot, error)
}

// BoardScraper finds the secondary book's board for a pairing.
type BoardScraper interface {
	FetchGame(ctx context.Context, homeTeam, awayTeam, searchTerm string) (*models.BetbckGame, error)
}

// BetAnalyzer pairs a board against a snapshot and prices the edges.
type BetAnalyzer interface {
	Analyze(ctx context.Context, eventID string, game *models.BetbckGame, snap *models.PinnacleSnapshot) []models.MatchedBet
}

const scrapeTimeout = 60 * time.Second

type Server struct {
	cfg      *config.ServerConfig
	store    *store.EventStore
	fetcher  OddsFetcher
	scraper  BoardScraper
	analyzer BetAnalyzer
}

func New(cfg *config.ServerConfig, st *store.EventStore, fetcher OddsFetcher, scraper BoardScraper, betAnalyzer BetAnalyzer) *Server {
	return &Server{
		cfg:      cfg,
		store:    st,
		fetcher:  fetcher,
		scraper:  scraper,
		analyzer: betAnalyzer,
	}
}

// RegisterHTTP registers the server's endpoints onto mux.
func (s *Server) RegisterHTTP(mux *http.ServeMux) {
	mux.HandleFunc("/pod_alert", s.handleAlert)
	mux.HandleFunc("/get_active_events_data", s.handleActiveEvents)
	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("pong\n"))
	})
}

type alertResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func (s *Server) handleAlert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var alert models.AlertDetails
	if err := json.NewDecoder(r.Body).Decode(&alert); err != nil {
		writeJSON(w, http.StatusBadRequest, alertResponse{Status: "error", Message: "invalid JSON payload"})
		return
	}
	if alert.EventID == "" {
		writeJSON(w, http.StatusBadRequest, alertResponse{Status: "error", Message: "missing eventId"})
		return
	}

	// Outright/futures alerts have no opposing side to compare.
	if teams.IsFuturesEntry(alert.HomeTeam) || teams.IsFuturesEntry(alert.AwayTeam) {
		slog.Info("Ignoring futures alert", "event_id", alert.EventID, "home", alert.HomeTeam)
		writeJSON(w, http.StatusOK, alertResponse{Status: "ignored", Message: "futures entry"})
		return
	}

	slog.Info("Alert received", "event_id", alert.EventID, "home", alert.HomeTeam, "away", alert.AwayTeam)

	snap, err := s.fetcher.FetchEvent(r.Context(), alert.EventID)
	if err != nil {
		slog.Error("Reference fetch failed on alert", "event_id", alert.EventID, "error", err)
	} else {
		analyzer.AnnotateSnapshot(snap)
	}
	s.store.UpsertAlert(alert.EventID, alert, snap)

	if s.scraper != nil && s.store.TryBeginScrape(alert.EventID) {
		go s.runComparison(alert, snap)
	}

	writeJSON(w, http.StatusOK, alertResponse{Status: "success", Message: "alert for " + alert.EventID + " processed"})
}

// runComparison scrapes the secondary book and analyzes the board against
// the snapshot. A failed attempt is cleared so the next alert can retry.
func (s *Server) runComparison(alert models.AlertDetails, snap *models.PinnacleSnapshot) {
	ctx, cancel := context.WithTimeout(context.Background(), scrapeTimeout)
	defer cancel()

	game, err := s.scraper.FetchGame(ctx, alert.HomeTeam, alert.AwayTeam, "")
	if err != nil {
		status := models.ComparisonScrapeFailed
		if errors.Is(err, betbck.ErrGameNotFound) {
			status = models.ComparisonNoMatch
		}
		slog.Warn("Board scrape failed", "event_id", alert.EventID, "status", status, "error", err)
		s.store.SetComparison(alert.EventID, &models.ComparisonResult{Status: status, Message: err.Error()})
		s.store.ClearScrapeAttempt(alert.EventID)
		return
	}

	var bets []models.MatchedBet
	if s.analyzer != nil && snap != nil {
		// The stored snapshot may be serialized by the events endpoint at
		// any moment; analysis re-annotates, so it works on its own copy.
		bets = s.analyzer.Analyze(ctx, alert.EventID, game, snap.Clone())
	}
	s.store.SetComparison(alert.EventID, &models.ComparisonResult{
		Status: models.ComparisonSuccess,
		Game:   game,
		Bets:   bets,
	})
}

func (s *Server) handleActiveEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, s.store.Sweep())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
