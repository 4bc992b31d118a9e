// One-shot comparison for a single event: fetch reference odds, scrape the
// board and print the matched bets as JSON. Useful for checking an alert by
// hand without running the server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/oddscout/oddscout/internal/analyzer"
	"github.com/oddscout/oddscout/internal/fetcher/pinnacle"
	"github.com/oddscout/oddscout/internal/pkg/config"
	"github.com/oddscout/oddscout/internal/pkg/logging"
	"github.com/oddscout/oddscout/internal/scraper/betbck"
)

func main() {
	var (
		configPath string
		eventID    string
		homeTeam   string
		awayTeam   string
		searchTerm string
	)

	defaultConfig := os.Getenv("CONFIG_PATH")
	if defaultConfig == "" {
		defaultConfig = "configs/production.yaml"
	}
	flag.StringVar(&configPath, "config", defaultConfig, "Path to config file")
	flag.StringVar(&eventID, "event", "", "Reference event ID")
	flag.StringVar(&homeTeam, "home", "", "Home team as named in the alert")
	flag.StringVar(&awayTeam, "away", "", "Away team as named in the alert")
	flag.StringVar(&searchTerm, "search", "", "Override the derived BetBCK search keyword")
	flag.Parse()

	if eventID == "" || homeTeam == "" || awayTeam == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logging.Setup(&cfg.Logging, "analyze")

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	fetcher := pinnacle.NewClient(cfg.Pinnacle.BaseURL, cfg.Pinnacle.Origin, cfg.Pinnacle.Timeout)
	snap, err := fetcher.FetchEvent(ctx, eventID)
	if err != nil {
		log.Fatalf("Reference fetch failed: %v", err)
	}

	scraper := betbck.NewScraper(&cfg.Betbck)
	game, err := scraper.FetchGame(ctx, homeTeam, awayTeam, searchTerm)
	if err != nil {
		log.Fatalf("Board scrape failed: %v", err)
	}
	slog.Info("Board found",
		"local", game.Pair.BetbckLocal,
		"visitor", game.Pair.BetbckVisitor,
		"local_is_home", game.Pair.LocalIsHome)

	an := analyzer.New(&cfg.Analyzer, nil, nil)
	bets := an.Analyze(ctx, eventID, game, snap)

	out := json.NewEncoder(os.Stdout)
	out.SetIndent("", "  ")
	if err := out.Encode(bets); err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}
}
