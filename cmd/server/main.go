package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oddscout/oddscout/internal/analyzer"
	"github.com/oddscout/oddscout/internal/fetcher/pinnacle"
	"github.com/oddscout/oddscout/internal/pkg/config"
	"github.com/oddscout/oddscout/internal/pkg/logging"
	"github.com/oddscout/oddscout/internal/pkg/storage"
	"github.com/oddscout/oddscout/internal/pkg/store"
	"github.com/oddscout/oddscout/internal/scraper/betbck"
	"github.com/oddscout/oddscout/internal/server"
)

const defaultConfigPath = "configs/production.yaml"

func main() {
	var configPath string

	defaultConfig := os.Getenv("CONFIG_PATH")
	if defaultConfig == "" {
		defaultConfig = defaultConfigPath
	}
	flag.StringVar(&configPath, "config", defaultConfig, "Path to config file (can be set via CONFIG_PATH env var)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logging.Setup(&cfg.Logging, "server")
	slog.Info("Config loaded", "path", configPath)

	var history storage.BetHistory
	if cfg.Postgres.DSN != "" {
		pg, err := storage.NewPostgresBetHistory(&cfg.Postgres)
		if err != nil {
			log.Fatalf("Failed to initialize bet history: %v", err)
		}
		history = pg
		defer func() {
			if err := pg.Close(); err != nil {
				slog.Error("Error closing bet history", "error", err)
			}
		}()
	}

	var notifier *analyzer.TelegramNotifier
	if cfg.Analyzer.TelegramBotToken != "" && cfg.Analyzer.TelegramChatID != 0 {
		notifier = analyzer.NewTelegramNotifier(cfg.Analyzer.TelegramBotToken, cfg.Analyzer.TelegramChatID)
		if notifier != nil {
			defer notifier.Close()
			slog.Info("Telegram notifier enabled", "chat_id", cfg.Analyzer.TelegramChatID)
		}
	}

	fetcher := pinnacle.NewClient(cfg.Pinnacle.BaseURL, cfg.Pinnacle.Origin, cfg.Pinnacle.Timeout)
	scraper := betbck.NewScraper(&cfg.Betbck)
	an := analyzer.New(&cfg.Analyzer, notifier, history)
	eventStore := store.New(cfg.Server.EventTTL)
	srv := server.New(&cfg.Server, eventStore, fetcher, scraper, an)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, stopping server...")
		cancel()
	}()

	go srv.RunRefresher(ctx)

	mux := http.NewServeMux()
	srv.RegisterHTTP(mux)

	httpSrv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           mux,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	slog.Info("HTTP server listening", "addr", cfg.Server.Addr)
	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("HTTP server error", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}
