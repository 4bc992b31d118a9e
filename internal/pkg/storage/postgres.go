package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"

	"github.com/oddscout/oddscout/internal/pkg/config"
	"github.com/oddscout/oddscout/internal/pkg/models"
)

// BetHistory persists surfaced matched bets.
type BetHistory interface {
	SaveBets(ctx context.Context, eventID, matchName string, bets []models.MatchedBet) error
	Close() error
}

// Ensure PostgresBetHistory implements BetHistory
var _ BetHistory = (*PostgresBetHistory)(nil)

// PostgresBetHistory stores MatchedBet records in PostgreSQL.
type PostgresBetHistory struct {
	db *sql.DB
}

// NewPostgresBetHistory opens the connection and initializes the schema.
func NewPostgresBetHistory(cfg *config.PostgresConfig) (*PostgresBetHistory, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("postgres DSN is required")
	}

	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	s := &PostgresBetHistory{db: db}
	if err := s.initSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	slog.Info("PostgreSQL bet history initialized")
	return s, nil
}

func (s *PostgresBetHistory) initSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS matched_bets (
		id SERIAL PRIMARY KEY,
		event_id VARCHAR(100) NOT NULL,
		match_name VARCHAR(500) NOT NULL,
		market VARCHAR(50) NOT NULL,
		period VARCHAR(50) NOT NULL,
		selection VARCHAR(200) NOT NULL,
		line DECIMAL(10, 2) NOT NULL DEFAULT 0,
		betbck_american INTEGER NOT NULL,
		nvp_american INTEGER NOT NULL,
		ev DECIMAL(10, 6) NOT NULL,
		found_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_matched_bets_event ON matched_bets (event_id);
	CREATE INDEX IF NOT EXISTS idx_matched_bets_found_at ON matched_bets (found_at);
	`
	_, err := s.db.ExecContext(ctx, query)
	return err
}

// SaveBets inserts one row per bet inside a transaction.
func (s *PostgresBetHistory) SaveBets(ctx context.Context, eventID, matchName string, bets []models.MatchedBet) error {
	if len(bets) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO matched_bets
			(event_id, match_name, market, period, selection, line, betbck_american, nvp_american, ev)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, bet := range bets {
		if _, err := stmt.ExecContext(ctx,
			eventID, matchName,
			bet.Market.String(), bet.Period.String(), bet.Selection, bet.Line,
			bet.BetbckAmerican, bet.NVPAmerican, bet.EV,
		); err != nil {
			return fmt.Errorf("failed to insert bet: %w", err)
		}
	}

	return tx.Commit()
}

func (s *PostgresBetHistory) Close() error {
	return s.db.Close()
}
