// Package storage persists analysis snapshots between runs.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"liquidity-engine/internal/analyzer"
	"liquidity-engine/internal/database"
)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	symbol TEXT PRIMARY KEY,
	current_price REAL NOT NULL,
	final_score REAL NOT NULL,
	signal TEXT NOT NULL,
	weighted_avg REAL NOT NULL,
	value_coefficient REAL NOT NULL,
	margin REAL NOT NULL,
	components TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_snapshots_score ON snapshots(final_score DESC);
`

// SnapshotStore is the repository for cached analysis snapshots, one row
// per symbol.
type SnapshotStore struct {
	db  *sql.DB
	log zerolog.Logger
}

func NewSnapshotStore(db *database.DB, log zerolog.Logger) (*SnapshotStore, error) {
	if _, err := db.Conn().Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to apply snapshot schema: %w", err)
	}
	return &SnapshotStore{
		db:  db.Conn(),
		log: log.With().Str("component", "snapshots").Logger(),
	}, nil
}

// Upsert stores or replaces the snapshot for its symbol.
func (s *SnapshotStore) Upsert(res analyzer.Result) error {
	components, err := json.Marshal(res.Components)
	if err != nil {
		return fmt.Errorf("failed to encode components for %s: %w", res.Symbol, err)
	}

	_, err = s.db.Exec(`
		INSERT INTO snapshots (symbol, current_price, final_score, signal, weighted_avg, value_coefficient, margin, components, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(symbol) DO UPDATE SET
			current_price = excluded.current_price,
			final_score = excluded.final_score,
			signal = excluded.signal,
			weighted_avg = excluded.weighted_avg,
			value_coefficient = excluded.value_coefficient,
			margin = excluded.margin,
			components = excluded.components,
			updated_at = excluded.updated_at`,
		res.Symbol, res.CurrentPrice, res.FinalScore, res.Signal, res.WeightedAvg,
		res.ValueCoefficient, res.Margin, string(components), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert snapshot for %s: %w", res.Symbol, err)
	}
	return nil
}

// ReplaceAll atomically swaps the cache contents for a fresh analysis run.
func (s *SnapshotStore) ReplaceAll(results []analyzer.Result) error {
	return database.WithTransaction(s.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM snapshots`); err != nil {
			return err
		}
		now := time.Now().UTC().Format(time.RFC3339)
		for _, res := range results {
			components, err := json.Marshal(res.Components)
			if err != nil {
				return fmt.Errorf("failed to encode components for %s: %w", res.Symbol, err)
			}
			if _, err := tx.Exec(`
				INSERT INTO snapshots (symbol, current_price, final_score, signal, weighted_avg, value_coefficient, margin, components, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				res.Symbol, res.CurrentPrice, res.FinalScore, res.Signal, res.WeightedAvg,
				res.ValueCoefficient, res.Margin, string(components), now,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

// List returns all cached snapshots ordered by final score, best first.
func (s *SnapshotStore) List() ([]analyzer.Result, error) {
	rows, err := s.db.Query(`
		SELECT symbol, current_price, final_score, signal, weighted_avg, value_coefficient, margin, components
		FROM snapshots ORDER BY final_score DESC, symbol ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	var out []analyzer.Result
	for rows.Next() {
		var res analyzer.Result
		var components string
		if err := rows.Scan(&res.Symbol, &res.CurrentPrice, &res.FinalScore, &res.Signal,
			&res.WeightedAvg, &res.ValueCoefficient, &res.Margin, &components); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		if err := json.Unmarshal([]byte(components), &res.Components); err != nil {
			s.log.Warn().Err(err).Str("symbol", res.Symbol).Msg("Dropping snapshot with bad components")
			continue
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// Count returns the number of cached snapshots.
func (s *SnapshotStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM snapshots`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count snapshots: %w", err)
	}
	return n, nil
}
