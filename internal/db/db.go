package db

import (
	"context"
	"fmt"
	"log/slog"

	_ "github.com/glebarez/go-sqlite"
	"github.com/jmoiron/sqlx"
)

const resultsSchema = `
	CREATE TABLE IF NOT EXISTS results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		mode TEXT NOT NULL,
		level INTEGER NOT NULL,
		outcome TEXT NOT NULL,
		winner TEXT NOT NULL DEFAULT '',
		moves INTEGER NOT NULL,
		board TEXT NOT NULL,
		finished_at TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_results_finished_at ON results (finished_at);`

// Connect opens the SQLite results database at path and makes sure the
// schema exists. ":memory:" is accepted for throwaway databases.
func Connect(ctx context.Context, path string) (*sqlx.DB, error) {
	pool, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open results database: %w", err)
	}
	// SQLite serialises writers anyway, and an in-memory database only
	// lives as long as its single connection.
	pool.SetMaxOpenConns(1)

	if err := InitializeDB(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	slog.InfoContext(ctx, "Connected to results database", "path", path)
	return pool, nil
}

// InitializeDB creates the results table if it doesn't exist.
func InitializeDB(ctx context.Context, db *sqlx.DB) error {
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to reach results database: %w", err)
	}
	if _, err := db.ExecContext(ctx, resultsSchema); err != nil {
		return fmt.Errorf("failed to create results table: %w", err)
	}
	return nil
}
