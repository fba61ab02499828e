package repository

import (
	"context"
	"ctchen222/Tic-Tac-Toe-AI/internal/events"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("repository.results")

// DefaultRecentLimit is used when Recent is asked for a non-positive limit.
const DefaultRecentLimit = 20

// Result is one finished game as stored in the ledger.
type Result struct {
	ID         int64     `db:"id" json:"-"`
	GameID     string    `db:"game_id" json:"game_id"`
	Mode       string    `db:"mode" json:"mode"`
	Level      int       `db:"level" json:"level"`
	Outcome    string    `db:"outcome" json:"outcome"`
	Winner     string    `db:"winner" json:"winner"`
	Moves      int       `db:"moves" json:"moves"`
	Board      string    `db:"board" json:"board"`
	FinishedAt time.Time `db:"finished_at" json:"finished_at"`
}

// ResultsRepository defines the interface for finished-game records.
type ResultsRepository interface {
	Record(ctx context.Context, result Result) error
	Recent(ctx context.Context, limit int) ([]Result, error)
}

type sqliteResultsRepository struct {
	db *sqlx.DB
}

// NewResultsRepository creates a new SQLite-based ResultsRepository.
func NewResultsRepository(db *sqlx.DB) ResultsRepository {
	return &sqliteResultsRepository{db: db}
}

// Record inserts a finished game.
func (r *sqliteResultsRepository) Record(ctx context.Context, result Result) error {
	ctx, span := tracer.Start(ctx, "ResultsRepository.Record", trace.WithAttributes(
		attribute.String("game.id", result.GameID),
		attribute.String("game.outcome", result.Outcome),
	))
	defer span.End()

	if result.FinishedAt.IsZero() {
		result.FinishedAt = time.Now().UTC()
	}

	query := `INSERT INTO results (game_id, mode, level, outcome, winner, moves, board, finished_at)
		VALUES (:game_id, :mode, :level, :outcome, :winner, :moves, :board, :finished_at)`
	if _, err := r.db.NamedExecContext(ctx, query, result); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		return fmt.Errorf("failed to record result: %w", err)
	}
	return nil
}

// Recent returns up to limit results, newest first.
func (r *sqliteResultsRepository) Recent(ctx context.Context, limit int) ([]Result, error) {
	ctx, span := tracer.Start(ctx, "ResultsRepository.Recent")
	defer span.End()

	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	span.SetAttributes(attribute.Int("query.limit", limit))

	results := []Result{}
	query := `SELECT id, game_id, mode, level, outcome, winner, moves, board, finished_at
		FROM results ORDER BY finished_at DESC, id DESC LIMIT ?`
	if err := r.db.SelectContext(ctx, &results, query, limit); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	return results, nil
}

// Listener records every game_over event into repo and ignores the rest.
func Listener(repo ResultsRepository) events.Listener {
	return events.ListenerFunc(func(ctx context.Context, event events.Event) error {
		if event.Type != events.TypeGameOver {
			return nil
		}

		var payload events.GameOverPayload
		if err := event.Decode(&payload); err != nil {
			return fmt.Errorf("failed to decode game_over payload: %w", err)
		}

		err := repo.Record(ctx, Result{
			GameID:     event.RoomID,
			Mode:       payload.Mode,
			Level:      payload.Level,
			Outcome:    payload.Outcome,
			Winner:     payload.Winner,
			Moves:      payload.Moves,
			Board:      payload.Board,
			FinishedAt: event.At,
		})
		if err != nil {
			slog.ErrorContext(ctx, "Failed to record game result", "game_id", event.RoomID, "error", err)
			return err
		}
		slog.DebugContext(ctx, "Recorded game result", "game_id", event.RoomID, "outcome", payload.Outcome)
		return nil
	})
}
