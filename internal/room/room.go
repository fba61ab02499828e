package room

import (
	"context"
	"ctchen222/Tic-Tac-Toe-AI/internal/events"
	"ctchen222/Tic-Tac-Toe-AI/internal/game"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// AIMark is the mark the AI plays in ModeAI.
const AIMark = game.PlayerO

var (
	ErrGameOver    = errors.New("game already finished")
	ErrNotYourTurn = errors.New("not player's turn")
)

var tracer = otel.Tracer("room")

//go:generate mockgen -source=room.go -destination=mocks/mock_move_selector.go -package=mocks

// MoveSelector defines an agent that can choose a move for AIMark.
type MoveSelector interface {
	SelectMove(ctx context.Context, board game.Board) (game.Move, error)
	SetLevel(level int)
}

// SelectorFactory builds a fresh selector, used on creation and on reset.
type SelectorFactory func(level int) MoveSelector

// Settings are the values a room starts with and returns to on Reset.
type Settings struct {
	Mode  Mode
	Level int
}

// Room owns one game: a board, the AI and whose turn it is.
// All methods are safe to call from several goroutines.
type Room struct {
	ID string

	mu       sync.Mutex
	board    game.Board
	ai       MoveSelector
	newAI    SelectorFactory
	current  game.PlayerMark
	mode     Mode
	level    int
	running  bool
	defaults Settings
	listener events.Listener
}

// NewRoom creates a room with an empty board and PlayerX to move.
// listener may be nil.
func NewRoom(settings Settings, newAI SelectorFactory, listener events.Listener) *Room {
	if _, ok := ParseMode(string(settings.Mode)); !ok {
		settings.Mode = ModeAI
	}
	r := &Room{
		newAI:    newAI,
		defaults: settings,
		listener: listener,
	}
	r.reset()
	return r
}

func (r *Room) reset() {
	r.ID = uuid.New().String()
	r.board = game.NewBoard()
	r.current = game.PlayerX
	r.mode = r.defaults.Mode
	r.level = r.defaults.Level
	r.ai = r.newAI(r.level)
	r.running = true
}

// Play applies a human move for the player whose turn it is.
func (r *Room) Play(ctx context.Context, row, col int) error {
	ctx, span := tracer.Start(ctx, "room.Play", trace.WithAttributes(
		attribute.Int("move.row", row),
		attribute.Int("move.col", col),
	))
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()
	span.SetAttributes(attribute.String("room.id", r.ID))

	if !r.running {
		span.SetStatus(codes.Error, "Move after game over")
		return ErrGameOver
	}
	if r.mode == ModeAI && r.current == AIMark {
		span.SetStatus(codes.Error, "Human move on AI turn")
		return ErrNotYourTurn
	}

	if err := r.applyMove(ctx, game.Move{Row: row, Col: col}, false); err != nil {
		slog.WarnContext(ctx, "invalid move from player", "room.id", r.ID, "row", row, "col", col, "error", err)
		span.SetAttributes(attribute.Bool("move.valid", false))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid move")
		return err
	}
	span.SetAttributes(attribute.Bool("move.valid", true))
	return nil
}

// AITurn lets the AI move when the room is in ModeAI, the game is running and
// it is AIMark's turn. It reports whether a move was made.
func (r *Room) AITurn(ctx context.Context) (game.Move, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.mode != ModeAI || !r.running || r.current != AIMark {
		return game.Move{}, false, nil
	}

	ctx, span := tracer.Start(ctx, "room.AITurn", trace.WithAttributes(
		attribute.String("room.id", r.ID),
		attribute.Int("bot.level", r.level),
	))
	defer span.End()

	slog.DebugContext(ctx, "AI is thinking...", "room.id", r.ID, "level", r.level)
	move, err := r.ai.SelectMove(ctx, r.board)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "AI could not select a move")
		return game.Move{}, false, fmt.Errorf("select move: %w", err)
	}
	if err := r.applyMove(ctx, move, true); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "AI selected an illegal move")
		return game.Move{}, false, fmt.Errorf("apply ai move %s: %w", move, err)
	}
	span.SetAttributes(attribute.Int("move.row", move.Row), attribute.Int("move.col", move.Col))
	return move, true, nil
}

// applyMove marks the board, passes the turn and checks for the end of the game.
// Callers hold r.mu.
func (r *Room) applyMove(ctx context.Context, move game.Move, byAI bool) error {
	mark := r.current
	if err := r.board.MarkCell(move.Row, move.Col, mark); err != nil {
		return err
	}
	r.current = mark.Opponent()
	r.publish(ctx, events.TypeMoveMade, events.MoveMadePayload{
		Mark: string(mark),
		Row:  move.Row,
		Col:  move.Col,
		ByAI: byAI,
	})

	if outcome := r.board.Outcome(); outcome != game.Ongoing {
		r.running = false
		slog.InfoContext(ctx, "Game over", "room.id", r.ID, "outcome", outcome, "board", r.board.String())
		r.publish(ctx, events.TypeGameOver, events.GameOverPayload{
			Mode:    string(r.mode),
			Level:   r.level,
			Outcome: string(outcome),
			Winner:  string(r.board.FinalState()),
			Moves:   r.board.MarkedCount(),
			Board:   r.board.String(),
		})
	}
	return nil
}

// ToggleMode switches between ModeAI and ModePvP and returns the new mode.
func (r *Room) ToggleMode(ctx context.Context) Mode {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.mode == ModeAI {
		r.mode = ModePvP
	} else {
		r.mode = ModeAI
	}
	slog.InfoContext(ctx, "Game mode changed", "room.id", r.ID, "mode", r.mode)
	r.publish(ctx, events.TypeModeChanged, events.ModeChangedPayload{Mode: string(r.mode)})
	return r.mode
}

// SetLevel changes the AI difficulty for the rest of the game.
func (r *Room) SetLevel(ctx context.Context, level int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.level = level
	r.ai.SetLevel(level)
	slog.InfoContext(ctx, "AI level changed", "room.id", r.ID, "level", level)
	r.publish(ctx, events.TypeLevelChanged, events.LevelChangedPayload{Level: level})
}

// Reset discards the board and the AI and starts over with the default settings.
func (r *Room) Reset(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	old := r.ID
	r.reset()
	slog.InfoContext(ctx, "Game reset", "room.id", r.ID, "previous.room.id", old)
	r.publish(ctx, events.TypeGameReset, events.GameResetPayload{PreviousRoomID: old})
}

// Snapshot returns a copy of the room state.
func (r *Room) Snapshot() State {
	r.mu.Lock()
	defer r.mu.Unlock()

	line, hasLine := r.board.WinningLine()
	return State{
		RoomID:  r.ID,
		Board:   r.board,
		Current: r.current,
		Mode:    r.mode,
		Level:   r.level,
		Running: r.running,
		Outcome: r.board.Outcome(),
		Winner:  r.board.FinalState(),
		Line:    line,
		HasLine: hasLine,
	}
}

func (r *Room) publish(ctx context.Context, eventType string, payload any) {
	if r.listener == nil {
		return
	}
	event, err := events.New(eventType, r.ID, payload)
	if err != nil {
		slog.ErrorContext(ctx, "error marshalling event", "event", eventType, "error", err)
		return
	}
	if err := r.listener.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish room event", "room.id", r.ID, "event", eventType, "error", err)
	}
}
