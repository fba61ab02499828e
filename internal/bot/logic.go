package bot

import (
	"context"
	"ctchen222/Tic-Tac-Toe-AI/internal/game"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const (
	// LevelRandom picks uniformly among the empty cells.
	LevelRandom = 0
	// LevelMinimax runs the full game-tree search.
	LevelMinimax = 1

	// Sentinels that lose to any real evaluation.
	minSentinel = -100
	maxSentinel = 100
)

var (
	ErrNoMoves           = errors.New("no legal move available")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

var (
	tracer = otel.Tracer("bot")
	meter  = otel.Meter("bot")

	positionsEvaluated = newCounter("bot.positions_evaluated", "Board positions visited by the minimax search")
	movesChosen        = newCounter("bot.moves_chosen", "Moves selected by the AI, by level")
)

// newCounter reports instrument errors to the otel error handler and falls
// back to a no-op counter so callers never see a nil instrument.
func newCounter(name, description string) metric.Int64Counter {
	counter, err := meter.Int64Counter(name, metric.WithDescription(description))
	if err != nil {
		otel.Handle(fmt.Errorf("failed to create %s counter: %w", name, err))
		return noop.Int64Counter{}
	}
	return counter
}

// Result is the outcome of a minimax search. Eval is +1 when the position
// favours PlayerX, -1 when it favours the AI, 0 for a draw. Found is false on
// terminal positions, where no move is searched.
type Result struct {
	Eval  int
	Move  game.Move
	Found bool
}

// AI selects moves for PlayerO.
type AI struct {
	Level  int
	Player game.PlayerMark
	rng    *rand.Rand
}

// Option configures an AI.
type Option func(*AI)

// WithRand makes the random level draw from r instead of the global source.
func WithRand(r *rand.Rand) Option {
	return func(a *AI) {
		a.rng = r
	}
}

// NewAI creates an AI playing PlayerO at the given level.
func NewAI(level int, opts ...Option) *AI {
	a := &AI{Level: level, Player: game.PlayerO}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SetLevel changes the difficulty for subsequent moves.
func (a *AI) SetLevel(level int) {
	a.Level = level
}

// SelectMove dispatches on the level: 0 is random, anything above is minimax.
func (a *AI) SelectMove(ctx context.Context, board game.Board) (game.Move, error) {
	ctx, span := tracer.Start(ctx, "bot.SelectMove", trace.WithAttributes(
		attribute.Int("bot.level", a.Level),
		attribute.String("board", board.String()),
	))
	defer span.End()

	if board.IsTerminal() {
		span.SetStatus(codes.Error, "Move requested on a finished board")
		return game.Move{}, fmt.Errorf("%w: board %s is %s", ErrNoMoves, board.String(), board.Outcome())
	}

	if a.Level == LevelRandom {
		move, err := a.ChooseRandomMove(board)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "No random move available")
			return game.Move{}, err
		}
		movesChosen.Add(ctx, 1, metric.WithAttributes(attribute.String("bot.difficulty", DifficultyName(a.Level))))
		slog.DebugContext(ctx, "AI has chosen a random move", "move", move.String())
		return move, nil
	}

	var nodes int64
	res := a.search(board, false, &nodes)
	positionsEvaluated.Add(ctx, nodes)
	movesChosen.Add(ctx, 1, metric.WithAttributes(attribute.String("bot.difficulty", DifficultyName(a.Level))))
	span.SetAttributes(
		attribute.Int("bot.eval", res.Eval),
		attribute.Int64("bot.positions", nodes),
		attribute.Int("move.row", res.Move.Row),
		attribute.Int("move.col", res.Move.Col),
	)
	slog.DebugContext(ctx, "AI has chosen a move", "move", res.Move.String(), "eval", res.Eval, "positions", nodes)
	return res.Move, nil
}

// ChooseRandomMove samples one empty cell uniformly.
func (a *AI) ChooseRandomMove(board game.Board) (game.Move, error) {
	availableMoves := board.EmptyCells()
	if len(availableMoves) == 0 {
		return game.Move{}, ErrNoMoves
	}
	return availableMoves[a.intN(len(availableMoves))], nil
}

// ChooseMinimaxMove returns the best move for the AI, searching as the minimizer.
func (a *AI) ChooseMinimaxMove(board game.Board) (game.Move, error) {
	if board.IsTerminal() {
		return game.Move{}, fmt.Errorf("%w: board %s is %s", ErrNoMoves, board.String(), board.Outcome())
	}
	return a.Minimax(board, false).Move, nil
}

// Minimax evaluates board exhaustively. PlayerX moves at maximizing nodes and
// the AI's player at minimizing nodes. Candidates are tried in row-major
// order and only a strictly better evaluation replaces the current best, so
// the first of equally good moves wins.
func (a *AI) Minimax(board game.Board, maximizing bool) Result {
	var nodes int64
	return a.search(board, maximizing, &nodes)
}

func (a *AI) search(board game.Board, maximizing bool, nodes *int64) Result {
	*nodes++

	switch board.FinalState() {
	case game.PlayerX:
		return Result{Eval: 1}
	case game.PlayerO:
		return Result{Eval: -1}
	}
	if board.IsFull() {
		return Result{Eval: 0}
	}

	mark, best := a.Player, Result{Eval: maxSentinel}
	if maximizing {
		mark, best = game.PlayerX, Result{Eval: minSentinel}
	}

	for _, move := range board.EmptyCells() {
		child := board
		if err := child.MarkCell(move.Row, move.Col, mark); err != nil {
			// EmptyCells only yields legal cells.
			panic(err)
		}
		eval := a.search(child, !maximizing, nodes).Eval
		if (maximizing && eval > best.Eval) || (!maximizing && eval < best.Eval) {
			best = Result{Eval: eval, Move: move, Found: true}
		}
	}
	return best
}

func (a *AI) intN(n int) int {
	if a.rng != nil {
		return a.rng.IntN(n)
	}
	return rand.IntN(n)
}

// ParseDifficulty maps "easy"/"hard" (or a numeric level) to an AI level.
func ParseDifficulty(difficulty string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(difficulty)) {
	case "easy", "random":
		return LevelRandom, nil
	case "", "hard", "minimax":
		return LevelMinimax, nil
	}
	level, err := strconv.Atoi(difficulty)
	if err != nil || level < 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, difficulty)
	}
	return level, nil
}

// DifficultyName is the inverse of ParseDifficulty for the named levels.
func DifficultyName(level int) string {
	if level == LevelRandom {
		return "easy"
	}
	return "hard"
}
