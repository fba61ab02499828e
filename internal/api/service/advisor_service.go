package service

import (
	"context"
	"ctchen222/Tic-Tac-Toe-AI/internal/bot"
	"ctchen222/Tic-Tac-Toe-AI/internal/game"
	"ctchen222/Tic-Tac-Toe-AI/pkg/proto"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("api.service")

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrNotAITurn      = errors.New("it is not O's turn")
	ErrGameFinished   = errors.New("game is already finished")
)

//go:generate mockgen -source=advisor_service.go -destination=mocks/mock_advisor_service.go -package=mocks

// AdvisorService answers single-board questions. It keeps no game state.
type AdvisorService interface {
	SuggestMove(ctx context.Context, req *proto.MoveRequest) (*proto.MoveResponse, error)
	Evaluate(ctx context.Context, req *proto.EvaluateRequest) (*proto.EvaluateResponse, error)
}

type advisorService struct {
	newAI func(level int) *bot.AI
}

// NewAdvisorService creates an AdvisorService. newAI may be nil, in which
// case bot.NewAI is used.
func NewAdvisorService(newAI func(level int) *bot.AI) AdvisorService {
	if newAI == nil {
		newAI = func(level int) *bot.AI { return bot.NewAI(level) }
	}
	return &advisorService{newAI: newAI}
}

// SuggestMove returns the move the AI (O) would play on req.Board and the
// board after it.
func (s *advisorService) SuggestMove(ctx context.Context, req *proto.MoveRequest) (*proto.MoveResponse, error) {
	ctx, span := tracer.Start(ctx, "AdvisorService.SuggestMove", trace.WithAttributes(
		attribute.String("game.difficulty", req.Difficulty),
	))
	defer span.End()

	level, err := bot.ParseDifficulty(req.Difficulty)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Bad difficulty")
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	board, err := toBoard(req.Board)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Bad board")
		return nil, err
	}
	if x, o := board.Counts(); x != o+1 {
		return nil, fmt.Errorf("%w: X has %d marks and O has %d", ErrNotAITurn, x, o)
	}
	if board.IsTerminal() {
		return nil, fmt.Errorf("%w: %s", ErrGameFinished, board.Outcome())
	}

	ai := s.newAI(level)
	move, err := ai.SelectMove(ctx, board)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "AI could not select a move")
		return nil, err
	}
	if err := board.MarkCell(move.Row, move.Col, ai.Player); err != nil {
		return nil, fmt.Errorf("AI chose an illegal move %s: %w", move, err)
	}

	// Eval is reported for the position after the AI's move, with X to play.
	eval := ai.Minimax(board, true).Eval
	span.SetAttributes(attribute.String("move", move.String()), attribute.Int("eval", eval))
	slog.InfoContext(ctx, "Suggested move", "move", move.String(), "level", level, "eval", eval)

	return &proto.MoveResponse{
		Move:    proto.MovePair(move),
		Eval:    eval,
		Outcome: board.Outcome(),
		Board:   proto.FromGame(board),
	}, nil
}

// Evaluate runs a full minimax search on req.Board.
func (s *advisorService) Evaluate(ctx context.Context, req *proto.EvaluateRequest) (*proto.EvaluateResponse, error) {
	ctx, span := tracer.Start(ctx, "AdvisorService.Evaluate", trace.WithAttributes(
		attribute.Bool("search.maximizing", req.Maximizing),
	))
	defer span.End()

	board, err := toBoard(req.Board)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Bad board")
		return nil, err
	}
	if x, o := board.Counts(); x != o && x != o+1 {
		return nil, fmt.Errorf("%w: X has %d marks and O has %d", ErrInvalidRequest, x, o)
	}

	res := s.newAI(bot.LevelMinimax).Minimax(board, req.Maximizing)
	slog.DebugContext(ctx, "Evaluated board", "board", board.String(), "eval", res.Eval)

	resp := &proto.EvaluateResponse{
		Eval:    res.Eval,
		Outcome: board.Outcome(),
		Winner:  board.FinalState(),
	}
	if res.Found {
		pair := proto.MovePair(res.Move)
		resp.Move = &pair
	}
	return resp, nil
}

func toBoard(wire proto.Board) (game.Board, error) {
	board, err := wire.ToGame()
	if err != nil {
		return game.Board{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return board, nil
}
