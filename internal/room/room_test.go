package room

import (
	"context"
	"ctchen222/Tic-Tac-Toe-AI/internal/bot"
	"ctchen222/Tic-Tac-Toe-AI/internal/events"
	"ctchen222/Tic-Tac-Toe-AI/internal/game"
	"ctchen222/Tic-Tac-Toe-AI/internal/room/mocks"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recorder struct {
	events []events.Event
}

func (r *recorder) Publish(_ context.Context, event events.Event) error {
	r.events = append(r.events, event)
	return nil
}

func (r *recorder) types() []string {
	var out []string
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

func newMockRoom(t *testing.T, settings Settings) (*Room, *mocks.MockMoveSelector, *recorder) {
	t.Helper()
	ctrl := gomock.NewController(t)
	selector := mocks.NewMockMoveSelector(ctrl)
	rec := &recorder{}
	r := NewRoom(settings, func(int) MoveSelector { return selector }, rec)
	return r, selector, rec
}

func playAll(t *testing.T, r *Room, moves ...game.Move) {
	t.Helper()
	for _, m := range moves {
		require.NoError(t, r.Play(context.Background(), m.Row, m.Col), "move %v", m)
	}
}

func TestNewRoom(t *testing.T) {
	r, _, _ := newMockRoom(t, Settings{Mode: ModeAI, Level: bot.LevelMinimax})

	s := r.Snapshot()
	assert.NotEmpty(t, s.RoomID)
	assert.Equal(t, game.PlayerX, s.Current)
	assert.Equal(t, ModeAI, s.Mode)
	assert.Equal(t, bot.LevelMinimax, s.Level)
	assert.True(t, s.Running)
	assert.Equal(t, game.Ongoing, s.Outcome)
	assert.Equal(t, 0, s.Board.MarkedCount())
	assert.False(t, s.AITurn())
}

func TestNewRoom_UnknownModeFallsBackToAI(t *testing.T) {
	r, _, _ := newMockRoom(t, Settings{Mode: "solo"})
	assert.Equal(t, ModeAI, r.Snapshot().Mode)
}

func TestPlay_PvPAlternatesPlayers(t *testing.T) {
	r, _, rec := newMockRoom(t, Settings{Mode: ModePvP})

	playAll(t, r, game.Move{Row: 0, Col: 0}, game.Move{Row: 1, Col: 1})

	s := r.Snapshot()
	assert.Equal(t, game.PlayerX, s.Board.Cell(0, 0))
	assert.Equal(t, game.PlayerO, s.Board.Cell(1, 1))
	assert.Equal(t, game.PlayerX, s.Current)
	assert.Equal(t, []string{events.TypeMoveMade, events.TypeMoveMade}, rec.types())
}

func TestPlay_RejectsHumanMoveOnAITurn(t *testing.T) {
	r, _, _ := newMockRoom(t, Settings{Mode: ModeAI})
	playAll(t, r, game.Move{Row: 0, Col: 0})

	err := r.Play(context.Background(), 1, 1)

	assert.ErrorIs(t, err, ErrNotYourTurn)
	assert.True(t, r.Snapshot().Board.IsEmptyAt(1, 1))
}

func TestPlay_OccupiedCellKeepsTurn(t *testing.T) {
	r, _, _ := newMockRoom(t, Settings{Mode: ModePvP})
	playAll(t, r, game.Move{Row: 0, Col: 0})

	err := r.Play(context.Background(), 0, 0)

	assert.ErrorIs(t, err, game.ErrCellOccupied)
	s := r.Snapshot()
	assert.Equal(t, game.PlayerO, s.Current)
	assert.Equal(t, 1, s.Board.MarkedCount())
}

func TestPlay_WinEndsTheGame(t *testing.T) {
	r, _, rec := newMockRoom(t, Settings{Mode: ModePvP, Level: 1})

	playAll(t, r,
		game.Move{Row: 0, Col: 0}, game.Move{Row: 1, Col: 0},
		game.Move{Row: 0, Col: 1}, game.Move{Row: 1, Col: 1},
		game.Move{Row: 0, Col: 2},
	)

	s := r.Snapshot()
	assert.False(t, s.Running)
	assert.Equal(t, game.WonByX, s.Outcome)
	assert.Equal(t, game.PlayerX, s.Winner)
	require.True(t, s.HasLine)
	assert.Equal(t, game.Line{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}, s.Line)
	assert.ErrorIs(t, r.Play(context.Background(), 2, 2), ErrGameOver)

	last := rec.events[len(rec.events)-1]
	require.Equal(t, events.TypeGameOver, last.Type)
	var payload events.GameOverPayload
	require.NoError(t, last.Decode(&payload))
	assert.Equal(t, "X", payload.Winner)
	assert.Equal(t, string(game.WonByX), payload.Outcome)
	assert.Equal(t, 5, payload.Moves)
	assert.Equal(t, "pvp", payload.Mode)
}

func TestAITurn(t *testing.T) {
	t.Run("moves for the AI after the human", func(t *testing.T) {
		r, selector, rec := newMockRoom(t, Settings{Mode: ModeAI})
		playAll(t, r, game.Move{Row: 0, Col: 0})
		expected := r.Snapshot().Board

		selector.EXPECT().SelectMove(gomock.Any(), expected).Return(game.Move{Row: 1, Col: 1}, nil)

		move, moved, err := r.AITurn(context.Background())

		require.NoError(t, err)
		assert.True(t, moved)
		assert.Equal(t, game.Move{Row: 1, Col: 1}, move)
		s := r.Snapshot()
		assert.Equal(t, AIMark, s.Board.Cell(1, 1))
		assert.Equal(t, game.PlayerX, s.Current)

		var payload events.MoveMadePayload
		require.NoError(t, rec.events[len(rec.events)-1].Decode(&payload))
		assert.True(t, payload.ByAI)
	})

	t.Run("does nothing on the human's turn", func(t *testing.T) {
		r, _, _ := newMockRoom(t, Settings{Mode: ModeAI})

		_, moved, err := r.AITurn(context.Background())

		require.NoError(t, err)
		assert.False(t, moved)
	})

	t.Run("does nothing in pvp mode", func(t *testing.T) {
		r, _, _ := newMockRoom(t, Settings{Mode: ModePvP})
		playAll(t, r, game.Move{Row: 0, Col: 0})

		_, moved, err := r.AITurn(context.Background())

		require.NoError(t, err)
		assert.False(t, moved)
	})

	t.Run("rejects an illegal move from the selector", func(t *testing.T) {
		r, selector, _ := newMockRoom(t, Settings{Mode: ModeAI})
		playAll(t, r, game.Move{Row: 0, Col: 0})
		selector.EXPECT().SelectMove(gomock.Any(), gomock.Any()).Return(game.Move{Row: 0, Col: 0}, nil)

		_, moved, err := r.AITurn(context.Background())

		assert.ErrorIs(t, err, game.ErrCellOccupied)
		assert.False(t, moved)
		assert.Equal(t, AIMark, r.Snapshot().Current)
	})

	t.Run("propagates selector errors", func(t *testing.T) {
		r, selector, _ := newMockRoom(t, Settings{Mode: ModeAI})
		playAll(t, r, game.Move{Row: 0, Col: 0})
		boom := errors.New("boom")
		selector.EXPECT().SelectMove(gomock.Any(), gomock.Any()).Return(game.Move{}, boom)

		_, _, err := r.AITurn(context.Background())

		assert.ErrorIs(t, err, boom)
	})
}

func TestToggleMode(t *testing.T) {
	r, _, rec := newMockRoom(t, Settings{Mode: ModeAI})

	assert.Equal(t, ModePvP, r.ToggleMode(context.Background()))
	assert.Equal(t, ModeAI, r.ToggleMode(context.Background()))
	assert.Equal(t, []string{events.TypeModeChanged, events.TypeModeChanged}, rec.types())
}

func TestSetLevel(t *testing.T) {
	r, selector, rec := newMockRoom(t, Settings{Mode: ModeAI, Level: 1})
	selector.EXPECT().SetLevel(0)

	r.SetLevel(context.Background(), 0)

	assert.Equal(t, 0, r.Snapshot().Level)
	require.Len(t, rec.events, 1)
	var payload events.LevelChangedPayload
	require.NoError(t, rec.events[0].Decode(&payload))
	assert.Equal(t, 0, payload.Level)
}

func TestReset(t *testing.T) {
	built := 0
	ctrl := gomock.NewController(t)
	factory := func(level int) MoveSelector {
		built++
		assert.Equal(t, 1, level)
		m := mocks.NewMockMoveSelector(ctrl)
		m.EXPECT().SetLevel(gomock.Any()).AnyTimes()
		return m
	}
	r := NewRoom(Settings{Mode: ModeAI, Level: 1}, factory, nil)
	oldID := r.Snapshot().RoomID

	playAll(t, r, game.Move{Row: 0, Col: 0})
	r.ToggleMode(context.Background())
	r.SetLevel(context.Background(), 0)
	r.Reset(context.Background())

	s := r.Snapshot()
	assert.Equal(t, 2, built)
	assert.NotEqual(t, oldID, s.RoomID)
	assert.Equal(t, 0, s.Board.MarkedCount())
	assert.Equal(t, game.PlayerX, s.Current)
	assert.Equal(t, ModeAI, s.Mode)
	assert.Equal(t, 1, s.Level)
	assert.True(t, s.Running)
}

func TestRoomWithMinimaxNeverLoses(t *testing.T) {
	rec := &recorder{}
	r := NewRoom(Settings{Mode: ModeAI, Level: bot.LevelMinimax}, func(level int) MoveSelector {
		return bot.NewAI(level)
	}, rec)
	ctx := context.Background()

	// The human always takes the last empty cell.
	for r.Snapshot().Running {
		s := r.Snapshot()
		empty := s.Board.EmptyCells()
		last := empty[len(empty)-1]
		require.NoError(t, r.Play(ctx, last.Row, last.Col))

		_, _, err := r.AITurn(ctx)
		require.NoError(t, err)
	}

	s := r.Snapshot()
	assert.NotEqual(t, game.PlayerX, s.Winner)
	assert.Contains(t, rec.types(), events.TypeGameOver)
}
