package ui

import (
	"context"
	"ctchen222/Tic-Tac-Toe-AI/internal/bot"
	"ctchen222/Tic-Tac-Toe-AI/internal/game"
	"ctchen222/Tic-Tac-Toe-AI/internal/room"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	r := room.NewRoom(room.Settings{Mode: room.ModeAI, Level: bot.LevelMinimax}, func(level int) room.MoveSelector {
		return bot.NewAI(level)
	}, nil)
	return New(context.Background(), r)
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(ch rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, ch, tcell.ModNone)
}

func TestApp_EnterPlaysAndAIAnswers(t *testing.T) {
	a := newTestApp(t)

	assert.Nil(t, a.handleKey(key(tcell.KeyEnter)))

	s := a.room.Snapshot()
	assert.Equal(t, game.PlayerX, s.Board.Cell(1, 1))
	// Against a centre opening every corner draws; the first is taken.
	assert.Equal(t, game.PlayerO, s.Board.Cell(0, 0))
	assert.Equal(t, game.PlayerX, s.Current)
	assert.Contains(t, a.status.GetText(true), "X to move")
}

func TestApp_CursorAndOccupiedCell(t *testing.T) {
	a := newTestApp(t)

	a.handleKey(key(tcell.KeyUp))
	a.handleKey(key(tcell.KeyLeft))
	a.handleKey(key(tcell.KeyLeft)) // clamped at the edge
	assert.Equal(t, game.Move{Row: 0, Col: 0}, a.board.Cursor())

	a.handleKey(runeKey(' '))
	assert.Equal(t, game.PlayerX, a.room.Snapshot().Board.Cell(0, 0))

	a.handleKey(runeKey(' '))
	assert.Contains(t, a.status.GetText(true), "That cell is taken.")
}

func TestApp_ModeLevelReset(t *testing.T) {
	a := newTestApp(t)

	a.handleKey(runeKey('g'))
	assert.Equal(t, room.ModePvP, a.room.Snapshot().Mode)

	a.handleKey(key(tcell.KeyEnter))
	s := a.room.Snapshot()
	assert.Equal(t, 1, s.Board.MarkedCount(), "no AI reply in pvp")
	assert.Equal(t, game.PlayerO, s.Current)

	// Switching back to AI mode on O's turn lets the AI move at once.
	a.handleKey(runeKey('g'))
	s = a.room.Snapshot()
	assert.Equal(t, room.ModeAI, s.Mode)
	assert.Equal(t, 2, s.Board.MarkedCount())

	a.handleKey(runeKey('0'))
	assert.Equal(t, bot.LevelRandom, a.room.Snapshot().Level)
	assert.Contains(t, a.status.GetText(true), "easy")

	a.handleKey(runeKey('r'))
	s = a.room.Snapshot()
	assert.Equal(t, 0, s.Board.MarkedCount())
	assert.Equal(t, bot.LevelMinimax, s.Level)
	assert.True(t, s.Running)
}

func TestApp_UnhandledKeysPassThrough(t *testing.T) {
	a := newTestApp(t)
	ev := runeKey('z')
	assert.Same(t, ev, a.handleKey(ev))
	ev = key(tcell.KeyTab)
	assert.Same(t, ev, a.handleKey(ev))
}

func drawBoard(t *testing.T, v *BoardView) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 20)

	v.SetRect(0, 0, 40, 20)
	v.Draw(screen)
	return screen
}

// cellCenter returns the screen position of a cell's mark for a 40x20 board view.
func cellCenter(m game.Move) (int, int) {
	originX := 1 + (38-boardWidth)/2
	originY := 1 + (18-boardHeight)/2
	return originX + m.Col*(cellWidth+1) + cellWidth/2, originY + m.Row*(cellHeight+1) + cellHeight/2
}

func TestBoardView_DrawsMarks(t *testing.T) {
	a := newTestApp(t)
	a.handleKey(key(tcell.KeyEnter))

	screen := drawBoard(t, a.board)

	x, y := cellCenter(game.Move{Row: 1, Col: 1})
	ch, _, _, _ := screen.GetContent(x, y)
	assert.Equal(t, 'X', ch)

	x, y = cellCenter(game.Move{Row: 0, Col: 0})
	ch, _, _, _ = screen.GetContent(x, y)
	assert.Equal(t, 'O', ch)

	x, y = cellCenter(game.Move{Row: 2, Col: 2})
	ch, _, _, _ = screen.GetContent(x, y)
	assert.Equal(t, ' ', ch)
}

func TestBoardView_ClickPlays(t *testing.T) {
	a := newTestApp(t)
	drawBoard(t, a.board)

	x, y := cellCenter(game.Move{Row: 2, Col: 2})
	action, ev := a.board.mouse(tview.MouseLeftClick, tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	assert.Equal(t, tview.MouseLeftClick, action)
	assert.Nil(t, ev, "click on a cell is consumed")

	s := a.room.Snapshot()
	assert.Equal(t, game.PlayerX, s.Board.Cell(2, 2))
	assert.Equal(t, 2, s.Board.MarkedCount())
}

func TestBoardView_ClickOnGridIsIgnored(t *testing.T) {
	a := newTestApp(t)
	drawBoard(t, a.board)

	x, y := cellCenter(game.Move{Row: 0, Col: 0})
	x += cellWidth - cellWidth/2 // onto the vertical grid line
	_, ev := a.board.mouse(tview.MouseLeftClick, tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	assert.NotNil(t, ev)
	assert.Equal(t, 0, a.room.Snapshot().Board.MarkedCount())
}
