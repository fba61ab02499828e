package ui

import (
	"context"
	"ctchen222/Tic-Tac-Toe-AI/internal/bot"
	"ctchen222/Tic-Tac-Toe-AI/internal/game"
	"ctchen222/Tic-Tac-Toe-AI/internal/room"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// App is the terminal front end for one room. The room is only driven from
// tview's event goroutine.
type App struct {
	ctx    context.Context
	app    *tview.Application
	room   *room.Room
	board  *BoardView
	status *tview.TextView
	notice string
}

func New(ctx context.Context, r *room.Room) *App {
	a := &App{
		ctx:    ctx,
		app:    tview.NewApplication(),
		room:   r,
		status: tview.NewTextView(),
	}
	a.board = NewBoardView(r, a.play)

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.board, 0, 1, true).
		AddItem(a.status, 1, 0, false).
		AddItem(tview.NewTextView().SetText(HelpText), 1, 0, false)

	a.app.SetRoot(layout, true).EnableMouse(true).SetInputCapture(a.handleKey)
	a.refresh()
	return a
}

// Run blocks until the user quits or ctx is cancelled.
func (a *App) Run() error {
	go func() {
		<-a.ctx.Done()
		a.app.Stop()
	}()
	return a.app.Run()
}

func (a *App) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	switch ev.Key() {
	case tcell.KeyEscape:
		a.app.Stop()
		return nil
	case tcell.KeyUp:
		a.board.MoveCursor(-1, 0)
	case tcell.KeyDown:
		a.board.MoveCursor(1, 0)
	case tcell.KeyLeft:
		a.board.MoveCursor(0, -1)
	case tcell.KeyRight:
		a.board.MoveCursor(0, 1)
	case tcell.KeyEnter:
		a.play(a.board.Cursor())
		return nil
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			a.app.Stop()
			return nil
		case ' ':
			a.play(a.board.Cursor())
			return nil
		case 'g':
			a.room.ToggleMode(a.ctx)
			a.aiTurn()
		case '0':
			a.room.SetLevel(a.ctx, bot.LevelRandom)
			a.aiTurn()
		case '1':
			a.room.SetLevel(a.ctx, bot.LevelMinimax)
			a.aiTurn()
		case 'r':
			a.room.Reset(a.ctx)
			a.board.ResetCursor()
			a.notice = ""
		default:
			return ev
		}
	default:
		return ev
	}
	a.refresh()
	return nil
}

// play applies a human move and lets the AI answer it.
func (a *App) play(m game.Move) {
	if err := a.room.Play(a.ctx, m.Row, m.Col); err != nil {
		a.notice = Notice(err)
		a.refresh()
		return
	}
	a.notice = ""
	a.aiTurn()
	a.refresh()
}

func (a *App) aiTurn() {
	move, ok, err := a.room.AITurn(a.ctx)
	if err != nil {
		slog.ErrorContext(a.ctx, "AI turn failed", "error", err)
		a.notice = Notice(err)
		return
	}
	if ok {
		slog.DebugContext(a.ctx, "AI played", "move", move.String())
	}
}

func (a *App) refresh() {
	text := StatusText(a.room.Snapshot())
	if a.notice != "" {
		text += "  " + a.notice
	}
	a.status.SetText(text)
}
