package ui

import (
	"ctchen222/Tic-Tac-Toe-AI/internal/game"
	"ctchen222/Tic-Tac-Toe-AI/internal/room"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var (
	gridStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	cursorColor = tcell.ColorDarkSlateGray
	winColor    = tcell.ColorDarkGreen
	markColors  = map[game.PlayerMark]tcell.Color{
		game.PlayerX: tcell.ColorRed,
		game.PlayerO: tcell.ColorDodgerBlue,
	}
)

// BoardView draws a room's board and turns clicks into moves.
type BoardView struct {
	*tview.Box
	room   *room.Room
	onPlay func(game.Move)
	cursor game.Move

	// top-left corner of the grid as of the last draw
	originX, originY int
}

func NewBoardView(r *room.Room, onPlay func(game.Move)) *BoardView {
	v := &BoardView{
		Box:    tview.NewBox(),
		room:   r,
		onPlay: onPlay,
		cursor: game.Move{Row: 1, Col: 1},
	}
	v.Box.SetBorder(true).SetTitle(" Tic Tac Toe ")
	v.Box.SetDrawFunc(v.draw)
	v.Box.SetMouseCapture(v.mouse)
	return v
}

// Cursor is the cell keyboard play targets.
func (v *BoardView) Cursor() game.Move {
	return v.cursor
}

// MoveCursor shifts the cursor, staying on the board.
func (v *BoardView) MoveCursor(dRow, dCol int) {
	next := game.Move{Row: v.cursor.Row + dRow, Col: v.cursor.Col + dCol}
	if next.InBounds() {
		v.cursor = next
	}
}

func (v *BoardView) ResetCursor() {
	v.cursor = game.Move{Row: 1, Col: 1}
}

func (v *BoardView) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	// Leave room for the border.
	x, y, width, height = x+1, y+1, width-2, height-2

	state := v.room.Snapshot()
	v.originX = x + max(0, (width-boardWidth)/2)
	v.originY = y + max(0, (height-boardHeight)/2)

	winning := map[game.Move]bool{}
	if state.HasLine {
		for _, m := range state.Line {
			winning[m] = true
		}
	}

	for dy := range boardHeight {
		for dx := range boardWidth {
			m, ok := CellAt(dx, dy)
			if !ok {
				screen.SetContent(v.originX+dx, v.originY+dy, gridRune(dx, dy), nil, gridStyle)
				continue
			}

			style := tcell.StyleDefault
			switch {
			case winning[m]:
				style = style.Background(winColor)
			case state.Running && m == v.cursor:
				style = style.Background(cursorColor)
			}

			ch := ' '
			if mark := state.Board.Cell(m.Row, m.Col); mark != game.None && isCellCenter(dx, dy) {
				ch = rune(mark[0])
				style = style.Foreground(markColors[mark]).Bold(true)
			}
			screen.SetContent(v.originX+dx, v.originY+dy, ch, nil, style)
		}
	}
	return x, y, width, height
}

func (v *BoardView) mouse(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
	if action != tview.MouseLeftClick {
		return action, event
	}
	px, py := event.Position()
	if !v.InRect(px, py) {
		return action, event
	}
	m, ok := CellAt(px-v.originX, py-v.originY)
	if !ok {
		return action, event
	}
	v.cursor = m
	v.onPlay(m)
	return action, nil
}
