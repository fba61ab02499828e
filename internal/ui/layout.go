package ui

import "ctchen222/Tic-Tac-Toe-AI/internal/game"

// Each cell is cellWidth x cellHeight characters, separated by one-character
// grid lines.
const (
	cellWidth  = 7
	cellHeight = 3

	boardWidth  = game.Size*cellWidth + game.Size - 1
	boardHeight = game.Size*cellHeight + game.Size - 1
)

// CellAt maps a point relative to the board's top-left corner to a cell.
// Points on grid lines or outside the board map to nothing.
func CellAt(dx, dy int) (game.Move, bool) {
	if dx < 0 || dy < 0 || dx >= boardWidth || dy >= boardHeight {
		return game.Move{}, false
	}
	if dx%(cellWidth+1) == cellWidth || dy%(cellHeight+1) == cellHeight {
		return game.Move{}, false
	}
	return game.Move{Row: dy / (cellHeight + 1), Col: dx / (cellWidth + 1)}, true
}

// isCellCenter reports whether the point is where a cell's mark is drawn.
func isCellCenter(dx, dy int) bool {
	return dx%(cellWidth+1) == cellWidth/2 && dy%(cellHeight+1) == cellHeight/2
}

func gridRune(dx, dy int) rune {
	onCol := dx%(cellWidth+1) == cellWidth
	onRow := dy%(cellHeight+1) == cellHeight
	switch {
	case onCol && onRow:
		return '┼'
	case onCol:
		return '│'
	default:
		return '─'
	}
}
