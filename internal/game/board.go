package game

import (
	"fmt"
	"strings"
)

// lines lists every triple FinalState inspects, in evaluation order:
// columns, rows, the descending diagonal, then the ascending diagonal.
var lines = [8]Line{
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{2, 0}, {1, 1}, {0, 2}},
}

// Board holds the 3x3 grid and the number of marked cells.
// It is a value type: assigning a Board copies it completely.
type Board struct {
	cells  [Size][Size]PlayerMark
	marked int
}

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{}
}

// BoardFromArray builds a board from a grid, recounting occupancy.
func BoardFromArray(cells [Size][Size]PlayerMark) (Board, error) {
	var b Board
	for r := range Size {
		for c := range Size {
			if cells[r][c] == None {
				continue
			}
			if err := b.MarkCell(r, c, cells[r][c]); err != nil {
				return Board{}, err
			}
		}
	}
	return b, nil
}

// MarkCell places player's mark at (row, col). The board is left untouched
// when the coordinates are off-board, the cell is taken or player is None.
func (b *Board) MarkCell(row, col int, player PlayerMark) error {
	if !(Move{row, col}).InBounds() {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}
	if player != PlayerX && player != PlayerO {
		return fmt.Errorf("%w: %q", ErrInvalidPlayer, string(player))
	}
	if b.cells[row][col] != None {
		return fmt.Errorf("%w: (%d,%d) holds %s", ErrCellOccupied, row, col, b.cells[row][col])
	}
	b.cells[row][col] = player
	b.marked++
	return nil
}

// Unmark clears an occupied cell, undoing MarkCell exactly.
func (b *Board) Unmark(row, col int) {
	if !(Move{row, col}).InBounds() || b.cells[row][col] == None {
		return
	}
	b.cells[row][col] = None
	b.marked--
}

// IsEmptyAt reports whether the cell is empty. Off-board cells are never empty.
func (b Board) IsEmptyAt(row, col int) bool {
	return (Move{row, col}).InBounds() && b.cells[row][col] == None
}

// Cell returns the mark at (row, col), None when off-board.
func (b Board) Cell(row, col int) PlayerMark {
	if !(Move{row, col}).InBounds() {
		return None
	}
	return b.cells[row][col]
}

func (b Board) IsFull() bool {
	return b.marked == Cells
}

func (b Board) MarkedCount() int {
	return b.marked
}

// EmptyCells returns every empty cell in row-major order.
func (b Board) EmptyCells() []Move {
	moves := make([]Move, 0, Cells-b.marked)
	for r := range Size {
		for c := range Size {
			if b.cells[r][c] == None {
				moves = append(moves, Move{Row: r, Col: c})
			}
		}
	}
	return moves
}

// FinalState returns the winner of the first complete line, or None.
func (b Board) FinalState() PlayerMark {
	if line, ok := b.WinningLine(); ok {
		return b.cells[line[0].Row][line[0].Col]
	}
	return None
}

// WinningLine returns the line FinalState matched.
func (b Board) WinningLine() (Line, bool) {
	for _, line := range lines {
		first := b.cells[line[0].Row][line[0].Col]
		if first == None {
			continue
		}
		if first == b.cells[line[1].Row][line[1].Col] && first == b.cells[line[2].Row][line[2].Col] {
			return line, true
		}
	}
	return Line{}, false
}

// Outcome derives the game state from FinalState and IsFull.
func (b Board) Outcome() Outcome {
	switch b.FinalState() {
	case PlayerX:
		return WonByX
	case PlayerO:
		return WonByO
	}
	if b.IsFull() {
		return Draw
	}
	return Ongoing
}

// IsTerminal reports whether the board is won or drawn.
func (b Board) IsTerminal() bool {
	return b.Outcome() != Ongoing
}

// BoardAsStrings converts the board to a slice of slices, the shape used on the wire.
func (b Board) BoardAsStrings() [][]PlayerMark {
	board := make([][]PlayerMark, Size)
	for i := range Size {
		board[i] = make([]PlayerMark, Size)
		copy(board[i], b.cells[i][:])
	}
	return board
}

// String renders the board as three rows, e.g. "X-O/-X-/--O".
func (b Board) String() string {
	var sb strings.Builder
	for r := range Size {
		if r > 0 {
			sb.WriteByte('/')
		}
		for c := range Size {
			sb.WriteString(b.cells[r][c].String())
		}
	}
	return sb.String()
}

// Counts returns how many cells each player holds.
func (b Board) Counts() (x, o int) {
	for r := range Size {
		for c := range Size {
			switch b.cells[r][c] {
			case PlayerX:
				x++
			case PlayerO:
				o++
			}
		}
	}
	return x, o
}
