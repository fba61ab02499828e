package proto

import (
	"ctchen222/Tic-Tac-Toe-AI/internal/game"
	"errors"
	"fmt"
)

var ErrBoardShape = errors.New("board must be 3 rows of 3 cells")

// Board is the wire form of a board: rows of "", "X" or "O".
type Board [][]game.PlayerMark

// MoveRequest asks the advisor for the AI's reply on board.
type MoveRequest struct {
	Board      Board  `json:"board" binding:"required,len=3,dive,len=3,dive,mark"`
	Difficulty string `json:"difficulty" binding:"omitempty,difficulty"`
}

// MoveResponse carries the move the AI would play.
type MoveResponse struct {
	Move    [2]int       `json:"move"`
	Eval    int          `json:"eval"`
	Outcome game.Outcome `json:"outcome"`
	Board   Board        `json:"board"`
}

// EvaluateRequest asks for a full minimax evaluation. Maximizing is true when
// PlayerX is to move.
type EvaluateRequest struct {
	Board      Board `json:"board" binding:"required,len=3,dive,len=3,dive,mark"`
	Maximizing bool  `json:"maximizing"`
}

// EvaluateResponse describes a searched position. Move is omitted on
// terminal boards.
type EvaluateResponse struct {
	Eval    int             `json:"eval"`
	Move    *[2]int         `json:"move,omitempty"`
	Outcome game.Outcome    `json:"outcome"`
	Winner  game.PlayerMark `json:"winner,omitempty"`
}

// ToGame converts the wire board into a game.Board.
func (b Board) ToGame() (game.Board, error) {
	if len(b) != game.Size {
		return game.Board{}, ErrBoardShape
	}
	var cells [game.Size][game.Size]game.PlayerMark
	for r, row := range b {
		if len(row) != game.Size {
			return game.Board{}, ErrBoardShape
		}
		for c, cell := range row {
			mark, err := game.ParseMark(string(cell))
			if err != nil {
				return game.Board{}, fmt.Errorf("cell (%d,%d): %w", r, c, err)
			}
			cells[r][c] = mark
		}
	}
	return game.BoardFromArray(cells)
}

// FromGame converts a game.Board into its wire form.
func FromGame(board game.Board) Board {
	return Board(board.BoardAsStrings())
}

// MovePair flattens a move into [row, col].
func MovePair(m game.Move) [2]int {
	return [2]int{m.Row, m.Col}
}
