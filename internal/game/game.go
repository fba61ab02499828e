package game

import (
	"errors"
	"fmt"
	"strings"
)

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark string

// Outcome is the derived state of a board.
type Outcome string

const (
	// Player marks. PlayerX always moves first.
	None    PlayerMark = ""
	PlayerX PlayerMark = "X"
	PlayerO PlayerMark = "O"

	// Outcomes
	Ongoing Outcome = "ongoing"
	WonByX  Outcome = "x_won"
	WonByO  Outcome = "o_won"
	Draw    Outcome = "draw"

	// Board boundaries
	BorderMin = 0
	BorderMax = 2

	Size  = 3
	Cells = Size * Size
)

var (
	ErrOutOfBounds   = errors.New("cell out of bounds")
	ErrCellOccupied  = errors.New("cell already occupied")
	ErrInvalidPlayer = errors.New("invalid player mark")
)

// Opponent returns the other player's mark. None has no opponent.
func (m PlayerMark) Opponent() PlayerMark {
	switch m {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	}
	return None
}

func (m PlayerMark) String() string {
	if m == None {
		return "-"
	}
	return string(m)
}

// ParseMark accepts "X", "O" and "" (case-insensitive) and returns the mark.
func ParseMark(s string) (PlayerMark, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return None, nil
	case "X":
		return PlayerX, nil
	case "O":
		return PlayerO, nil
	}
	return None, fmt.Errorf("%w: %q", ErrInvalidPlayer, s)
}

// Move identifies a target cell.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (m Move) InBounds() bool {
	return m.Row >= BorderMin && m.Row <= BorderMax && m.Col >= BorderMin && m.Col <= BorderMax
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}

// Line is a winning triple of cells.
type Line [3]Move
