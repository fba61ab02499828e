package room

import "ctchen222/Tic-Tac-Toe-AI/internal/game"

// Mode selects who plays PlayerO.
type Mode string

const (
	// ModeAI lets the AI answer every human move.
	ModeAI Mode = "ai"
	// ModePvP alternates two humans on the same board.
	ModePvP Mode = "pvp"
)

// ParseMode accepts "ai" and "pvp".
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeAI, ModePvP:
		return Mode(s), true
	}
	return "", false
}

// State is a read-only snapshot of a room for front ends.
type State struct {
	RoomID  string
	Board   game.Board
	Current game.PlayerMark
	Mode    Mode
	Level   int
	Running bool
	Outcome game.Outcome
	Winner  game.PlayerMark
	Line    game.Line
	HasLine bool
}

// AITurn reports whether the AI is expected to move next.
func (s State) AITurn() bool {
	return s.Running && s.Mode == ModeAI && s.Current == AIMark
}
