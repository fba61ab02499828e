package ui

import (
	"ctchen222/Tic-Tac-Toe-AI/internal/bot"
	"ctchen222/Tic-Tac-Toe-AI/internal/game"
	"ctchen222/Tic-Tac-Toe-AI/internal/room"
	"errors"
	"fmt"
)

const HelpText = " click/⏎ play   ↑↓←→ move   g mode   0 random   1 minimax   r reset   q quit"

// StatusText describes the mode and whose turn it is.
func StatusText(s room.State) string {
	mode := "two players"
	if s.Mode == room.ModeAI {
		mode = fmt.Sprintf("vs AI (%s)", bot.DifficultyName(s.Level))
	}

	var turn string
	switch {
	case !s.Running && s.Outcome == game.Draw:
		turn = "Draw! Press r to play again."
	case !s.Running:
		turn = fmt.Sprintf("%s wins! Press r to play again.", s.Winner)
	case s.AITurn():
		turn = "AI is thinking..."
	default:
		turn = fmt.Sprintf("%s to move", s.Current)
	}
	return fmt.Sprintf(" %s · %s", mode, turn)
}

// Notice turns a rejected move into a short message for the status line.
func Notice(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, game.ErrCellOccupied):
		return "That cell is taken."
	case errors.Is(err, room.ErrGameOver):
		return "The game is over."
	case errors.Is(err, room.ErrNotYourTurn):
		return "Wait for the AI."
	default:
		return err.Error()
	}
}
