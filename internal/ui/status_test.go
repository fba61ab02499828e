package ui

import (
	"ctchen222/Tic-Tac-Toe-AI/internal/game"
	"ctchen222/Tic-Tac-Toe-AI/internal/room"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusText(t *testing.T) {
	tests := []struct {
		name  string
		state room.State
		want  string
	}{
		{
			"human to move against AI",
			room.State{Mode: room.ModeAI, Level: 1, Running: true, Current: game.PlayerX},
			" vs AI (hard) · X to move",
		},
		{
			"AI to move",
			room.State{Mode: room.ModeAI, Level: 0, Running: true, Current: game.PlayerO},
			" vs AI (easy) · AI is thinking...",
		},
		{
			"pvp O to move",
			room.State{Mode: room.ModePvP, Running: true, Current: game.PlayerO},
			" two players · O to move",
		},
		{
			"win",
			room.State{Mode: room.ModePvP, Outcome: game.WonByX, Winner: game.PlayerX},
			" two players · X wins! Press r to play again.",
		},
		{
			"draw",
			room.State{Mode: room.ModeAI, Level: 1, Outcome: game.Draw},
			" vs AI (hard) · Draw! Press r to play again.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusText(tt.state))
		})
	}
}

func TestNotice(t *testing.T) {
	assert.Empty(t, Notice(nil))
	assert.Equal(t, "That cell is taken.", Notice(fmt.Errorf("play: %w", game.ErrCellOccupied)))
	assert.Equal(t, "The game is over.", Notice(room.ErrGameOver))
	assert.Equal(t, "Wait for the AI.", Notice(room.ErrNotYourTurn))
	assert.Equal(t, "boom", Notice(fmt.Errorf("boom")))
}
