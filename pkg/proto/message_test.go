package proto

import (
	"ctchen222/Tic-Tac-Toe-AI/internal/game"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardToGame(t *testing.T) {
	wire := Board{
		{"X", "", "O"},
		{"", "X", ""},
		{"", "", ""},
	}
	b, err := wire.ToGame()
	require.NoError(t, err)
	assert.Equal(t, "X-O/-X-/---", b.String())
	assert.Equal(t, 3, b.MarkedCount())
	assert.Equal(t, wire, FromGame(b))
}

func TestBoardToGame_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		board Board
	}{
		{"too few rows", Board{{"", "", ""}}},
		{"short row", Board{{"", ""}, {"", "", ""}, {"", "", ""}}},
		{"bad mark", Board{{"Z", "", ""}, {"", "", ""}, {"", "", ""}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.board.ToGame()
			assert.Error(t, err)
		})
	}
}

func TestMovePair(t *testing.T) {
	assert.Equal(t, [2]int{2, 1}, MovePair(game.Move{Row: 2, Col: 1}))
}
