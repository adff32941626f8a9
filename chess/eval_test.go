package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateStartPositionIsZero(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, int32(0), Evaluate(b), "symmetric start position must evaluate to 0")
}

// TestEvaluateSymmetricUnderColorSwap checks that evaluating a
// mirror-colored position negates the score.
func TestEvaluateSymmetricUnderColorSwap(t *testing.T) {
	white, err := NewBoardFromFEN("4k3/8/8/8/8/3P4/8/4K3 w - - 0 1")
	require.NoError(t, err)
	// Same position with colors swapped and the board mirrored
	// vertically, side to move left unchanged: the mover's advantage
	// must flip sign.
	mirrored, err := NewBoardFromFEN("4k3/8/3p4/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	assert.Equal(t, Evaluate(white), -Evaluate(mirrored))
}

func TestEvaluateFavorsMaterialAdvantage(t *testing.T) {
	b, err := NewBoardFromFEN("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	require.NoError(t, err)
	assert.Greater(t, Evaluate(b), int32(0))
}

func TestOrderMovesSortsByScoreDescending(t *testing.T) {
	moves := []Move{
		{Score: 5},
		{Score: 10},
		{Score: 1},
		{Score: 10},
	}
	OrderMoves(moves)
	for i := 1; i < len(moves); i++ {
		assert.LessOrEqual(t, moves[i].Score, moves[i-1].Score)
	}
}
