package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/gambit/internal/position"
	"github.com/corvidchess/gambit/internal/types"
)

func TestStartPositionIsBalanced(t *testing.T) {
	b := position.NewBoard()
	assert.Zero(t, Evaluate(b))
}

func TestExtraQueenFavorsWhite(t *testing.T) {
	b := position.NewBoard()
	assert.NoError(t, b.SetFEN("rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"))
	assert.Greater(t, Evaluate(b), int32(0))
}

func TestExtraQueenFavorsBlack(t *testing.T) {
	b := position.NewBoard()
	assert.NoError(t, b.SetFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNB1KBNR w KQkq - 0 1"))
	assert.Less(t, Evaluate(b), int32(0))
}

func TestCentralizedKingFavoredInEndgame(t *testing.T) {
	b := position.NewBoard()
	assert.NoError(t, b.SetFEN("7k/8/8/8/3K4/8/8/8 w - - 0 1"))
	assert.True(t, b.IsEndgame())
	assert.Greater(t, Evaluate(b), int32(0))
}

func TestEndgameFlagUpdatesLiveAsMaterialComesOff(t *testing.T) {
	b := position.NewBoard()
	assert.False(t, b.IsEndgame())

	assert.NoError(t, b.SetFEN("4k3/8/8/8/8/8/4P3/4K2R w K - 0 1"))
	assert.True(t, b.IsEndgame())

	// Four pawns and four pieces: not an endgame until Rxd8 takes the
	// queen and leaves three pieces.
	assert.NoError(t, b.SetFEN("3qk3/p7/8/8/8/8/PPP5/3RK1NR w - - 0 1"))
	assert.False(t, b.IsEndgame())
	b.PerformMove(types.Rook, types.MakeSquare("d1"), types.MakeSquare("d8"))
	assert.True(t, b.IsEndgame())
}
