package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/gambit/internal/position"
	"github.com/corvidchess/gambit/internal/types"
)

func TestStartPositionHas20LegalMoves(t *testing.T) {
	b := position.NewBoard()
	g := NewGenerator()
	legal := g.GenerateLegal(b)
	assert.Equal(t, 20, legal.Len())
}

func TestFoolsMateIsCheckmate(t *testing.T) {
	b := position.NewBoard()
	require := assert.New(t)
	for _, mv := range [][2]string{
		{"f2", "f3"},
		{"e7", "e5"},
		{"g2", "g4"},
		{"d8", "h4"},
	} {
		from, to := types.MakeSquare(mv[0]), types.MakeSquare(mv[1])
		pid := b.PieceAt(from).TypeOf()
		b.PerformMove(pid, from, to)
	}
	g := NewGenerator()
	require.True(g.IsCheckmate(b, b.SideToMove()))
}

func TestStalemateDetected(t *testing.T) {
	b := position.NewBoard()
	require := assert.New(t)
	require.NoError(b.SetFEN("7k/8/6Q1/8/8/8/8/1K6 b - - 0 1"))
	g := NewGenerator()
	require.True(g.IsStalemate(b, b.SideToMove()))
}
