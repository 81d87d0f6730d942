package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveRoundTrip(t *testing.T) {
	cases := []struct {
		from, to Square
		pid      PieceType
	}{
		{SquareOf(FileE, Rank7), SquareOf(FileE, Rank5), Pawn},
		{SquareOf(FileG, Rank7), SquareOf(FileF, Rank5), Knight},
		{SquareOf(FileA, Rank1), SquareOf(FileA, Rank8), Queen},
		{SquareOf(FileH, Rank0), SquareOf(FileH, Rank1), King},
	}
	for _, c := range cases {
		mv := CreateMove(c.from, c.to, c.pid)
		assert.Equal(t, c.from, mv.From())
		assert.Equal(t, c.to, mv.To())
		assert.Equal(t, c.pid, mv.PieceID())
		assert.True(t, mv.IsValid())
	}
}

func TestMoveNoneIsInvalid(t *testing.T) {
	assert.False(t, MoveNone.IsValid())
	assert.Equal(t, "0000", MoveNone.StringUci(false))
}

func TestMoveStringUci(t *testing.T) {
	mv := CreateMove(SquareOf(FileE, Rank6), SquareOf(FileE, Rank4), Pawn)
	assert.Equal(t, "e2e4", mv.StringUci(false))

	promo := CreateMove(SquareOf(FileA, Rank1), SquareOf(FileA, Rank0), Queen)
	assert.Equal(t, "a7a8q", promo.StringUci(true))
}

func TestScoredMoveRoundTrip(t *testing.T) {
	mv := CreateMove(SquareOf(FileD, Rank1), SquareOf(FileD, Rank5), Queen)
	scores := []int32{0, 1, -1, 8191, -8191, 12345, -12345}
	for _, score := range scores {
		sm := EncodeScoredMove(mv, score)
		assert.Equal(t, mv, sm.Move())
		assert.Equal(t, score, sm.Score())
	}
}
