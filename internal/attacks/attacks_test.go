package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/gambit/internal/types"
)

func TestKnightAttacksFromCorner(t *testing.T) {
	sq := types.MakeSquare("a1")
	assert.Equal(t, 2, KnightAttacks[sq].PopCount())
}

func TestKnightAttacksFromCenter(t *testing.T) {
	sq := types.MakeSquare("e5")
	assert.Equal(t, 8, KnightAttacks[sq].PopCount())
}

func TestKingAttacksFromCorner(t *testing.T) {
	sq := types.MakeSquare("h1")
	assert.Equal(t, 3, KingAttacks[sq].PopCount())
}

func TestRookAttacksStoppedByBlocker(t *testing.T) {
	sq := types.MakeSquare("a1")
	var occ types.Bitboard
	occ.PushSquare(types.MakeSquare("a4"))
	att := RookAttacks(sq, occ)
	// a1 sees a2,a3,a4 (blocker included) up the file, plus all of
	// rank 1 (b1..h1); a5..a8 are shadowed by the blocker.
	assert.True(t, att.Has(types.MakeSquare("a4")))
	assert.False(t, att.Has(types.MakeSquare("a5")))
	assert.True(t, att.Has(types.MakeSquare("h1")))
}

func TestBishopAttacksStoppedByBlocker(t *testing.T) {
	sq := types.MakeSquare("a1")
	var occ types.Bitboard
	occ.PushSquare(types.MakeSquare("d4"))
	att := BishopAttacks(sq, occ)
	assert.True(t, att.Has(types.MakeSquare("d4")))
	assert.False(t, att.Has(types.MakeSquare("e5")))
}

func TestPawnAttacks(t *testing.T) {
	sq := types.MakeSquare("e4")
	att := PawnAttacks(types.White, sq)
	assert.Equal(t, 2, att.PopCount())
	assert.True(t, att.Has(types.MakeSquare("d5")))
	assert.True(t, att.Has(types.MakeSquare("f5")))
}
