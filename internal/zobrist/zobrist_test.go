package zobrist

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/gambit/internal/types"
)

// The Zobrist tables are seeded deterministically (xorshift64star, seed
// 1070372); re-running init() would reproduce the exact same tables.
// What we actually need for hash correctness is that distinct terms
// don't collide under XOR composition, so these tests check
// distinguishability rather than specific values.

func TestPieceSquareKeysAreDistinct(t *testing.T) {
	seen := make(map[uint64]bool)
	for pc := 0; pc < pieceBbSlots; pc++ {
		for sq := types.Square(0); sq < types.SqLength; sq++ {
			k := PieceSquare[pc][sq]
			assert.False(t, seen[k], "duplicate zobrist key for piece slot %d square %d", pc, sq)
			seen[k] = true
		}
	}
}

func TestSideToMoveKeyNonZero(t *testing.T) {
	assert.NotZero(t, SideToMove)
}

func TestCastlingRightsKeysDistinct(t *testing.T) {
	seen := make(map[uint64]bool)
	for i := range CastlingRights {
		k := CastlingRights[i]
		assert.False(t, seen[k], "duplicate castling-rights key at index %d", i)
		seen[k] = true
	}
}

func TestEnPassantFileKeysDistinct(t *testing.T) {
	seen := make(map[uint64]bool)
	for i := range EnPassantFile {
		k := EnPassantFile[i]
		assert.False(t, seen[k], "duplicate en-passant key at index %d", i)
		seen[k] = true
	}
}

// TestRandomCompositionsDiffer builds 1000 random XOR compositions that
// differ only in their side-to-move term and checks none of them
// collide, a cheap proxy for "distinct game states hash distinctly".
func TestRandomCompositionsDiffer(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	seen := make(map[uint64]bool)
	collisions := 0
	for i := 0; i < 1000; i++ {
		base := uint64(0)
		for p := 0; p < 4; p++ {
			pc := r.Intn(pieceBbSlots)
			sq := types.Square(r.Intn(int(types.SqLength)))
			base ^= PieceSquare[pc][sq]
		}
		withSide := base ^ SideToMove
		if seen[base] {
			collisions++
		}
		seen[base] = true
		if seen[withSide] {
			collisions++
		}
		seen[withSide] = true
	}
	assert.Zero(t, collisions, "unexpected zobrist collisions among random compositions")
}
