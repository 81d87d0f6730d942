package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/gambit/internal/types"
)

func TestStoreAndProbeRoundTrip(t *testing.T) {
	tt := NewTable(1)
	mv := types.CreateMove(types.MakeSquare("e2"), types.MakeSquare("e4"), types.Pawn)
	tt.Store(0x1234, mv, 57, 42, 6, BoundExact)

	e, ok := tt.Probe(0x1234)
	assert.True(t, ok)
	assert.Equal(t, mv, e.Move)
	assert.Equal(t, int16(57), e.Value)
	assert.Equal(t, int8(6), e.Depth)
	assert.Equal(t, BoundExact, e.Bound)
}

func TestProbeMissOnUnknownKey(t *testing.T) {
	tt := NewTable(1)
	_, ok := tt.Probe(0xDEAD)
	assert.False(t, ok)
}

func TestClearEmptiesTable(t *testing.T) {
	tt := NewTable(1)
	tt.Store(7, types.MoveNone, 1, 1, 1, BoundLower)
	tt.Clear()
	_, ok := tt.Probe(7)
	assert.False(t, ok)
}

func TestNewTableSizeIsPowerOfTwo(t *testing.T) {
	tt := NewTable(8)
	n := tt.Len()
	assert.NotZero(t, n)
	assert.Zero(t, n&(n-1), "table length %d is not a power of two", n)
}
