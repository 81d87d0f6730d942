package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/gambit/internal/types"
)

func TestRecordAndReadKillers(t *testing.T) {
	tbl := NewTable()
	m1 := types.CreateMove(types.MakeSquare("e2"), types.MakeSquare("e4"), types.Pawn)
	m2 := types.CreateMove(types.MakeSquare("g1"), types.MakeSquare("f3"), types.Knight)

	tbl.RecordKiller(3, m1)
	tbl.RecordKiller(3, m2)
	k1, k2 := tbl.Killers(3)
	assert.Equal(t, m2, k1)
	assert.Equal(t, m1, k2)
}

func TestRecordKillerDuplicateIsNoop(t *testing.T) {
	tbl := NewTable()
	m1 := types.CreateMove(types.MakeSquare("e2"), types.MakeSquare("e4"), types.Pawn)
	tbl.RecordKiller(0, m1)
	tbl.RecordKiller(0, m1)
	k1, k2 := tbl.Killers(0)
	assert.Equal(t, m1, k1)
	assert.Equal(t, types.MoveNone, k2)
}

func TestHistoryScoreAccumulates(t *testing.T) {
	tbl := NewTable()
	from, to := types.MakeSquare("d2"), types.MakeSquare("d4")
	tbl.RecordCutoff(types.White, from, to, 3)
	tbl.RecordCutoff(types.White, from, to, 2)
	assert.Equal(t, int32(13), tbl.HistoryScore(types.White, from, to))
}

func TestClearResetsState(t *testing.T) {
	tbl := NewTable()
	from, to := types.MakeSquare("d2"), types.MakeSquare("d4")
	tbl.RecordCutoff(types.Black, from, to, 4)
	tbl.Clear()
	assert.Zero(t, tbl.HistoryScore(types.Black, from, to))
}
