package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/gambit/internal/types"
)

var fenSamples = []string{
	StartFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r2q1rk1/pP1p2pp/Q4n2/bbp1p3/Np6/1B3NBn/pPPP1PPP/R3K2R b KQ - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"4k3/8/8/8/3pP3/8/8/4K3 b - e3 0 1",
}

func TestFenRoundTrip(t *testing.T) {
	for _, fen := range fenSamples {
		b := &Board{}
		if err := b.SetFEN(fen); err != nil {
			t.Fatalf("SetFEN(%q): %v", fen, err)
		}
		assert.Equal(t, fen, b.FEN(), "round trip for %q", fen)
	}
}

func TestInvalidFenLeavesBoardUntouched(t *testing.T) {
	b := NewBoard()
	before := b.FEN()
	err := b.SetFEN("not a fen")
	assert.Error(t, err)
	assert.Equal(t, before, b.FEN())
}

func TestHashAndScoreMatchFromScratchRecompute(t *testing.T) {
	for _, fen := range fenSamples {
		b := &Board{}
		if err := b.SetFEN(fen); err != nil {
			t.Fatalf("SetFEN(%q): %v", fen, err)
		}
		assert.Equal(t, b.recomputeHash(), b.Hash(), "hash mismatch for %q", fen)
		mid, end := b.recomputeScore()
		assert.Equal(t, mid, b.Score(), "score mismatch for %q", fen)
		assert.Equal(t, end, b.EgScore(), "egScore mismatch for %q", fen)
	}
}

// snapshot captures everything PerformMove/UndoMove must restore
// bit-for-bit.
type snapshot struct {
	squares       [types.SqLength]types.Piece
	pieceBB       [13]types.Bitboard
	colorBB       [types.ColorLength]types.Bitboard
	kingSq        [types.ColorLength]types.Square
	state         uint32
	hash          uint64
	score, eg     int16
	halfMoveClock int
	halfMoveCount int
}

func takeSnapshot(b *Board) snapshot {
	return snapshot{
		squares:       b.squares,
		pieceBB:       b.pieceBB,
		colorBB:       b.colorBB,
		kingSq:        b.kingSq,
		state:         b.state,
		hash:          b.hash,
		score:         b.score,
		eg:            b.egScore,
		halfMoveClock: b.halfMoveClock,
		halfMoveCount: b.halfMoveCount,
	}
}

func TestApplyUndoRestoresExactState(t *testing.T) {
	b := &Board{}
	assert.NoError(t, b.SetFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"))

	type trial struct {
		from, to types.Square
		pid      types.PieceType
	}
	trials := []trial{
		{types.MakeSquare("e1"), types.MakeSquare("g1"), types.King},  // kingside castle
		{types.MakeSquare("e5"), types.MakeSquare("d7"), types.Knight}, // capture
		{types.MakeSquare("a2"), types.MakeSquare("a3"), types.Pawn},   // quiet pawn push
	}

	for _, tr := range trials {
		before := takeSnapshot(b)
		prevPiece := b.PieceAt(tr.from)
		captured := b.PerformMove(tr.pid, tr.from, tr.to)
		b.UndoMove(prevPiece, tr.from, tr.to, captured)
		after := takeSnapshot(b)
		assert.Equal(t, before, after, "apply/undo mismatch for %s%s", tr.from, tr.to)
		assert.Equal(t, before.hash, b.recomputeHash())
	}
}

func TestEnPassantCaptureRoundTrip(t *testing.T) {
	b := &Board{}
	assert.NoError(t, b.SetFEN("4k3/8/8/8/3pP3/8/8/4K3 b - e3 0 1"))

	ep := b.EnPassantSquare()
	assert.True(t, ep.IsValid())

	from := types.MakeSquare("d4")
	before := takeSnapshot(b)
	prevPiece := b.PieceAt(from)
	captured := b.PerformMove(types.Pawn, from, ep)
	assert.Equal(t, EnPassantSentinel, captured)
	b.UndoMove(prevPiece, from, ep, captured)
	assert.Equal(t, before, takeSnapshot(b))
}

func TestHasRepeatedDetectsRepetition(t *testing.T) {
	b := NewBoard()
	moves := []struct{ from, to types.Square }{
		{types.MakeSquare("g1"), types.MakeSquare("f3")},
		{types.MakeSquare("g8"), types.MakeSquare("f6")},
		{types.MakeSquare("f3"), types.MakeSquare("g1")},
		{types.MakeSquare("f6"), types.MakeSquare("g8")},
	}
	assert.False(t, b.HasRepeated())
	for _, mv := range moves {
		pid := b.PieceAt(mv.from).TypeOf()
		b.PerformMove(pid, mv.from, mv.to)
	}
	assert.True(t, b.HasRepeated())
}
