package position

import (
	"github.com/corvidchess/gambit/internal/config"
	"github.com/corvidchess/gambit/internal/types"
	"github.com/corvidchess/gambit/internal/zobrist"
)

// pieceSquareKey looks up the Zobrist term for a signed piece standing
// on sq, using the same 13-slot indexing as Board.pieceBB.
func pieceSquareKey(pc types.Piece, sq types.Square) uint64 {
	return zobrist.PieceSquare[pc.BbIndex()][sq]
}

// zobristEpFile looks up the Zobrist term for en-passant state bit idx
// (0..15: white files 0..7 then black files 0..7).
func zobristEpFile(idx int) uint64 {
	return zobrist.EnPassantFile[idx%8]
}

// pieceSquareScore returns the (midgame, endgame) piece-square +
// material contribution of a signed piece standing on sq, signed so
// White's contributions are positive and Black's negative (score is
// always expressed from White's perspective).
func pieceSquareScore(pc types.Piece, sq types.Square) (int16, int16) {
	c := pc.ColorOf()
	pt := pc.TypeOf()
	mid := pt.MidValue() + psqtValue(c, pt, sq, &midPsqt)
	end := pt.EndValue() + psqtValue(c, pt, sq, &endPsqt)
	if c == types.Black {
		return -mid, -end
	}
	return mid, end
}

// recomputeHash derives the Zobrist hash from scratch by iterating all
// squares and the side-to-move/castling/en-passant state. Used to seed
// a freshly parsed position and to cross-check the incremental hash in
// tests.
func (b *Board) recomputeHash() uint64 {
	var h uint64
	for sq := types.Square(0); sq < types.SqLength; sq++ {
		if pc := b.squares[sq]; pc != types.PieceNone {
			h ^= pieceSquareKey(pc, sq)
		}
	}
	if b.SideToMove() == types.Black {
		h ^= zobrist.SideToMove
	}
	h ^= zobrist.CastlingRights[b.CastlingRights()]
	bits := b.enPassantBits()
	for f := 0; f < 16; f++ {
		if bits&(1<<uint(f)) != 0 {
			h ^= zobristEpFile(f)
		}
	}
	return h
}

// recomputeScore derives (score, egScore) from scratch by iterating all
// occupied squares.
func (b *Board) recomputeScore() (int16, int16) {
	var mid, end int16
	for sq := types.Square(0); sq < types.SqLength; sq++ {
		if pc := b.squares[sq]; pc != types.PieceNone {
			m, e := pieceSquareScore(pc, sq)
			mid += m
			end += e
		}
	}
	return mid, end
}

// recomputeEndgameFlag applies the spec's endgame threshold: true when
// total pawns are scarce or non-king/non-pawn material is scarce. Called
// from addPiece/removePiece so the flag stays current as material comes
// off the board, not just at FEN load.
func (b *Board) recomputeEndgameFlag() {
	pawns := (b.PiecesBb(types.White, types.Pawn) | b.PiecesBb(types.Black, types.Pawn)).PopCount()
	others := 0
	for _, pt := range []types.PieceType{types.Knight, types.Bishop, types.Rook, types.Queen} {
		others += (b.PiecesBb(types.White, pt) | b.PiecesBb(types.Black, pt)).PopCount()
	}
	b.endgame = pawns <= config.Settings.Eval.EndgamePawnThreshold || others <= config.Settings.Eval.EndgameMinorThreshold
}
