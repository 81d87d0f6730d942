// Package zobrist holds the static random tables used to incrementally
// maintain a position's Zobrist hash: one key per (piece, square)
// combination, one per castling-rights pattern, one per en-passant file,
// and one toggled whenever the side to move changes.
package zobrist

import "github.com/corvidchess/gambit/internal/types"

// pieceBbSlots mirrors the 13-slot piece-bitboard indexing used by
// Board.pieceBB (signed piece id + 6, empty squares use slot 6 and are
// never looked up here).
const pieceBbSlots = 13

var (
	// PieceSquare holds one key per (piece-bitboard-slot, square).
	PieceSquare [pieceBbSlots][types.SqLength]uint64

	// CastlingRights holds one key per 4-bit castling-rights pattern.
	CastlingRights [types.CastlingRightsLength]uint64

	// EnPassantFile holds one key per file, XORed in while an en-passant
	// capture is available on that file.
	EnPassantFile [8]uint64

	// SideToMove is XORed in whenever it becomes Black's turn to move.
	SideToMove uint64
)

func init() {
	// Seed is arbitrary but fixed: every process must derive the same
	// tables so that transposition-table entries and opening-book keys
	// computed in one run stay meaningful across runs.
	r := newRandom(1070372)

	for slot := 0; slot < pieceBbSlots; slot++ {
		for sq := types.Square(0); sq < types.SqLength; sq++ {
			PieceSquare[slot][sq] = r.rand64()
		}
	}
	for cr := 0; cr < types.CastlingRightsLength; cr++ {
		CastlingRights[cr] = r.rand64()
	}
	for f := types.FileA; f <= types.FileH; f++ {
		EnPassantFile[f] = r.rand64()
	}
	SideToMove = r.rand64()
}
