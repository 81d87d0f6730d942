package types

import "strings"

// Move packs a chess move into 17 bits of a machine word:
//
//	bits 0..2   piece id: the promotion piece type for promotion moves,
//	            otherwise the moving piece's type (Pawn=1 .. King=6)
//	bits 3..9   start square (0..63)
//	bits 10..16 end square (0..63)
type Move uint32

// MoveNone is the zero/invalid move.
const MoveNone Move = 0

const (
	pieceIDBits = 3
	sqBits      = 7

	fromShift = pieceIDBits
	toShift   = pieceIDBits + sqBits

	pieceIDMask Move = 0x7
	sqMask      Move = 0x7F
	moveMask    Move = 0x1FFFF // 17 bits
)

// CreateMove packs a start/end square pair and a piece id (the moving
// piece's type, or the promotion piece type for a promotion) into a Move.
func CreateMove(from, to Square, pieceID PieceType) Move {
	return Move(pieceID)&pieceIDMask |
		Move(from)<<fromShift |
		Move(to)<<toShift
}

// From returns the start square.
func (m Move) From() Square {
	return Square((m >> fromShift) & sqMask)
}

// To returns the end square.
func (m Move) To() Square {
	return Square((m >> toShift) & sqMask)
}

// PieceID returns the packed piece id: the promotion piece type for a
// promotion move, otherwise the moving piece's type.
func (m Move) PieceID() PieceType {
	return PieceType(m & pieceIDMask)
}

// IsValid reports whether m has sane squares and a non-zero piece id.
// MoveNone is not considered valid.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid() && m.PieceID().IsValid()
}

// StringUci renders the move in UCI notation: <from><to>[promo].
// When isPromotion is true, the piece id is appended as a lower-case
// promotion letter; callers that track whether a move is a promotion pass it explicitly
// since PieceID() alone is ambiguous between "moving piece" and
// "promotion piece" for a non-promotion king/queen move.
func (m Move) StringUci(isPromotion bool) string {
	if m == MoveNone {
		return "0000"
	}
	var sb strings.Builder
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if isPromotion {
		sb.WriteString(strings.ToLower(m.PieceID().Char()))
	}
	return sb.String()
}

// ScoredMove packs a 17-bit Move and a signed 14-bit score into 32 bits:
//
//	bit 31      sign of score (1 = negative)
//	bits 17..30 |score| (14 bits)
//	bits 0..16  the Move
type ScoredMove uint32

const (
	scoreShift    = 17
	scoreBits     = 14
	scoreMask     ScoredMove = (1 << scoreBits) - 1
	scoreSignBit  ScoredMove = 1 << 31
)

// EncodeScoredMove packs m and score into a ScoredMove.
func EncodeScoredMove(m Move, score int32) ScoredMove {
	abs := score
	var sign ScoredMove
	if abs < 0 {
		abs = -abs
		sign = scoreSignBit
	}
	return ScoredMove(m)&ScoredMove(moveMask) | (ScoredMove(abs)&scoreMask)<<scoreShift | sign
}

// Move extracts the packed Move.
func (sm ScoredMove) Move() Move {
	return Move(sm) & moveMask
}

// Score extracts the signed packed score.
func (sm ScoredMove) Score() int32 {
	abs := int32((sm >> scoreShift) & scoreMask)
	if sm&scoreSignBit != 0 {
		return -abs
	}
	return abs
}
