package types

import "fmt"

// Piece is a signed piece id: positive for White, negative for Black,
// zero for an empty square. |Piece| is the PieceType id (Pawn=1 ..
// King=6). This is the mailbox encoding used by Board.squares.
type Piece int8

// PieceNone marks an empty square.
const PieceNone Piece = 0

// MakePiece builds a signed Piece from a Color and PieceType.
func MakePiece(c Color, pt PieceType) Piece {
	if c == Black {
		return -Piece(pt)
	}
	return Piece(pt)
}

// ColorOf returns the color of the piece. Only valid for non-empty pieces.
func (p Piece) ColorOf() Color {
	if p < 0 {
		return Black
	}
	return White
}

// TypeOf returns the piece type, ignoring color.
func (p Piece) TypeOf() PieceType {
	if p < 0 {
		return PieceType(-p)
	}
	return PieceType(p)
}

// BbIndex returns the 0..12 index into Board.pieceBB for this piece
// (piece_signed + 6, per the spec's Board entity layout).
func (p Piece) BbIndex() int {
	return int(p) + 6
}

var pieceToChar = map[Piece]string{
	PieceNone:              "-",
	Piece(Pawn):            "P",
	Piece(Knight):          "N",
	Piece(Bishop):          "B",
	Piece(Rook):            "R",
	Piece(Queen):           "Q",
	Piece(King):            "K",
	-Piece(Pawn):           "p",
	-Piece(Knight):         "n",
	-Piece(Bishop):         "b",
	-Piece(Rook):           "r",
	-Piece(Queen):          "q",
	-Piece(King):           "k",
}

// String returns the FEN letter for the piece ('-' for an empty square).
func (p Piece) String() string {
	s, ok := pieceToChar[p]
	if !ok {
		panic(fmt.Sprintf("invalid piece %d", p))
	}
	return s
}

// PieceFromChar returns the Piece for a single FEN piece letter, or
// PieceNone if s is not exactly one recognized letter.
func PieceFromChar(s string) Piece {
	if len(s) != 1 {
		return PieceNone
	}
	for p, c := range pieceToChar {
		if c == s && p != PieceNone {
			return p
		}
	}
	return PieceNone
}
