// Package position implements the board representation: a mailbox array
// backed by per-piece and per-color bitboards, with an incrementally
// maintained Zobrist hash and tapered material/piece-square score. It is
// the single point of truth for applying and undoing moves; every other
// package (movegen, evaluator, search) reads it through accessor methods
// and never pokes at squares/bitboards directly.
package position

import (
	"github.com/corvidchess/gambit/internal/types"
	"github.com/corvidchess/gambit/internal/zobrist"
)

const (
	stateCastlingShift = 7
	stateCastlingMask  = 0xF
	stateEpShift       = 13
	stateEpMask        = 0xFFFF
)

// historyFrame captures everything perform_move/perform_null_move needs
// to undo in O(1): the prior state bitfield, half-move clock, hash and
// both score accumulators.
type historyFrame struct {
	state         uint32
	halfMoveClock int
	hash          uint64
	score         int16
	egScore       int16
}

// maxPlies bounds the history stack; documented alongside the longest
// game length the engine is expected to analyze in one process run.
const maxPlies = 11800

// Board is the authoritative chess position: mailbox + bitboards +
// incremental hash/score + undoable history. Every mutation goes through
// addPiece/removePiece so the bitboards, hash and score accumulators can
// never drift out of sync with squares.
type Board struct {
	squares [types.SqLength]types.Piece
	pieceBB [13]types.Bitboard
	colorBB [types.ColorLength]types.Bitboard
	kingSq  [types.ColorLength]types.Square

	score   int16
	egScore int16
	hash    uint64

	state uint32 // castling bits 7..10, en-passant bits 13..28

	halfMoveClock int
	halfMoveCount int

	history      [maxPlies]historyFrame
	historyLen   int
	posHistory   []uint64 // hash after every move since SetFEN; HasRepeated bounds its scan by halfMoveClock

	endgame bool
}

// NewBoard returns a Board set to the standard starting position.
func NewBoard() *Board {
	b := &Board{}
	if err := b.SetFEN(StartFEN); err != nil {
		panic(err)
	}
	return b
}

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// SideToMove returns the color to move, derived from halfMoveCount parity.
func (b *Board) SideToMove() types.Color {
	if b.halfMoveCount%2 == 0 {
		return types.White
	}
	return types.Black
}

// Hash returns the current Zobrist key.
func (b *Board) Hash() uint64 { return b.hash }

// Score returns the incremental midgame material+piece-square score.
func (b *Board) Score() int16 { return b.score }

// EgScore returns the incremental endgame material+piece-square score.
func (b *Board) EgScore() int16 { return b.egScore }

// IsEndgame reports the precomputed endgame flag.
func (b *Board) IsEndgame() bool { return b.endgame }

// HalfMoveClock returns the half-moves since the last pawn move/capture.
func (b *Board) HalfMoveClock() int { return b.halfMoveClock }

// HalfMoveCount returns the total plies since game start.
func (b *Board) HalfMoveCount() int { return b.halfMoveCount }

// HasRepeated reports whether the current hash already occurred earlier
// in the run of moves since the last capture or pawn move (exactly the
// span HalfMoveClock counts).
func (b *Board) HasRepeated() bool {
	n := len(b.posHistory)
	if n == 0 {
		return false
	}
	current := b.posHistory[n-1]
	span := b.halfMoveClock
	if span >= n {
		span = n - 1
	}
	for i := n - 1 - span; i < n-1; i++ {
		if i < 0 {
			continue
		}
		if b.posHistory[i] == current {
			return true
		}
	}
	return false
}

// PieceAt returns the signed piece occupying sq (PieceNone if empty).
func (b *Board) PieceAt(sq types.Square) types.Piece { return b.squares[sq] }

// KingSquare returns the cached king square for color c.
func (b *Board) KingSquare(c types.Color) types.Square { return b.kingSq[c.Index()] }

// PiecesBb returns the bitboard of color c's pieces of type pt.
func (b *Board) PiecesBb(c types.Color, pt types.PieceType) types.Bitboard {
	return b.pieceBB[types.MakePiece(c, pt).BbIndex()]
}

// OccupiedBb returns the occupancy bitboard for color c.
func (b *Board) OccupiedBb(c types.Color) types.Bitboard {
	return b.colorBB[c.Index()]
}

// OccupiedAll returns the bitboard of all occupied squares.
func (b *Board) OccupiedAll() types.Bitboard {
	return b.colorBB[0] | b.colorBB[1]
}

// CastlingRights returns the current castling-rights bitfield.
func (b *Board) CastlingRights() types.CastlingRights {
	return types.CastlingRights((b.state >> stateCastlingShift) & stateCastlingMask)
}

func (b *Board) setCastlingRights(cr types.CastlingRights) {
	b.state &^= stateCastlingMask << stateCastlingShift
	b.state |= uint32(cr) << stateCastlingShift
}

// enPassantBits returns the raw 16-bit en-passant state (white files
// 0..7 then black files 0..7, per the spec's bitfield layout).
func (b *Board) enPassantBits() uint32 {
	return (b.state >> stateEpShift) & stateEpMask
}

func (b *Board) setEnPassantBits(bits uint32) {
	b.state &^= stateEpMask << stateEpShift
	b.state |= (bits & stateEpMask) << stateEpShift
}

// EnPassantSquare returns the currently active en-passant target square
// for the side to move, or SqNone if none is active.
func (b *Board) EnPassantSquare() types.Square {
	bits := b.enPassantBits()
	color := b.SideToMove()
	base := 0
	if color == types.Black {
		base = 8
	}
	for f := 0; f < 8; f++ {
		if bits&(1<<uint(base+f)) != 0 {
			// The bit is tagged with the capturing color, so the skipped
			// rank belongs to the *other* color's double push: White
			// skips Rank5, Black skips Rank2.
			rank := types.Rank2
			if color == types.Black {
				rank = types.Rank5
			}
			return types.SquareOf(types.File(f), rank)
		}
	}
	return types.SqNone
}

func (b *Board) clearEnPassant() {
	if b.enPassantBits() == 0 {
		return
	}
	// XOR out whichever file bit(s) are currently set.
	bits := b.enPassantBits()
	for f := 0; f < 16; f++ {
		if bits&(1<<uint(f)) != 0 {
			b.hash ^= zobristEpFile(f)
		}
	}
	b.setEnPassantBits(0)
}

func (b *Board) setEnPassantFile(color types.Color, file types.File) {
	b.clearEnPassant()
	bitIdx := int(file)
	if color == types.Black {
		bitIdx += 8
	}
	b.setEnPassantBits(uint32(1) << uint(bitIdx))
	b.hash ^= zobristEpFile(bitIdx)
}

// addPiece places pc on sq: updates the mailbox, bitboards, hash and
// incremental score atomically. sq must currently be empty.
func (b *Board) addPiece(pc types.Piece, sq types.Square) {
	b.squares[sq] = pc
	b.pieceBB[pc.BbIndex()].PushSquare(sq)
	b.colorBB[pc.ColorOf().Index()].PushSquare(sq)
	b.hash ^= pieceSquareKey(pc, sq)
	mid, end := pieceSquareScore(pc, sq)
	b.score += mid
	b.egScore += end
	if pc.TypeOf() == types.King {
		b.kingSq[pc.ColorOf().Index()] = sq
	}
	b.recomputeEndgameFlag()
}

// removePiece clears sq, which must currently hold a piece. If the
// removed piece is a rook standing on its original castling-rights
// square, the corresponding right is revoked.
func (b *Board) removePiece(sq types.Square) types.Piece {
	pc := b.squares[sq]
	b.squares[sq] = types.PieceNone
	b.pieceBB[pc.BbIndex()].PopSquare(sq)
	b.colorBB[pc.ColorOf().Index()].PopSquare(sq)
	b.hash ^= pieceSquareKey(pc, sq)
	mid, end := pieceSquareScore(pc, sq)
	b.score -= mid
	b.egScore -= end

	if pc.TypeOf() == types.Rook {
		b.revokeRookCastling(pc.ColorOf(), sq)
	}
	b.recomputeEndgameFlag()
	return pc
}

// rookStartSquares maps each rook starting square to the castling right
// that depends on a rook standing there.
var rookStartSquares = map[types.Square]types.CastlingRights{
	63: types.CastlingWhiteOO,
	56: types.CastlingWhiteOOO,
	7:  types.CastlingBlackOO,
	0:  types.CastlingBlackOOO,
}

func (b *Board) revokeRookCastling(c types.Color, sq types.Square) {
	right, ok := rookStartSquares[sq]
	if !ok {
		return
	}
	cr := b.CastlingRights()
	if !cr.Has(right) {
		return
	}
	b.hash ^= zobrist.CastlingRights[cr]
	cr.Remove(right)
	b.setCastlingRights(cr)
	b.hash ^= zobrist.CastlingRights[cr]
}

// revokeCastlingRights clears the rights in remove (those that are set),
// with the matching hash delta. Used by king moves, which revoke both rights for
// their color regardless of which square the rook is on.
func (b *Board) revokeCastlingRights(remove types.CastlingRights) {
	cr := b.CastlingRights()
	if cr&remove == 0 {
		return
	}
	b.hash ^= zobrist.CastlingRights[cr]
	cr.Remove(remove)
	b.setCastlingRights(cr)
	b.hash ^= zobrist.CastlingRights[cr]
}
