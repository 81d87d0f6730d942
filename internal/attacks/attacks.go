// Package attacks precomputes every static lookup table the move
// generator and evaluator need: single-step knight/king patterns, the
// eight-direction ray tables, and the derived sliding-attack function
// that subtracts blocked squares from a ray via leading/trailing zero
// counts. Everything here is read-only after init() and allocated once.
package attacks

import (
	"github.com/corvidchess/gambit/internal/types"
)

// Ray directions. Under this engine's north=-8 orientation the Northwest,
// North, Northeast and West rays walk toward decreasing square index
// (nearest blocker found via leading-zero count) and the other four walk
// toward increasing index (nearest blocker via trailing-zero count);
// decreasingRay encodes that split.
const (
	rayNorthwest = iota
	rayNorth
	rayNortheast
	rayEast
	raySoutheast
	raySouth
	raySouthwest
	rayWest
	numRays
)

var rayDirection = [numRays]types.Direction{
	types.Northwest, types.North, types.Northeast, types.East,
	types.Southeast, types.South, types.Southwest, types.West,
}

// KnightAttacks and KingAttacks hold the single-step pattern for each
// square, assuming an otherwise empty board.
var (
	KnightAttacks [types.SqLength]types.Bitboard
	KingAttacks   [types.SqLength]types.Bitboard
)

// rays[square][direction] is the bitboard reachable from square along
// direction on an empty board. A 65th column (index types.SqLength) is
// kept zero so sentinel square indices can index into it without a
// bounds check.
var rays [types.SqLength + 1][numRays]types.Bitboard

// PawnDoublePushRank holds, per color, the bitboard of the rank a pawn
// must cross (and find empty) to be allowed a two-square push.
var PawnDoublePushRank [types.ColorLength]types.Bitboard

// CastlingEmptyMask holds, per castling right, the squares that must be
// empty for that castle to be legal.
var CastlingEmptyMask [4]types.Bitboard

// CastlingKingPath holds, per castling right, the squares the king
// actually crosses (start, intermediate, destination) which must all be
// unattacked.
var CastlingKingPath [4]types.Bitboard

func init() {
	initSteps()
	initRays()
	initPawnMasks()
	initCastlingMasks()
}

func initSteps() {
	knightDeltas := []types.Direction{-17, -15, -10, -6, 6, 10, 15, 17}
	kingDeltas := types.Directions[:]
	for sq := types.Square(0); sq < types.SqLength; sq++ {
		KnightAttacks[sq] = stepAttacks(sq, knightDeltas)
		KingAttacks[sq] = stepAttacks(sq, kingDeltas)
	}
}

// stepAttacks builds the bitboard of squares reachable from sq via one
// of the given deltas, rejecting any step that would wrap around a
// board edge (detected via file/rank distance, not just overflow).
func stepAttacks(sq types.Square, deltas []types.Direction) types.Bitboard {
	bb := types.BbZero
	f, r := sq.FileOf(), sq.RankOf()
	for _, d := range deltas {
		target := int(sq) + int(d)
		if target < 0 || target >= int(types.SqLength) {
			continue
		}
		ts := types.Square(target)
		tf, tr := ts.FileOf(), ts.RankOf()
		fileDist := int(f) - int(tf)
		if fileDist < 0 {
			fileDist = -fileDist
		}
		rankDist := int(r) - int(tr)
		if rankDist < 0 {
			rankDist = -rankDist
		}
		if fileDist > 2 || rankDist > 2 {
			continue
		}
		bb.PushSquare(ts)
	}
	return bb
}

func initRays() {
	for sq := types.Square(0); sq < types.SqLength; sq++ {
		for dir := 0; dir < numRays; dir++ {
			rays[sq][dir] = rayFrom(sq, rayDirection[dir])
		}
	}
}

// rayFrom walks from sq in direction d one step at a time, stopping at
// the board edge, and returns the bitboard of squares traversed
// (excluding sq itself).
func rayFrom(sq types.Square, d types.Direction) types.Bitboard {
	bb := types.BbZero
	cur := sq
	for {
		f, r := cur.FileOf(), cur.RankOf()
		next := int(cur) + int(d)
		if next < 0 || next >= int(types.SqLength) {
			break
		}
		ns := types.Square(next)
		nf, nr := ns.FileOf(), ns.RankOf()
		fileDist := int(f) - int(nf)
		if fileDist < 0 {
			fileDist = -fileDist
		}
		rankDist := int(r) - int(nr)
		if rankDist < 0 {
			rankDist = -rankDist
		}
		if fileDist > 1 || rankDist > 1 {
			break
		}
		bb.PushSquare(ns)
		cur = ns
	}
	return bb
}

func initPawnMasks() {
	// White starts on Rank6 and pushes north (-8); the intermediate rank
	// it must cross empty-handed is Rank5. Black mirrors onto Rank2.
	PawnDoublePushRank[types.White.Index()] = rankBb(types.Rank5)
	PawnDoublePushRank[types.Black.Index()] = rankBb(types.Rank2)
}

func rankBb(r types.Rank) types.Bitboard {
	bb := types.BbZero
	for f := types.FileA; f <= types.FileH; f++ {
		bb.PushSquare(types.SquareOf(f, r))
	}
	return bb
}

func initCastlingMasks() {
	// Board orientation: White king home is square 60 (f=4,r=7), Black
	// king home is square 4 (f=4,r=0).
	CastlingEmptyMask[castlingIndex(types.CastlingWhiteOO)] = sqMask(61, 62)
	CastlingKingPath[castlingIndex(types.CastlingWhiteOO)] = sqMask(60, 61, 62)

	CastlingEmptyMask[castlingIndex(types.CastlingWhiteOOO)] = sqMask(57, 58, 59)
	CastlingKingPath[castlingIndex(types.CastlingWhiteOOO)] = sqMask(58, 59, 60)

	CastlingEmptyMask[castlingIndex(types.CastlingBlackOO)] = sqMask(5, 6)
	CastlingKingPath[castlingIndex(types.CastlingBlackOO)] = sqMask(4, 5, 6)

	CastlingEmptyMask[castlingIndex(types.CastlingBlackOOO)] = sqMask(1, 2, 3)
	CastlingKingPath[castlingIndex(types.CastlingBlackOOO)] = sqMask(2, 3, 4)
}

func castlingIndex(cr types.CastlingRights) int {
	switch cr {
	case types.CastlingWhiteOO:
		return 0
	case types.CastlingBlackOO:
		return 1
	case types.CastlingWhiteOOO:
		return 2
	default:
		return 3
	}
}

func sqMask(squares ...int) types.Bitboard {
	bb := types.BbZero
	for _, s := range squares {
		bb.PushSquare(types.Square(s))
	}
	return bb
}

// decreasingRay reports whether ray index r walks toward decreasing
// square index under this board's numbering (North = -8), meaning its
// nearest blocker is the highest-indexed set bit (Msb/leading-zero
// count). The remaining rays walk toward increasing index and find
// their nearest blocker via Lsb/trailing-zero count.
func decreasingRay(r int) bool {
	return r == rayNorthwest || r == rayNorth || r == rayNortheast || r == rayWest
}

// slideRay returns the attack bitboard along a single ray direction
// given board occupancy, trimming the ray at the first blocker.
func slideRay(sq types.Square, dir int, occupied types.Bitboard) types.Bitboard {
	attack := rays[sq][dir]
	blockers := attack & occupied
	if blockers == types.BbZero {
		return attack
	}
	if decreasingRay(dir) {
		blockerSq := blockers.Msb()
		return attack ^ rays[blockerSq][dir]
	}
	blockerSq := blockers.Lsb()
	return attack ^ rays[blockerSq][dir]
}

// BishopAttacks returns the diagonal+anti-diagonal attack set from sq
// given the current board occupancy.
func BishopAttacks(sq types.Square, occupied types.Bitboard) types.Bitboard {
	return slideRay(sq, rayNortheast, occupied) | slideRay(sq, raySouthwest, occupied) |
		slideRay(sq, rayNorthwest, occupied) | slideRay(sq, raySoutheast, occupied)
}

// RookAttacks returns the horizontal+vertical attack set from sq given
// the current board occupancy.
func RookAttacks(sq types.Square, occupied types.Bitboard) types.Bitboard {
	return slideRay(sq, rayEast, occupied) | slideRay(sq, rayWest, occupied) |
		slideRay(sq, rayNorth, occupied) | slideRay(sq, raySouth, occupied)
}

// QueenAttacks is the union of BishopAttacks and RookAttacks.
func QueenAttacks(sq types.Square, occupied types.Bitboard) types.Bitboard {
	return BishopAttacks(sq, occupied) | RookAttacks(sq, occupied)
}

// PawnAttacks returns the squares a color's pawn on sq attacks
// diagonally (independent of occupancy).
func PawnAttacks(c types.Color, sq types.Square) types.Bitboard {
	bb := sq.Bb()
	if c == types.White {
		return types.Shift(bb, types.Northwest) | types.Shift(bb, types.Northeast)
	}
	return types.Shift(bb, types.Southwest) | types.Shift(bb, types.Southeast)
}

// Attacks returns the attack bitboard for an arbitrary piece type from
// sq given occupancy; knight/king ignore occupied.
func Attacks(pt types.PieceType, sq types.Square, occupied types.Bitboard) types.Bitboard {
	switch pt {
	case types.Knight:
		return KnightAttacks[sq]
	case types.King:
		return KingAttacks[sq]
	case types.Bishop:
		return BishopAttacks(sq, occupied)
	case types.Rook:
		return RookAttacks(sq, occupied)
	case types.Queen:
		return QueenAttacks(sq, occupied)
	default:
		return types.BbZero
	}
}
