// Package movegen generates pseudo-legal moves from a position's
// bitboards and filters them to legal moves by applying/undoing each
// candidate and checking that the mover's own king is not left in
// check. Move buffers are fixed-capacity (internal/moveslice) so
// generation never allocates on the hot path.
package movegen

import (
	"github.com/corvidchess/gambit/internal/attacks"
	"github.com/corvidchess/gambit/internal/moveslice"
	"github.com/corvidchess/gambit/internal/position"
	"github.com/corvidchess/gambit/internal/types"
)

// Generator holds the pseudo-legal move buffer reused across calls. The
// buffer that GenerateLegal and GenerateLegalCaptures return is a single
// package-level buffer shared by every Generator, so its contents last
// only until the next legal-move generation by any Generator. There is
// no implicit parallelism in this engine (see the concurrency model).
type Generator struct {
	buf moveslice.MoveSlice
}

// NewGenerator returns a ready-to-use Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// GeneratePseudoLegal fills and returns the generator's buffer with
// every pseudo-legal move for the side to move in b.
func (g *Generator) GeneratePseudoLegal(b *position.Board) *moveslice.MoveSlice {
	g.buf.Clear()
	g.generate(b, false)
	return &g.buf
}

// GenerateCaptures fills and returns the generator's buffer with only
// capturing (and promoting-capture) pseudo-legal moves, used by
// quiescence search.
func (g *Generator) GenerateCaptures(b *position.Board) *moveslice.MoveSlice {
	g.buf.Clear()
	g.generate(b, true)
	return &g.buf
}

func (g *Generator) generate(b *position.Board, capturesOnly bool) {
	color := b.SideToMove()
	opp := color.Flip()
	own := b.OccupiedBb(color)
	oppBb := b.OccupiedBb(opp)
	empty := ^(own | oppBb)
	occupied := own | oppBb

	g.genPawnMoves(b, color, oppBb, empty, capturesOnly)

	for _, pt := range []types.PieceType{types.Knight, types.Bishop, types.Rook, types.Queen} {
		for pieces := b.PiecesBb(color, pt); pieces != types.BbZero; {
			from := pieces.PopLsb()
			attackBb := attacks.Attacks(pt, from, occupied)
			g.emitFromTargets(from, pt, attackBb&oppBb)
			if !capturesOnly {
				g.emitFromTargets(from, pt, attackBb&empty)
			}
		}
	}

	kingSq := b.KingSquare(color)
	kingAttacks := attacks.KingAttacks[kingSq]
	g.emitFromTargets(kingSq, types.King, kingAttacks&oppBb)
	if !capturesOnly {
		g.emitFromTargets(kingSq, types.King, kingAttacks&empty)
		g.genCastling(b, color, occupied)
	}
}

func (g *Generator) emitFromTargets(from types.Square, pt types.PieceType, targets types.Bitboard) {
	for targets != types.BbZero {
		to := targets.PopLsb()
		g.buf.Push(types.CreateMove(from, to, pt))
	}
}

var promotionPieces = [4]types.PieceType{types.Queen, types.Rook, types.Bishop, types.Knight}

func (g *Generator) genPawnMoves(b *position.Board, color types.Color, oppBb, empty types.Bitboard, capturesOnly bool) {
	pawns := b.PiecesBb(color, types.Pawn)
	forward := color.MoveDirection()
	promoRank := color.PromotionRank()

	if !capturesOnly {
		single := types.Shift(pawns, forward) & empty
		g.emitPawnTargets(single, -forward, promoRank)

		doubleCandidates := single & attacksDoublePushMask(color)
		double := types.Shift(doubleCandidates, forward) & empty
		for t := double; t != types.BbZero; {
			to := t.PopLsb()
			from := to.To(-forward).To(-forward)
			g.buf.Push(types.CreateMove(from, to, types.Pawn))
		}
	}

	var attackLeft, attackRight types.Direction
	if color == types.White {
		attackLeft, attackRight = types.Northwest, types.Northeast
	} else {
		attackLeft, attackRight = types.Southwest, types.Southeast
	}
	capturesL := types.Shift(pawns, attackLeft) & oppBb
	capturesR := types.Shift(pawns, attackRight) & oppBb
	g.emitPawnTargets(capturesL, -attackLeft, promoRank)
	g.emitPawnTargets(capturesR, -attackRight, promoRank)

	g.genEnPassant(b, color, pawns)
}

// emitPawnTargets walks target squares reached by shifting pawns in
// some direction and emits either a single quiet/capture move, or four
// promotion moves when the target lands on the promotion rank. back is
// the reverse direction used to recover the source square.
func (g *Generator) emitPawnTargets(targets types.Bitboard, back types.Direction, promoRank types.Rank) {
	for t := targets; t != types.BbZero; {
		to := t.PopLsb()
		from := to.To(back)
		if to.RankOf() == promoRank {
			for _, pp := range promotionPieces {
				g.buf.Push(types.CreateMove(from, to, pp))
			}
		} else {
			g.buf.Push(types.CreateMove(from, to, types.Pawn))
		}
	}
}

func attacksDoublePushMask(color types.Color) types.Bitboard {
	return doublePushMask[color.Index()]
}

var doublePushMask [types.ColorLength]types.Bitboard

func init() {
	doublePushMask[types.White.Index()] = rankMask(types.Rank5)
	doublePushMask[types.Black.Index()] = rankMask(types.Rank2)
}

func rankMask(r types.Rank) types.Bitboard {
	bb := types.BbZero
	for f := types.FileA; f <= types.FileH; f++ {
		bb.PushSquare(types.SquareOf(f, r))
	}
	return bb
}

func (g *Generator) genEnPassant(b *position.Board, color types.Color, pawns types.Bitboard) {
	target := b.EnPassantSquare()
	if target == types.SqNone {
		return
	}
	attackers := attacks.PawnAttacks(color.Flip(), target) & pawns
	for a := attackers; a != types.BbZero; {
		from := a.PopLsb()
		g.buf.Push(types.CreateMove(from, target, types.Pawn))
	}
}

func (g *Generator) genCastling(b *position.Board, color types.Color, occupied types.Bitboard) {
	cr := b.CastlingRights()
	kingSq := b.KingSquare(color)

	var king, queen types.CastlingRights
	if color == types.White {
		king, queen = types.CastlingWhiteOO, types.CastlingWhiteOOO
	} else {
		king, queen = types.CastlingBlackOO, types.CastlingBlackOOO
	}

	if cr.Has(king) && g.castlePathClear(king, occupied) && g.castlePathSafe(b, king, color) {
		g.buf.Push(types.CreateMove(kingSq, kingSq+2, types.King))
	}
	if cr.Has(queen) && g.castlePathClear(queen, occupied) && g.castlePathSafe(b, queen, color) {
		g.buf.Push(types.CreateMove(kingSq, kingSq-2, types.King))
	}
}

func (g *Generator) castlePathClear(right types.CastlingRights, occupied types.Bitboard) bool {
	return castlingEmptyMaskOf(right)&occupied == types.BbZero
}

func (g *Generator) castlePathSafe(b *position.Board, right types.CastlingRights, color types.Color) bool {
	path := castlingKingPathOf(right)
	opp := color.Flip()
	for p := path; p != types.BbZero; {
		sq := p.PopLsb()
		if b.IsAttacked(opp, sq) {
			return false
		}
	}
	return true
}

func castlingEmptyMaskOf(right types.CastlingRights) types.Bitboard {
	return attacks.CastlingEmptyMask[castlingRightIndex(right)]
}

func castlingKingPathOf(right types.CastlingRights) types.Bitboard {
	return attacks.CastlingKingPath[castlingRightIndex(right)]
}

func castlingRightIndex(right types.CastlingRights) int {
	switch right {
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
