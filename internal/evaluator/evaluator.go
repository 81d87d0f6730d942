// Package evaluator computes a static evaluation of a position,
// blending the incrementally maintained midgame and endgame
// material+piece-square scores via a material-based phase taper, then
// layering king-shield, doubled-pawn and passed-pawn terms on top.
package evaluator

import (
	"github.com/corvidchess/gambit/internal/config"
	"github.com/corvidchess/gambit/internal/position"
	"github.com/corvidchess/gambit/internal/types"
)

const maxPhase = 24

// Evaluate returns the static evaluation of b from White's perspective;
// callers that need the side-to-move's perspective negate for Black.
func Evaluate(b *position.Board) int32 {
	phase := gamePhase(b)

	midShield, midShieldB := kingShieldBonus(b)
	mid := int32(b.Score()) + midShield - midShieldB
	end := int32(b.EgScore())

	base := (mid*int32(phase) + end*int32(maxPhase-phase)) / maxPhase

	if b.IsEndgame() {
		base += kingCentralizationBonus(b, types.White)
		base -= kingCentralizationBonus(b, types.Black)
	}

	base -= doubledPawnPenalty(b, types.White)
	base += doubledPawnPenalty(b, types.Black)

	base += passedPawnBonus(b, types.White)
	base -= passedPawnBonus(b, types.Black)

	return base
}

// gamePhase estimates remaining material via popcount(pawns) plus a
// bonus for each side's queen presence, clamped to [0, maxPhase].
func gamePhase(b *position.Board) int {
	phase := (b.PiecesBb(types.White, types.Pawn) | b.PiecesBb(types.Black, types.Pawn)).PopCount()
	if b.PiecesBb(types.White, types.Queen) != types.BbZero {
		phase += 4
	}
	if b.PiecesBb(types.Black, types.Queen) != types.BbZero {
		phase += 4
	}
	if phase > maxPhase {
		phase = maxPhase
	}
	return phase
}

func kingShieldBonus(b *position.Board) (white, black int32) {
	bonus := int32(config.Settings.Eval.KingShieldBonus)
	wShield := (b.PiecesBb(types.White, types.Pawn) & kingShieldMask(b.KingSquare(types.White))).PopCount()
	bShield := (b.PiecesBb(types.Black, types.Pawn) & kingShieldMask(b.KingSquare(types.Black))).PopCount()
	return int32(wShield) * bonus, int32(bShield) * bonus
}

// kingShieldMask returns the squares one rank ahead of and one rank
// behind the king on its own and the adjacent files (up to six, fewer at
// the board edge), used for the pawn-shield bonus. The mask does not
// depend on the king's color.
func kingShieldMask(kingSq types.Square) types.Bitboard {
	var mask types.Bitboard
	for _, d := range []types.Direction{types.North, types.Northeast, types.Northwest,
		types.South, types.Southeast, types.Southwest} {
		if sq := kingSq.To(d); sq.IsValid() {
			mask.PushSquare(sq)
		}
	}
	return mask
}

// kingCentralizationBonus rewards a king standing close to the center
// once material has thinned past the endgame threshold, when an active
// king outweighs the shelter it gave up in the middlegame.
func kingCentralizationBonus(b *position.Board, c types.Color) int32 {
	sq := b.KingSquare(c)
	f, r := int(sq.FileOf()), int(sq.RankOf())
	du := 2*f - 7
	if du < 0 {
		du = -du
	}
	dv := 2*r - 7
	if dv < 0 {
		dv = -dv
	}
	dist := (du + dv) / 2
	bonus := int32(config.Settings.Eval.KingCentralizationBonus)
	return bonus * int32(7-dist)
}

// doubledPawnPenalty folds a color's pawn bitboard onto one rank via
// repeated 8-bit rotation and counts squares doubled by a pawn on the
// same file, per the spec's rotr-based formula.
func doubledPawnPenalty(b *position.Board, c types.Color) int32 {
	pawns := b.PiecesBb(c, types.Pawn)
	folded := pawns.RotateLeft8(64-8) | pawns.RotateLeft8(64-16) | pawns.RotateLeft8(64-24) | pawns.RotateLeft8(64-32)
	malus := int32(config.Settings.Eval.DoubledPawnMalus)
	return int32((pawns & folded).PopCount()) * malus
}

// passedPawnBonus awards each pawn whose path to promotion is
// unobstructed by enemy pawns on its own or adjacent files.
func passedPawnBonus(b *position.Board, c types.Color) int32 {
	enemy := c.Flip()
	enemyPawns := b.PiecesBb(enemy, types.Pawn)
	bonus1 := int32(config.Settings.Eval.PassedPawnBonus1)

	var total int32
	for pawns := b.PiecesBb(c, types.Pawn); pawns != types.BbZero; {
		sq := pawns.PopLsb()
		if !isPassed(sq, c, enemyPawns) {
			continue
		}
		distanceToPromotion := distToPromotion(sq, c)
		total += bonus1 * int32(5-distanceToPromotion)

		if neighborFilesClear(sq, enemyPawns) {
			reverseDist := 7 - distanceToPromotion
			total += int32(1<<uint(reverseDist)) + int32(reverseDist)
		}
	}
	return total
}

func distToPromotion(sq types.Square, c types.Color) int {
	if c == types.White {
		return int(sq.RankOf())
	}
	return 7 - int(sq.RankOf())
}

func isPassed(sq types.Square, c types.Color, enemyPawns types.Bitboard) bool {
	return pathMask(sq, c)&enemyPawns == types.BbZero
}

func neighborFilesClear(sq types.Square, enemyPawns types.Bitboard) bool {
	return adjacentFileMask(sq)&enemyPawns == types.BbZero
}

// pathMask returns the squares strictly ahead of sq (toward promotion)
// on its own file and the two adjacent files, for color c.
func pathMask(sq types.Square, c types.Color) types.Bitboard {
	var mask types.Bitboard
	dir := c.MoveDirection()
	for _, fileOffset := range []int{-1, 0, 1} {
		f := int(sq.FileOf()) + fileOffset
		if f < 0 || f > 7 {
			continue
		}
		cur := types.SquareOf(types.File(f), sq.RankOf())
		for {
			next := cur.To(dir)
			if !next.IsValid() {
				break
			}
			mask.PushSquare(next)
			cur = next
		}
	}
	return mask
}

func adjacentFileMask(sq types.Square) types.Bitboard {
	var mask types.Bitboard
	for _, fileOffset := range []int{-1, 1} {
		f := int(sq.FileOf()) + fileOffset
		if f < 0 || f > 7 {
			continue
		}
		for r := types.Rank0; r <= types.Rank7; r++ {
			mask.PushSquare(types.SquareOf(types.File(f), r))
		}
	}
	return mask
}
