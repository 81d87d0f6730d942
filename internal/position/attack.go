package position

import (
	"github.com/corvidchess/gambit/internal/attacks"
	"github.com/corvidchess/gambit/internal/types"
)

// FindSmallestAttacker enumerates attackers of targetSq belonging to
// attackerColor, in piece-value order (pawn, knight, bishop, rook,
// queen, king), against the given occupancy snapshot. Returns the
// square of any one such attacker, or SqNone if there is none.
func (b *Board) FindSmallestAttacker(occupied types.Bitboard, attackerColor types.Color, targetSq types.Square) types.Square {
	pawnAttackers := reversePawnAttacks(attackerColor, targetSq) & b.PiecesBb(attackerColor, types.Pawn) & occupied
	if pawnAttackers != types.BbZero {
		return pawnAttackers.Lsb()
	}
	if knights := attacks.KnightAttacks[targetSq] & b.PiecesBb(attackerColor, types.Knight) & occupied; knights != types.BbZero {
		return knights.Lsb()
	}
	if bishops := attacks.BishopAttacks(targetSq, occupied) & b.PiecesBb(attackerColor, types.Bishop) & occupied; bishops != types.BbZero {
		return bishops.Lsb()
	}
	if rooks := attacks.RookAttacks(targetSq, occupied) & b.PiecesBb(attackerColor, types.Rook) & occupied; rooks != types.BbZero {
		return rooks.Lsb()
	}
	if queens := attacks.QueenAttacks(targetSq, occupied) & b.PiecesBb(attackerColor, types.Queen) & occupied; queens != types.BbZero {
		return queens.Lsb()
	}
	if kings := attacks.KingAttacks[targetSq] & b.PiecesBb(attackerColor, types.King) & occupied; kings != types.BbZero {
		return kings.Lsb()
	}
	return types.SqNone
}

// reversePawnAttacks returns the squares from which a pawn of
// attackerColor could capture onto targetSq — i.e. the pawn-attack
// pattern as seen from targetSq looking outward, which is the same
// shape as an opposite-colored pawn's attack pattern.
func reversePawnAttacks(attackerColor types.Color, targetSq types.Square) types.Bitboard {
	return attacks.PawnAttacks(attackerColor.Flip(), targetSq)
}

// IsAttacked reports whether sq is attacked by any piece of color.
func (b *Board) IsAttacked(color types.Color, sq types.Square) bool {
	return b.FindSmallestAttacker(b.OccupiedAll(), color, sq) != types.SqNone
}

// IsInCheck reports whether color's king is currently attacked.
func (b *Board) IsInCheck(color types.Color) bool {
	return b.IsAttacked(color.Flip(), b.KingSquare(color))
}

// See performs a Static Exchange Evaluation of a capture sequence
// initiated by moving ourPid from `from` onto `to`, where `to` currently
// holds capturedPid. opponent is the color replying on `to`. Returns the
// net material swing, positive if the initiating side comes out ahead.
func (b *Board) See(opponent types.Color, from, to types.Square, ourPid, capturedPid types.PieceType) int32 {
	gain := make([]int32, 0, 32)
	gain = append(gain, pieceValue(capturedPid))

	occupied := b.OccupiedAll()
	occupied.PopSquare(from)

	attackerType := ourPid
	side := opponent

	for {
		attackerSq := b.FindSmallestAttacker(occupied, side, to)
		if attackerSq == types.SqNone {
			break
		}
		gain = append(gain, pieceValue(attackerType)-gain[len(gain)-1])
		occupied.PopSquare(attackerSq)
		attackerType = b.squares[attackerSq].TypeOf()
		side = side.Flip()
	}

	for i := len(gain) - 2; i >= 0; i-- {
		if -gain[i+1] < gain[i] {
			gain[i] = -gain[i+1]
		}
	}
	return gain[0]
}

func pieceValue(pt types.PieceType) int32 {
	return int32(pt.MidValue())
}
