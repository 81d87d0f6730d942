package position

import (
	"github.com/corvidchess/gambit/internal/types"
	"github.com/corvidchess/gambit/internal/zobrist"
)

// EnPassantSentinel is returned by PerformMove in place of a captured
// piece type when the move was an en-passant capture (the captured pawn
// does not sit on the move's destination square, so it can't be
// reported as an ordinary capture).
const EnPassantSentinel = types.PtLength

func (b *Board) pushHistory() {
	b.history[b.historyLen] = historyFrame{
		state:         b.state,
		halfMoveClock: b.halfMoveClock,
		hash:          b.hash,
		score:         b.score,
		egScore:       b.egScore,
	}
	b.historyLen++
}

func (b *Board) popHistory() historyFrame {
	b.historyLen--
	return b.history[b.historyLen]
}

// PerformMove applies a pseudo-legal move and returns the type of any
// captured piece (PtNone if none, EnPassantSentinel for an en-passant
// capture). pid is the piece id to place on the destination square: the
// moving piece's type, or the promotion piece type for a promoting pawn
// move.
func (b *Board) PerformMove(pid types.PieceType, start, end types.Square) types.PieceType {
	b.pushHistory()

	mover := b.squares[start]
	color := mover.ColorOf()

	b.halfMoveCount++
	b.hash ^= zobrist.SideToMove
	b.halfMoveClock++

	b.removePiece(start)
	b.clearEnPassant()

	captured := types.PtNone

	if b.squares[end] != types.PieceNone {
		capturedPc := b.removePiece(end)
		captured = capturedPc.TypeOf()
		b.addPiece(types.MakePiece(color, pid), end)
		b.halfMoveClock = 0
		if pid == types.King {
			b.kingSq[color.Index()] = end
		}
		b.posHistory = append(b.posHistory, b.hash)
		b.maybeHandleKingMove(mover, color, start, end)
		return captured
	}

	b.addPiece(types.MakePiece(color, pid), end)

	if mover.TypeOf() == types.Pawn {
		b.halfMoveClock = 0
		fileDist := int(start.FileOf()) - int(end.FileOf())
		if fileDist < 0 {
			fileDist = -fileDist
		}
		rankDist := int(start.RankOf()) - int(end.RankOf())
		if rankDist < 0 {
			rankDist = -rankDist
		}
		if fileDist == 0 && rankDist == 2 {
			// Two-square push: record en passant, tagged for the
			// opponent (who may now capture).
			b.setEnPassantFile(color.Flip(), start.FileOf())
		} else if fileDist == 1 {
			// Diagonal move onto an empty square is only legal as an
			// en-passant capture.
			victimSq := end.To(color.Flip().MoveDirection())
			b.removePiece(victimSq)
			captured = EnPassantSentinel
		}
	}

	b.maybeHandleKingMove(mover, color, start, end)

	b.posHistory = append(b.posHistory, b.hash)
	return captured
}

// maybeHandleKingMove updates the king-square cache, revokes castling
// rights, and relocates the rook for a castling move.
func (b *Board) maybeHandleKingMove(mover types.Piece, color types.Color, start, end types.Square) {
	if mover.TypeOf() != types.King {
		return
	}
	b.kingSq[color.Index()] = end

	remove := types.CastlingWhite
	if color == types.Black {
		remove = types.CastlingBlack
	}
	b.revokeCastlingRights(remove)

	dist := int(start) - int(end)
	if dist == 2 || dist == -2 {
		var rookFrom, rookTo types.Square
		if dist == -2 { // king-side castle, moved toward higher file
			rookFrom = end + 1
			rookTo = end - 1
		} else { // queen-side castle
			rookFrom = end - 2
			rookTo = end + 1
		}
		rook := b.removePiece(rookFrom)
		b.addPiece(rook, rookTo)
	}
}

// UndoMove reverses the effect of PerformMove. prevPiece is the piece
// that stood on start before the move (its type, for promotion moves,
// differs from pid). captured is whatever PerformMove returned.
func (b *Board) UndoMove(prevPiece types.Piece, start, end types.Square, captured types.PieceType) {
	b.posHistory = b.posHistory[:len(b.posHistory)-1]

	color := prevPiece.ColorOf()
	moved := b.squares[end]

	b.removePiece(end)

	if moved.TypeOf() == types.King {
		dist := int(start) - int(end)
		if dist == 2 || dist == -2 {
			var rookFrom, rookTo types.Square
			if dist == -2 {
				rookFrom = end + 1
				rookTo = end - 1
			} else {
				rookFrom = end - 2
				rookTo = end + 1
			}
			rook := b.removePiece(rookTo)
			b.addPiece(rook, rookFrom)
		}
	}

	switch captured {
	case types.PtNone:
		// nothing to restore
	case EnPassantSentinel:
		victimSq := end.To(color.Flip().MoveDirection())
		b.addPiece(types.MakePiece(color.Flip(), types.Pawn), victimSq)
	default:
		b.addPiece(types.MakePiece(color.Flip(), captured), end)
	}

	b.addPiece(prevPiece, start)
	if prevPiece.TypeOf() == types.King {
		b.kingSq[color.Index()] = start
	}

	b.halfMoveCount--
	frame := b.popHistory()
	b.state = frame.state
	b.halfMoveClock = frame.halfMoveClock
	b.hash = frame.hash
	b.score = frame.score
	b.egScore = frame.egScore
}

// PerformNullMove flips the side to move and clears en passant, without
// moving any piece. Used by search for null-move pruning.
func (b *Board) PerformNullMove() {
	b.pushHistory()
	b.halfMoveCount++
	b.hash ^= zobrist.SideToMove
	b.clearEnPassant()
	b.posHistory = append(b.posHistory, b.hash)
}

// UndoNullMove reverses PerformNullMove.
func (b *Board) UndoNullMove() {
	b.posHistory = b.posHistory[:len(b.posHistory)-1]
	b.halfMoveCount--
	frame := b.popHistory()
	b.state = frame.state
	b.halfMoveClock = frame.halfMoveClock
	b.hash = frame.hash
	b.score = frame.score
	b.egScore = frame.egScore
}
