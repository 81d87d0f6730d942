package movegen

import (
	"github.com/corvidchess/gambit/internal/moveslice"
	"github.com/corvidchess/gambit/internal/position"
	"github.com/corvidchess/gambit/internal/types"
)

// GenerateLegal returns every legal move for the side to move: each
// pseudo-legal candidate is applied, tested for leaving the mover's own
// king in check, and undone.
func (g *Generator) GenerateLegal(b *position.Board) *moveslice.MoveSlice {
	pseudo := g.GeneratePseudoLegal(b)
	return g.filterLegal(b, pseudo)
}

// GenerateLegalCaptures is the captures-only counterpart, used by
// quiescence search.
func (g *Generator) GenerateLegalCaptures(b *position.Board) *moveslice.MoveSlice {
	pseudo := g.GenerateCaptures(b)
	return g.filterLegal(b, pseudo)
}

var legalBuf moveslice.MoveSlice

func (g *Generator) filterLegal(b *position.Board, pseudo *moveslice.MoveSlice) *moveslice.MoveSlice {
	legalBuf.Clear()
	color := b.SideToMove()
	for i := 0; i < pseudo.Len(); i++ {
		mv := pseudo.At(i)
		if ApplyIsLegal(b, mv, color) {
			legalBuf.Push(mv)
		}
	}
	return &legalBuf
}

// ApplyIsLegal applies mv, checks whether color's king is left in
// check, then undoes mv. It is exported so search can reuse it when
// walking moves one at a time instead of through a filtered buffer.
func ApplyIsLegal(b *position.Board, mv types.Move, color types.Color) bool {
	start, end := mv.From(), mv.To()
	prevPiece := b.PieceAt(start)
	captured := b.PerformMove(mv.PieceID(), start, end)
	legal := !b.IsInCheck(color)
	b.UndoMove(prevPiece, start, end, captured)
	return legal
}

// IsCheckmate reports whether color has no legal moves and is in check.
func (g *Generator) IsCheckmate(b *position.Board, color types.Color) bool {
	return b.IsInCheck(color) && g.noLegalMoves(b)
}

// IsStalemate reports whether color has no legal moves and is not in check.
func (g *Generator) IsStalemate(b *position.Board, color types.Color) bool {
	return !b.IsInCheck(color) && g.noLegalMoves(b)
}

func (g *Generator) noLegalMoves(b *position.Board) bool {
	pseudo := g.GeneratePseudoLegal(b)
	color := b.SideToMove()
	for i := 0; i < pseudo.Len(); i++ {
		if ApplyIsLegal(b, pseudo.At(i), color) {
			return false
		}
	}
	return true
}

// Perft counts leaf nodes of the legal-move tree rooted at b to the
// given depth, mutating and restoring b in place.
func Perft(b *position.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	g := NewGenerator()
	moves := g.GenerateLegal(b)
	if depth == 1 {
		return uint64(moves.Len())
	}
	// Copy out of the shared buffer: the recursive Perft call below
	// refills the package-level legal-move buffer for deeper plies.
	var list [types.MaxMoves]types.Move
	n := moves.Len()
	copy(list[:n], moves.Slice())

	var nodes uint64
	color := b.SideToMove()
	for i := 0; i < n; i++ {
		mv := list[i]
		start, end := mv.From(), mv.To()
		prevPiece := b.PieceAt(start)
		captured := b.PerformMove(mv.PieceID(), start, end)
		nodes += Perft(b, depth-1)
		b.UndoMove(prevPiece, start, end, captured)
	}
	_ = color
	return nodes
}
