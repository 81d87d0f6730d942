package search

import (
	"sort"

	"github.com/corvidchess/gambit/internal/position"
	"github.com/corvidchess/gambit/internal/types"
)

// orderedMoves returns this node's legal moves ordered: captures with
// non-negative SEE first (descending SEE), then killer moves for this
// ply, then remaining quiets ordered by history score descending.
// Captures with negative SEE are deferred to the quiet pool, per the
// move-ordering design.
func (s *Search) orderedMoves(ply int) []types.Move {
	legal := s.gen.GenerateLegal(s.board)
	list := make([]types.Move, legal.Len())
	copy(list, legal.Slice())

	color := s.board.SideToMove()
	k1, k2 := s.hist.Killers(ply)

	type scored struct {
		mv    types.Move
		class int // 0=good capture, 1=killer, 2=quiet
		score int32
	}
	buf := make([]scored, len(list))
	for i, mv := range list {
		captured := s.board.PieceAt(mv.To())
		if captured != types.PieceNone {
			see := s.captureSEE(mv)
			if see >= 0 {
				buf[i] = scored{mv, 0, see}
				continue
			}
		}
		if mv == k1 || mv == k2 {
			buf[i] = scored{mv, 1, 0}
			continue
		}
		buf[i] = scored{mv, 2, s.hist.HistoryScore(color, mv.From(), mv.To())}
	}

	sort.SliceStable(buf, func(a, b int) bool {
		if buf[a].class != buf[b].class {
			return buf[a].class < buf[b].class
		}
		return buf[a].score > buf[b].score
	})

	for i, e := range buf {
		list[i] = e.mv
	}
	return list
}

// captureSEE runs Static Exchange Evaluation for a pseudo-legal
// capture, from the mover's own perspective.
func (s *Search) captureSEE(mv types.Move) int32 {
	from, to := mv.From(), mv.To()
	ourPid := s.board.PieceAt(from).TypeOf()
	capturedPid := s.board.PieceAt(to).TypeOf()
	opponent := s.board.SideToMove().Flip()
	return s.board.See(opponent, from, to, ourPid, capturedPid)
}

// orderByCaptureValue sorts quiescence-search captures by SEE score
// descending, in place.
func orderByCaptureValue(b *position.Board, list []types.Move) {
	sort.SliceStable(list, func(i, j int) bool {
		return seeOf(b, list[i]) > seeOf(b, list[j])
	})
}

func seeOf(b *position.Board, mv types.Move) int32 {
	from, to := mv.From(), mv.To()
	ourPid := b.PieceAt(from).TypeOf()
	capturedPid := b.PieceAt(to).TypeOf()
	opponent := b.SideToMove().Flip()
	return b.See(opponent, from, to, ourPid, capturedPid)
}
