// Package search implements iterative-deepening negamax with
// alpha-beta pruning, quiescence search, null-move pruning, and
// killer/history move ordering assisted by static-exchange evaluation.
// A Search owns exactly one Board and one set of ordering/transposition
// tables; there is no implicit parallelism (see the concurrency model):
// all state mutation flows through the owned Board.
package search

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvidchess/gambit/internal/config"
	"github.com/corvidchess/gambit/internal/evaluator"
	"github.com/corvidchess/gambit/internal/history"
	"github.com/corvidchess/gambit/internal/logging"
	"github.com/corvidchess/gambit/internal/movegen"
	"github.com/corvidchess/gambit/internal/openingbook"
	"github.com/corvidchess/gambit/internal/position"
	"github.com/corvidchess/gambit/internal/transpositiontable"
	"github.com/corvidchess/gambit/internal/types"
)

var out = message.NewPrinter(language.English)

// Stats accumulates the current search's counters; the node count is
// logged after each completed iteration, and Stats returns them all.
type Stats struct {
	Nodes       uint64
	QNodes      uint64
	TTHits      uint64
	BetaCutoffs uint64
	StartTime   time.Time
}

// Search owns one Board and the auxiliary tables (history heuristics,
// transposition table, opening book) used across its lifetime.
type Search struct {
	board *position.Board
	gen   *movegen.Generator
	hist  *history.Table
	tt    *transpositiontable.Table
	book  *openingbook.Book

	stopTime time.Time
	stats    Stats
	pvMove   types.Move
}

// New returns a Search bound to board, with fresh ordering/TT state.
// A new Search (or Reset) corresponds to the `ucinewgame` command.
func New(board *position.Board) *Search {
	s := &Search{
		board: board,
		gen:   movegen.NewGenerator(),
		hist:  history.NewTable(),
		tt:    transpositiontable.NewTable(config.Settings.Search.TTSizeMB),
	}
	if config.Settings.Search.UseBook {
		s.book = openingbook.NewBook()
		if err := s.book.Load(config.Settings.Search.BookPath, config.Settings.Search.MaxBookPly); err != nil {
			logging.GetLog().Warningf("opening book: disabled, load failed: %v", err)
		}
	}
	return s
}

// Reset clears all engine-internal state, per the `ucinewgame` contract.
func (s *Search) Reset() {
	s.hist.Clear()
	s.tt.Clear()
	s.pvMove = types.MoveNone
}

// Stats returns a copy of the most recently completed search's counters.
func (s *Search) Stats() Stats {
	return s.stats
}

// FindBestMove is the search entry point: if an opening book move is
// available within the configured ply range, it is returned directly;
// otherwise iterative deepening runs from minDepth to maxDepth or until
// timeLimit elapses.
func (s *Search) FindBestMove(minDepth, maxDepth int, timeLimit time.Duration, useOpeningBook bool) types.Move {
	if useOpeningBook && s.book != nil && s.board.HalfMoveCount() <= config.Settings.Search.MaxBookPly {
		if mv, ok := s.book.Lookup(s.board.Hash(), s.board.HalfMoveCount()); ok {
			return mv
		}
	}

	s.stats = Stats{StartTime: time.Now()}
	s.stopTime = s.stats.StartTime.Add(timeLimit)

	best := types.MoveNone
	log := logging.GetSearchLog()

	for depth := minDepth; depth <= maxDepth; depth++ {
		root, timedOut := s.searchRoot(depth)
		if timedOut && depth > minDepth {
			break
		}
		if root != types.MoveNone {
			best = root
			s.pvMove = root
		}
		elapsed := time.Since(s.stats.StartTime)
		log.Infof("depth=%d nodes=%s nps=%s bestmove=%s",
			depth, out.Sprintf("%d", s.stats.Nodes), out.Sprintf("%d", nps(s.stats.Nodes, elapsed)), best.StringUci(false))
		if s.timeUp() {
			break
		}
	}
	return best
}

func nps(nodes uint64, elapsed time.Duration) uint64 {
	if elapsed <= 0 {
		return 0
	}
	return uint64(float64(nodes) / elapsed.Seconds())
}

func (s *Search) timeUp() bool {
	return !s.stopTime.IsZero() && time.Now().After(s.stopTime)
}

// searchRoot runs one iterative-deepening pass at the given depth and
// returns the best move found, plus whether the search was interrupted
// by the clock before completing this depth.
func (s *Search) searchRoot(depth int) (types.Move, bool) {
	color := s.board.SideToMove()
	moves := s.orderedRootMoves()

	alpha, beta := -int32(types.ValueInf), int32(types.ValueInf)
	best := types.MoveNone
	bestScore := alpha

	for i := 0; i < len(moves); i++ {
		mv := moves[i]
		start, end := mv.From(), mv.To()
		prevPiece := s.board.PieceAt(start)
		captured := s.board.PerformMove(mv.PieceID(), start, end)

		if s.board.IsInCheck(color) {
			s.board.UndoMove(prevPiece, start, end, captured)
			continue
		}

		score := -s.negamax(depth-1, -beta, -alpha, 1)
		s.board.UndoMove(prevPiece, start, end, captured)

		if s.timeUp() && i > 0 {
			return best, true
		}

		if score > bestScore || best == types.MoveNone {
			bestScore = score
			best = mv
		}
		if score > alpha {
			alpha = score
		}
	}
	return best, false
}

// orderedRootMoves returns the legal moves at the root, with the
// previous iteration's best move (if still legal) tried first.
func (s *Search) orderedRootMoves() []types.Move {
	legal := s.gen.GenerateLegal(s.board)
	moves := make([]types.Move, legal.Len())
	copy(moves, legal.Slice())
	if s.pvMove != types.MoveNone {
		for i, mv := range moves {
			if mv == s.pvMove {
				moves[0], moves[i] = moves[i], moves[0]
				break
			}
		}
	}
	return moves
}

// negamax searches one node at the given depth with a fail-hard
// alpha-beta window (a cutoff returns beta, otherwise alpha), returning the score from the side-to-move's
// perspective. ply counts half-moves from the search root, used for
// mate-distance scoring and killer-move indexing.
func (s *Search) negamax(depth int, alpha, beta int32, ply int) int32 {
	s.stats.Nodes++

	if s.isEngineDraw() {
		return int32(types.ValueDraw)
	}
	if depth <= 0 {
		return s.quiescence(alpha, beta, ply)
	}
	if s.timeUp() {
		return evaluator.Evaluate(s.board) * int32(s.board.SideToMove())
	}

	color := s.board.SideToMove()
	alphaOrig := alpha

	hashKey := s.board.Hash()
	if config.Settings.Search.UseTT {
		if entry, ok := s.tt.Probe(hashKey); ok {
			s.stats.TTHits++
			if int(entry.Depth) >= depth {
				v := int32(entry.Value)
				switch entry.Bound {
				case transpositiontable.BoundExact:
					return v
				case transpositiontable.BoundLower:
					if v > alpha {
						alpha = v
					}
				case transpositiontable.BoundUpper:
					if v < beta {
						beta = v
					}
				}
				if alpha >= beta {
					return v
				}
			}
		}
	}

	if s.tryNullMove(depth, beta, ply, color) {
		return beta
	}

	moves := s.orderedMoves(ply)
	legalCount := 0
	var bestMove types.Move
	bestScore := -int32(types.ValueInf)

	for i := 0; i < len(moves); i++ {
		mv := moves[i]
		start, end := mv.From(), mv.To()
		prevPiece := s.board.PieceAt(start)
		captured := s.board.PerformMove(mv.PieceID(), start, end)

		if s.board.IsInCheck(color) {
			s.board.UndoMove(prevPiece, start, end, captured)
			continue
		}
		legalCount++

		score := -s.negamax(depth-1, -beta, -alpha, ply+1)
		s.board.UndoMove(prevPiece, start, end, captured)

		if score > bestScore {
			bestScore = score
			bestMove = mv
		}

		if score >= beta {
			s.stats.BetaCutoffs++
			if !isCapture(mv, captured) {
				s.hist.RecordKiller(ply, mv)
				s.hist.RecordCutoff(color, start, end, depth)
			}
			s.storeTT(hashKey, mv, beta, depth, transpositiontable.BoundLower)
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	if legalCount == 0 {
		if s.board.IsInCheck(color) {
			return -(int32(types.MateValue) - int32(ply))
		}
		return int32(types.ValueDraw)
	}

	bound := transpositiontable.BoundExact
	if alpha <= alphaOrig {
		bound = transpositiontable.BoundUpper
	}
	s.storeTT(hashKey, bestMove, alpha, depth, bound)
	return alpha
}

func (s *Search) storeTT(key uint64, mv types.Move, value int32, depth int, bound transpositiontable.Bound) {
	if !config.Settings.Search.UseTT {
		return
	}
	s.tt.Store(key, mv, int16(value), int16(value), int8(depth), bound)
}

// tryNullMove attempts a reduced-depth null-move search and reports
// whether it produced a beta cutoff. It is skipped when disabled, when
// color is in check, and below NullMoveMinDepth. It does not tell PV
// from non-PV nodes and does not check the remaining material.
func (s *Search) tryNullMove(depth int, beta int32, ply int, color types.Color) bool {
	if !config.Settings.Search.UseNullMove {
		return false
	}
	if depth < config.Settings.Search.NullMoveMinDepth {
		return false
	}
	if s.board.IsInCheck(color) {
		return false
	}
	s.board.PerformNullMove()
	reduced := depth - 1 - config.Settings.Search.NullMoveReduction
	score := -s.negamax(reduced, -beta, -beta+1, ply+1)
	s.board.UndoNullMove()
	return score >= beta
}

// quiescence extends the search with captures only until a quiet
// position is reached, using the static evaluation as a lower bound
// (stand-pat).
func (s *Search) quiescence(alpha, beta int32, ply int) int32 {
	s.stats.Nodes++
	s.stats.QNodes++

	color := s.board.SideToMove()
	standPat := evaluator.Evaluate(s.board) * int32(color)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	captures := s.gen.GenerateLegalCaptures(s.board)
	list := make([]types.Move, captures.Len())
	copy(list, captures.Slice())
	orderByCaptureValue(s.board, list)

	for _, mv := range list {
		start, end := mv.From(), mv.To()
		prevPiece := s.board.PieceAt(start)
		captured := s.board.PerformMove(mv.PieceID(), start, end)

		if s.board.IsInCheck(color) {
			s.board.UndoMove(prevPiece, start, end, captured)
			continue
		}

		score := -s.quiescence(-beta, -alpha, ply+1)
		s.board.UndoMove(prevPiece, start, end, captured)

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// isEngineDraw reports the search-level draw condition: one repetition
// already seen in the position history, or the fifty-move rule.
func (s *Search) isEngineDraw() bool {
	if s.board.HalfMoveClock() >= 100 {
		return true
	}
	return s.board.HasRepeated()
}

func isCapture(mv types.Move, captured types.PieceType) bool {
	return captured != types.PtNone
}
