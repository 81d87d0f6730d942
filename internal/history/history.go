// Package history holds the two move-ordering heuristics search uses to
// try promising quiet moves before the rest of the position's pseudo-
// legal moves are explored: killer moves (recent cutoff moves, indexed
// by ply) and the history table (cumulative cutoff weight per
// color/from/to triple).
package history

import "github.com/corvidchess/gambit/internal/types"

// killerSlots is the number of killer moves tracked per ply.
const killerSlots = 2

// historyMax bounds the history table before it is halved, preventing
// overflow across a long search.
const historyMax = 1 << 20

// Table holds killer and history move-ordering state for one search.
// A fresh Table is created per `ucinewgame` / per search root so stale
// entries from an unrelated position never leak into ordering.
type Table struct {
	killers [maxPly][killerSlots]types.Move
	hist    [types.ColorLength][types.SqLength][types.SqLength]int32
}

// maxPly bounds the killer table; deeper than any realistic search horizon.
const maxPly = 128

// NewTable returns a zeroed move-ordering table.
func NewTable() *Table {
	return &Table{}
}

// Clear resets all killer and history state without reallocating.
func (t *Table) Clear() {
	for ply := range t.killers {
		t.killers[ply] = [killerSlots]types.Move{}
	}
	for c := range t.hist {
		for f := range t.hist[c] {
			t.hist[c][f] = [types.SqLength]int32{}
		}
	}
}

// Killers returns the two killer moves recorded for ply.
func (t *Table) Killers(ply int) (types.Move, types.Move) {
	k := &t.killers[ply]
	return k[0], k[1]
}

// RecordKiller inserts mv as the newest killer for ply, evicting the
// older of the two slots. Duplicate inserts are no-ops.
func (t *Table) RecordKiller(ply int, mv types.Move) {
	k := &t.killers[ply]
	if k[0] == mv {
		return
	}
	k[1] = k[0]
	k[0] = mv
}

// HistoryScore returns the accumulated cutoff weight for color's
// from->to quiet move.
func (t *Table) HistoryScore(c types.Color, from, to types.Square) int32 {
	return t.hist[c.Index()][from][to]
}

// RecordCutoff increments the history weight for a cutoff at the given
// depth, halving the whole table if the increment would risk overflow.
func (t *Table) RecordCutoff(c types.Color, from, to types.Square, depth int) {
	delta := int32(depth * depth)
	if t.hist[c.Index()][from][to]+delta >= historyMax {
		t.halve()
	}
	t.hist[c.Index()][from][to] += delta
}

func (t *Table) halve() {
	for c := range t.hist {
		for f := range t.hist[c] {
			for s := range t.hist[c][f] {
				t.hist[c][f][s] /= 2
			}
		}
	}
}
