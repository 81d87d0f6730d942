// Package transpositiontable implements a fixed-size, open-addressed
// hash table caching search results keyed by Zobrist hash. Collisions
// evict the occupant unconditionally (always-replace), matching the
// "fixed-size open-addressed array" the design calls for; there is no
// chaining and no resize.
package transpositiontable

import (
	"github.com/corvidchess/gambit/internal/types"
)

// Bound describes whether a cached Value is exact or a bound produced
// by an alpha-beta cutoff.
type Bound uint8

const (
	BoundNone Bound = iota
	BoundExact
	BoundLower // fail-high: true value >= stored value
	BoundUpper // fail-low: true value <= stored value
)

// Entry is one 24-byte transposition table slot.
type Entry struct {
	Key   uint64
	Move  types.Move
	Value int16
	Eval  int16
	Depth int8
	Bound Bound
}

const entrySize = 24

// Table is a fixed-size array of Entry, indexed by hash modulo slot
// count. Resizing requires rebuilding the table (done via NewTable).
type Table struct {
	entries []Entry
	mask    uint64
}

// NewTable allocates a table sized to approximately sizeMB megabytes,
// rounded down to the nearest power of two slot count.
func NewTable(sizeMB int) *Table {
	bytes := uint64(sizeMB) * 1024 * 1024
	slots := bytes / entrySize
	size := uint64(1)
	for size*2 <= slots {
		size *= 2
	}
	if size == 0 {
		size = 1
	}
	return &Table{
		entries: make([]Entry, size),
		mask:    size - 1,
	}
}

func (t *Table) index(key uint64) uint64 {
	return key & t.mask
}

// Probe returns the entry in key's slot and whether its stored Key equals
// key. An empty slot holds Key 0, so a probe for key 0 reports a hit on
// an empty entry (Depth 0, BoundNone); a real Hash() of 0 is vanishingly
// rare.
func (t *Table) Probe(key uint64) (Entry, bool) {
	e := t.entries[t.index(key)]
	return e, e.Key == key
}

// Store writes an entry, unconditionally replacing whatever previously
// occupied that slot.
func (t *Table) Store(key uint64, mv types.Move, value, eval int16, depth int8, bound Bound) {
	t.entries[t.index(key)] = Entry{
		Key:   key,
		Move:  mv,
		Value: value,
		Eval:  eval,
		Depth: depth,
		Bound: bound,
	}
}

// Clear empties the table, used by `ucinewgame`.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
}

// Len returns the number of slots in the table.
func (t *Table) Len() int {
	return len(t.entries)
}
