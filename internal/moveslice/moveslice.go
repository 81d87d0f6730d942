// Package moveslice provides a fixed-capacity move buffer used by the
// move generator on its hot path: one instance lives per search ply and
// is cleared and refilled instead of being reallocated.
package moveslice

import "github.com/corvidchess/gambit/internal/types"

// MoveSlice is a fixed-capacity (types.MaxMoves) buffer of moves with an
// explicit length, avoiding any allocation once constructed.
type MoveSlice struct {
	moves [types.MaxMoves]types.Move
	len   int
}

// Clear resets the buffer to empty without reallocating.
func (m *MoveSlice) Clear() {
	m.len = 0
}

// Len returns the number of moves currently stored.
func (m *MoveSlice) Len() int {
	return m.len
}

// Push appends a move to the buffer. Callers are expected to respect
// types.MaxMoves; no reachable chess position exceeds it.
func (m *MoveSlice) Push(mv types.Move) {
	m.moves[m.len] = mv
	m.len++
}

// At returns the move at index i.
func (m *MoveSlice) At(i int) types.Move {
	return m.moves[i]
}

// Set overwrites the move at index i, used by move-ordering sorts.
func (m *MoveSlice) Set(i int, mv types.Move) {
	m.moves[i] = mv
}

// Swap exchanges the moves at indices i and j.
func (m *MoveSlice) Swap(i, j int) {
	m.moves[i], m.moves[j] = m.moves[j], m.moves[i]
}

// Slice returns the populated prefix as a plain slice, for range loops
// and sort.Interface adapters. It aliases the underlying array.
func (m *MoveSlice) Slice() []types.Move {
	return m.moves[:m.len]
}
