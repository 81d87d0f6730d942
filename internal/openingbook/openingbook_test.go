package openingbook

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/gambit/internal/types"
)

func writeBookFile(t *testing.T, dir, name string, entries []bookEntry) string {
	t.Helper()
	var buf []byte
	for _, e := range entries {
		hdr := make([]byte, 12)
		binary.LittleEndian.PutUint32(hdr[0:], e.hashLow)
		binary.LittleEndian.PutUint32(hdr[4:], e.hashHigh)
		binary.LittleEndian.PutUint32(hdr[8:], uint32(len(e.moves)))
		buf = append(buf, hdr...)
		for _, mv := range e.moves {
			mb := make([]byte, 4)
			binary.LittleEndian.PutUint32(mb, uint32(mv))
			buf = append(buf, mb...)
		}
	}
	path := filepath.Join(dir, name)
	assert.NoError(t, os.WriteFile(path, buf, 0o644))
	return path
}

func TestLoadAndLookup(t *testing.T) {
	dir := t.TempDir()
	mv := types.CreateMove(types.MakeSquare("e2"), types.MakeSquare("e4"), types.Pawn)
	hash := uint64(0x0102030405060708)
	writeBookFile(t, dir, "ply3.book", []bookEntry{
		{hashLow: uint32(hash), hashHigh: uint32(hash >> 32), moves: []types.Move{mv}},
	})

	b := NewBook()
	assert.NoError(t, b.Load(dir, 20))

	got, ok := b.Lookup(hash, 3)
	assert.True(t, ok)
	assert.Equal(t, mv, got)

	_, ok = b.Lookup(hash, 4)
	assert.False(t, ok, "entry from ply3.book must not leak into an adjacent ply")
}

func TestLookupMissOnUnknownHash(t *testing.T) {
	dir := t.TempDir()
	b := NewBook()
	assert.NoError(t, b.Load(dir, 20))
	_, ok := b.Lookup(0xFFFFFFFFFFFFFFFF, 1)
	assert.False(t, ok)
}

func TestLookupMissPastBookHorizon(t *testing.T) {
	dir := t.TempDir()
	b := NewBook()
	assert.NoError(t, b.Load(dir, 5))
	_, ok := b.Lookup(1, 99)
	assert.False(t, ok)
}

func TestLoadSkipsFilesWithUnparseablePly(t *testing.T) {
	dir := t.TempDir()
	mv := types.CreateMove(types.MakeSquare("d2"), types.MakeSquare("d4"), types.Pawn)
	hash := uint64(42)
	writeBookFile(t, dir, "book.book", []bookEntry{
		{hashLow: uint32(hash), hashHigh: uint32(hash >> 32), moves: []types.Move{mv}},
	})

	b := NewBook()
	assert.NoError(t, b.Load(dir, 20))
	for ply := 0; ply <= 20; ply++ {
		_, ok := b.Lookup(hash, ply)
		assert.False(t, ok, "file with no parseable ply must not be bucketed anywhere")
	}
}

func TestPlyFromFilename(t *testing.T) {
	ply, ok := plyFromFilename("ply0.book")
	assert.True(t, ok)
	assert.Equal(t, 0, ply)

	ply, ok = plyFromFilename("ply17.book")
	assert.True(t, ok)
	assert.Equal(t, 17, ply)

	_, ok = plyFromFilename("book.book")
	assert.False(t, ok)
}
