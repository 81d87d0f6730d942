// Package openingbook provides a read-only, Zobrist-hash-keyed lookup
// of book moves for the first few plies of a game. The on-disk layout
// is treated as an opaque binary format (per the external-interface
// boundary): the book is distributed as one slice file per ply, named
// "ply<N>.book", each a sequence of
// (hash_low32, hash_high32, move_count, move...) entries.
package openingbook

import (
	"encoding/binary"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/corvidchess/gambit/internal/logging"
	"github.com/corvidchess/gambit/internal/types"
)

type bookEntry struct {
	hashLow, hashHigh uint32
	moves             []types.Move
}

// Book is a read-only, ply-sliced opening book.
type Book struct {
	plies   [][]bookEntry
	maxPly  int
	loaded  bool
}

// NewBook returns an empty, unloaded Book.
func NewBook() *Book {
	return &Book{}
}

// Load reads every *.book file under dir concurrently (one slice file
// per ply, mirroring how the book is distributed on disk) and merges
// them into the ply-indexed table. Each file's ply is taken from its
// name, not derived from the entries it contains. Errors from
// individual files are logged and skipped; a book that fails to load
// entirely just results in every Lookup returning a miss.
func (b *Book) Load(dir string, maxPly int) error {
	log := logging.GetLog()

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Warningf("opening book: cannot read %s: %v", dir, err)
		return err
	}

	var files []string
	var plyOf []int
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".book" {
			continue
		}
		ply, ok := plyFromFilename(e.Name())
		if !ok {
			log.Warningf("opening book: skipping %s: cannot determine ply from filename", e.Name())
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
		plyOf = append(plyOf, ply)
	}

	results := make([][]bookEntry, len(files))
	var g errgroup.Group
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			parsed, err := parseBookFile(f)
			if err != nil {
				log.Warningf("opening book: skipping %s: %v", f, err)
				return nil
			}
			results[i] = parsed
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	b.plies = make([][]bookEntry, maxPly+1)
	for i, parsed := range results {
		ply := plyOf[i]
		if ply < 0 || ply > maxPly {
			continue
		}
		b.plies[ply] = append(b.plies[ply], parsed...)
	}
	b.maxPly = maxPly
	b.loaded = true
	return nil
}

// plyFromFilename extracts the ply a book slice file covers from its
// name, expected in the form "ply<N>.book" (e.g. "ply0.book",
// "ply12.book").
func plyFromFilename(name string) (int, bool) {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	n, ok := strings.CutPrefix(base, "ply")
	if !ok {
		return 0, false
	}
	ply, err := strconv.Atoi(n)
	if err != nil {
		return 0, false
	}
	return ply, true
}

// parseBookFile decodes one binary slice file into its entries.
func parseBookFile(path string) ([]bookEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out []bookEntry
	pos := 0
	for pos+12 <= len(data) {
		low := binary.LittleEndian.Uint32(data[pos:])
		high := binary.LittleEndian.Uint32(data[pos+4:])
		count := binary.LittleEndian.Uint32(data[pos+8:])
		pos += 12
		moves := make([]types.Move, 0, count)
		for i := uint32(0); i < count && pos+4 <= len(data); i++ {
			moves = append(moves, types.Move(binary.LittleEndian.Uint32(data[pos:])))
			pos += 4
		}
		out = append(out, bookEntry{hashLow: low, hashHigh: high, moves: moves})
	}
	return out, nil
}

// Lookup returns a uniformly random move among those tied for hash at
// ply, or (types.MoveNone, false) on a miss or once past the book
// horizon.
func (b *Book) Lookup(hash uint64, ply int) (types.Move, bool) {
	if !b.loaded || ply > b.maxPly || ply < 0 || ply >= len(b.plies) {
		return types.MoveNone, false
	}
	low := uint32(hash)
	high := uint32(hash >> 32)
	for _, e := range b.plies[ply] {
		if e.hashLow == low && e.hashHigh == high && len(e.moves) > 0 {
			return e.moves[rand.Intn(len(e.moves))], true
		}
	}
	return types.MoveNone, false
}
