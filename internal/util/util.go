// Package util provides small standalone helpers shared by the rest of
// the engine (file resolution, nodes-per-second arithmetic, memory
// stats) that don't warrant their own package.
package util

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var out = message.NewPrinter(language.English)

// ResolveFile resolves a possibly-relative path to a file, checking (in
// order) the path as given, relative to the working directory, relative
// to the running executable, and relative to the user's home directory.
func ResolveFile(file string) (string, error) {
	file = filepath.Clean(file)

	if filepath.IsAbs(file) {
		if fileExists(file) {
			return file, nil
		}
		return file, fmt.Errorf("file not found: %s", file)
	}

	if dir, err := os.Getwd(); err == nil {
		if candidate := filepath.Join(dir, file); fileExists(candidate) {
			return candidate, nil
		}
	}
	if exe, err := os.Executable(); err == nil {
		if candidate := filepath.Join(filepath.Dir(exe), file); fileExists(candidate) {
			return candidate, nil
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		if candidate := filepath.Join(home, file); fileExists(candidate) {
			return candidate, nil
		}
	}
	return file, errors.New("file not found: " + file)
}

func fileExists(name string) bool {
	info, err := os.Stat(name)
	return err == nil && info.Mode().IsRegular()
}

// Nps computes nodes per second from a node count and elapsed duration,
// guarding against division by zero for sub-nanosecond durations.
func Nps(nodes uint64, elapsed time.Duration) uint64 {
	return uint64(int64(nodes) * time.Second.Nanoseconds() / (elapsed.Nanoseconds() + 1))
}

// MemStat renders current heap/GC statistics for diagnostic logging.
func MemStat() string {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	return out.Sprintf("alloc=%d totalAlloc=%d heapObjects=%d numGC=%d",
		mem.Alloc, mem.TotalAlloc, mem.HeapObjects, mem.NumGC)
}

// Abs returns the absolute value of n.
func Abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Max returns the larger of x and y.
func Max(x, y int) int {
	if x > y {
		return x
	}
	return y
}

// Min returns the smaller of x and y.
func Min(x, y int) int {
	if x < y {
		return x
	}
	return y
}
