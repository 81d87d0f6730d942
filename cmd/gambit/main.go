// Command gambit is a UCI chess engine. It reads commands on stdin and
// writes UCI protocol responses to stdout; everything else (logs,
// profiling) goes to stderr or separate files so it never pollutes the
// protocol stream.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvidchess/gambit/internal/config"
	"github.com/corvidchess/gambit/internal/logging"
	"github.com/corvidchess/gambit/internal/movegen"
	"github.com/corvidchess/gambit/internal/position"
	"github.com/corvidchess/gambit/internal/uci"
	"github.com/corvidchess/gambit/internal/util"
)

var out = message.NewPrinter(language.English)

func main() {
	versionInfo := flag.Bool("version", false, "print version info and exit")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level (critical|error|warning|notice|info|debug)")
	bookPath := flag.String("bookpath", "", "path to opening book directory, overrides config.toml")
	perftDepth := flag.Int("perft", 0, "run perft to the given depth on -fen (or the start position) and exit")
	fen := flag.String("fen", position.StartFEN, "fen used by -perft")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile of this run to ./cpu.pprof")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if *bookPath != "" {
		config.Settings.Search.BookPath = *bookPath
	}
	logging.GetLog()

	if *perftDepth != 0 {
		runPerft(*fen, *perftDepth)
		return
	}

	h := uci.NewHandler(os.Stdin, os.Stdout)
	h.Loop()
}

func runPerft(fen string, maxDepth int) {
	b := position.NewBoard()
	if err := b.SetFEN(fen); err != nil {
		fmt.Fprintln(os.Stderr, "invalid fen:", err)
		os.Exit(1)
	}
	for depth := 1; depth <= maxDepth; depth++ {
		start := time.Now()
		nodes := movegen.Perft(b, depth)
		elapsed := time.Since(start)
		out.Printf("depth %d: %d nodes in %s (%d nps)\n", depth, nodes, elapsed, util.Nps(nodes, elapsed))
	}
}

func printVersionInfo() {
	out.Println("gambit - a UCI chess engine")
	out.Printf("  Go version: %s\n", runtime.Version())
	out.Printf("  GOARCH/compiler: %s/%s\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  CPUs: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  working directory: %s\n", cwd)
}
