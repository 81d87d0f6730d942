// Package uci implements the engine's outer boundary: a line-oriented
// command loop speaking the Universal Chess Interface protocol. Every
// FEN/UCI-move string crosses into engine-native types exactly once,
// here; nothing downstream ever sees UCI notation again.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/corvidchess/gambit/internal/config"
	"github.com/corvidchess/gambit/internal/logging"
	"github.com/corvidchess/gambit/internal/movegen"
	"github.com/corvidchess/gambit/internal/position"
	"github.com/corvidchess/gambit/internal/search"
	"github.com/corvidchess/gambit/internal/types"
)

// EngineName and Author identify the engine in the "uci" handshake.
const (
	EngineName = "Gambit"
	Author     = "the corvidchess project"
)

var regexWhiteSpace = regexp.MustCompile(`\s+`)

// Handler owns the current position and search instance, and drives the
// UCI command loop. Its In/Out streams are exported so tests can drive
// it without touching stdin/stdout.
type Handler struct {
	In  *bufio.Scanner
	Out io.Writer

	board  *position.Board
	gen    *movegen.Generator
	engine *search.Search
}

// NewHandler returns a Handler reading from in and writing to out, with
// a fresh starting position.
func NewHandler(in io.Reader, out io.Writer) *Handler {
	board := position.NewBoard()
	h := &Handler{
		In:     bufio.NewScanner(in),
		Out:    out,
		board:  board,
		gen:    movegen.NewGenerator(),
		engine: search.New(board),
	}
	return h
}

// Loop reads and dispatches commands until "quit" or EOF.
func (h *Handler) Loop() {
	for h.In.Scan() {
		if h.dispatch(h.In.Text()) {
			return
		}
	}
}

func (h *Handler) send(line string) {
	fmt.Fprintln(h.Out, line)
}

// dispatch handles one input line and reports whether the loop should
// terminate (the "quit" command).
func (h *Handler) dispatch(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	tokens := regexWhiteSpace.Split(line, -1)
	log := logging.GetLog()
	log.Debugf("<< %s", line)

	switch tokens[0] {
	case "quit":
		return true
	case "uci":
		h.uciCommand()
	case "isready":
		h.send("readyok")
	case "ucinewgame":
		h.board = position.NewBoard()
		h.engine = search.New(h.board)
	case "position":
		h.positionCommand(tokens)
	case "go":
		h.goCommand(tokens)
	case "perft":
		h.perftCommand(tokens)
	case "stop":
		// Single-threaded search already returns by the time the next
		// line is read; nothing to signal.
	case "setoption":
		// Ignored: the Hash and OwnBook options that uciCommand
		// advertises keep their config.toml values.
	default:
		log.Warningf("unknown command: %s", line)
	}
	return false
}

func (h *Handler) uciCommand() {
	h.send("id name " + EngineName)
	h.send("id author " + Author)
	h.send(fmt.Sprintf("option name Hash type spin default %d min 1 max 4096", config.Settings.Search.TTSizeMB))
	h.send(fmt.Sprintf("option name OwnBook type check default %v", config.Settings.Search.UseBook))
	h.send("uciok")
}

// positionCommand handles `position [startpos|fen <fen>] [moves <m1> ...]`.
func (h *Handler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		return
	}
	i := 1
	var fen string
	switch tokens[i] {
	case "startpos":
		fen = position.StartFEN
		i++
	case "fen":
		i++
		var b strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(tokens[i])
			i++
		}
		fen = b.String()
	default:
		logging.GetLog().Warningf("position: malformed command %v", tokens)
		return
	}

	board := position.NewBoard()
	if err := board.SetFEN(fen); err != nil {
		logging.GetLog().Warningf("position: invalid fen %q: %v", fen, err)
		return
	}
	h.board = board
	h.engine = search.New(h.board)

	if i < len(tokens) && tokens[i] == "moves" {
		i++
		for ; i < len(tokens); i++ {
			mv, promo, ok := parseUciMove(h.board, h.gen, tokens[i])
			if !ok {
				logging.GetLog().Warningf("position: illegal move %q", tokens[i])
				return
			}
			pid := mv.PieceID()
			if promo != types.PtNone {
				pid = promo
			}
			h.board.PerformMove(pid, mv.From(), mv.To())
		}
	}
}

// parseUciMove resolves a UCI move string against the side to move's
// legal moves, so an illegal or malformed string is rejected rather
// than blindly executed.
func parseUciMove(b *position.Board, gen *movegen.Generator, s string) (types.Move, types.PieceType, bool) {
	if len(s) < 4 {
		return types.MoveNone, types.PtNone, false
	}
	from := types.MakeSquare(s[0:2])
	to := types.MakeSquare(s[2:4])
	if !from.IsValid() || !to.IsValid() {
		return types.MoveNone, types.PtNone, false
	}
	promo := types.PtNone
	if len(s) == 5 {
		promo = promoFromChar(s[4])
		if promo == types.PtNone {
			return types.MoveNone, types.PtNone, false
		}
	}

	legal := gen.GenerateLegal(b)
	for i := 0; i < legal.Len(); i++ {
		mv := legal.At(i)
		if mv.From() != from || mv.To() != to {
			continue
		}
		if promo != types.PtNone && mv.PieceID() != promo {
			continue
		}
		return mv, promo, true
	}
	return types.MoveNone, types.PtNone, false
}

var promoChars = map[byte]types.PieceType{
	'q': types.Queen,
	'r': types.Rook,
	'b': types.Bishop,
	'n': types.Knight,
}

func promoFromChar(c byte) types.PieceType {
	if pt, ok := promoChars[c]; ok {
		return pt
	}
	return types.PtNone
}

// goCommand handles `go [depth N] [movetime MS] [wtime MS] [btime MS]
// [winc MS] [binc MS] [movestogo N]`.
func (h *Handler) goCommand(tokens []string) {
	minDepth, maxDepth := 1, 64
	timeLimit := time.Duration(config.Settings.Search.MinMoveTimeMs) * time.Millisecond

	color := h.board.SideToMove()
	var myTime, myInc time.Duration
	movesToGo := 30

	for i := 1; i < len(tokens); i++ {
		switch tokens[i] {
		case "depth":
			i++
			if d, err := strconv.Atoi(tokens[i]); err == nil {
				minDepth, maxDepth = d, d
			}
		case "movetime":
			i++
			if ms, err := strconv.Atoi(tokens[i]); err == nil {
				timeLimit = time.Duration(ms) * time.Millisecond
			}
		case "wtime":
			i++
			if ms, err := strconv.Atoi(tokens[i]); err == nil && color == types.White {
				myTime = time.Duration(ms) * time.Millisecond
			}
		case "btime":
			i++
			if ms, err := strconv.Atoi(tokens[i]); err == nil && color == types.Black {
				myTime = time.Duration(ms) * time.Millisecond
			}
		case "winc":
			i++
			if ms, err := strconv.Atoi(tokens[i]); err == nil && color == types.White {
				myInc = time.Duration(ms) * time.Millisecond
			}
		case "binc":
			i++
			if ms, err := strconv.Atoi(tokens[i]); err == nil && color == types.Black {
				myInc = time.Duration(ms) * time.Millisecond
			}
		case "movestogo":
			i++
			if n, err := strconv.Atoi(tokens[i]); err == nil && n > 0 {
				movesToGo = n
			}
		case "infinite":
			minDepth, maxDepth = 1, 64
			timeLimit = 24 * time.Hour
		}
	}

	if myTime > 0 {
		budget := myTime/time.Duration(movesToGo) + myInc
		if budget > timeLimit {
			timeLimit = budget
		}
	}

	best := h.engine.FindBestMove(minDepth, maxDepth, timeLimit, config.Settings.Search.UseBook)
	isPromotion := best.PieceID() != h.board.PieceAt(best.From()).TypeOf()
	h.send("bestmove " + best.StringUci(isPromotion))
}

// perftCommand handles `perft N`, reporting the node count and the time
// taken, matching the standard perft-test console contract.
func (h *Handler) perftCommand(tokens []string) {
	depth := 4
	if len(tokens) > 1 {
		if d, err := strconv.Atoi(tokens[1]); err == nil {
			depth = d
		}
	}
	start := time.Now()
	nodes := movegen.Perft(h.board, depth)
	elapsed := time.Since(start)
	h.send(fmt.Sprintf("info string perft depth %d nodes %d time %d nps %d",
		depth, nodes, elapsed.Milliseconds(), nps(nodes, elapsed)))
}

func nps(nodes uint64, elapsed time.Duration) uint64 {
	if elapsed <= 0 {
		return 0
	}
	return uint64(float64(nodes) / elapsed.Seconds())
}
