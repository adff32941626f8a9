// Package uci implements the UCI line protocol around the chess core.
// It owns stdin/stdout framing, the opening book
// cursor, the CSV game log, and the time-to-depth policy, while
// chess.Board/chess.Search carry the actual position and tree search.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	logging "github.com/op/go-logging"

	"walrus-bot/chess"
	"walrus-bot/internal/book"
	"walrus-bot/internal/gamelog"
)

var whitespace = regexp.MustCompile(`\s+`)

// Handler owns one UCI session: the live board, the opening book, the
// game log sink, and the configured default search depth.
type Handler struct {
	In  *bufio.Scanner
	Out io.Writer
	Log *logging.Logger

	Book    *book.Book
	Game    *gamelog.Writer
	Board   *chess.Board
	played  []string // long-algebraic moves applied so far this game, for book lookups

	DefaultDepth int
	stop         bool
}

// NewHandler wires a Handler around the given I/O streams.
func NewHandler(in io.Reader, out io.Writer, log *logging.Logger, b *book.Book, g *gamelog.Writer, defaultDepth int) *Handler {
	return &Handler{
		In:           bufio.NewScanner(in),
		Out:          out,
		Log:          log,
		Book:         b,
		Game:         g,
		Board:        chess.NewBoard(),
		DefaultDepth: defaultDepth,
	}
}

// Loop reads UCI commands until quit/exit/end or end of input. A
// fatal core error (an IllegalApply from Apply during search)
// surfaces as a panic from deep inside search; that's an
// acceptable way to abort, so Loop reports it and exits nonzero
// rather than resume from inconsistent state.
func (h *Handler) Loop() {
	defer h.recoverFatal()
	for h.In.Scan() {
		if h.dispatch(h.In.Text()) {
			return
		}
	}
}

func (h *Handler) recoverFatal() {
	r := recover()
	if r == nil {
		return
	}
	if h.Log != nil {
		h.Log.Errorf("fatal core error: %v", r)
	}
	fmt.Fprintln(os.Stderr, "walrus-bot: fatal core error:", r)
	os.Exit(1)
}

func (h *Handler) dispatch(line string) (quit bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if h.Log != nil {
		h.Log.Infof("<< %s", line)
	}

	tokens := whitespace.Split(line, -1)
	switch tokens[0] {
	case "quit", "exit", "end":
		return true
	case "uci":
		h.handleUCI()
	case "setoption":
		h.handleSetOption(tokens)
	case "isready":
		h.send("readyok")
	case "ucinewgame":
		h.handleNewGame()
	case "position":
		h.handlePosition(tokens)
	case "go":
		h.handleGo(tokens)
	case "stop":
		h.stop = true
	case "print":
		h.send(h.Board.PrettyPrint(false))
	default:
		if h.Log != nil {
			h.Log.Warningf("unknown command: %s", line)
		}
	}
	return false
}

func (h *Handler) handleUCI() {
	h.send("id name walrus-bot")
	h.send("id author the walrus-bot authors")
	h.send(fmt.Sprintf("option name MaxDepth type spin default %d min 1 max 10", h.DefaultDepth))
	h.send("uciok")
}

func (h *Handler) handleSetOption(tokens []string) {
	// setoption name MaxDepth value V
	if len(tokens) < 5 || tokens[1] != "name" || tokens[2] != "MaxDepth" || tokens[3] != "value" {
		return
	}
	v, err := strconv.Atoi(tokens[4])
	if err != nil {
		if h.Log != nil {
			h.Log.Warningf("bad MaxDepth value: %s", tokens[4])
		}
		return
	}
	h.DefaultDepth = v
}

func (h *Handler) handleNewGame() {
	h.Board = chess.NewBoard()
	h.played = nil
	h.DefaultDepth = chess.DefaultDepth
}

func (h *Handler) handlePosition(tokens []string) {
	if len(tokens) < 2 {
		h.sendInfoString("malformed position command")
		return
	}

	i := 1
	var b *chess.Board
	var err error
	switch tokens[i] {
	case "startpos":
		b = chess.NewBoard()
		i++
	case "fen":
		i++
		var fenFields []string
		for i < len(tokens) && tokens[i] != "moves" {
			fenFields = append(fenFields, tokens[i])
			i++
		}
		b, err = chess.NewBoardFromFEN(strings.Join(fenFields, " "))
		if err != nil {
			h.sendInfoString(err.Error())
			return
		}
	default:
		h.sendInfoString("malformed position command")
		return
	}

	h.Board = b
	h.played = nil

	if i < len(tokens) && tokens[i] == "moves" {
		i++
		for ; i < len(tokens); i++ {
			m, err := chess.ParseAndApply(h.Board, tokens[i])
			if err != nil {
				h.sendInfoString(fmt.Sprintf("invalid move %q: %s", tokens[i], err))
				return
			}
			h.played = append(h.played, m)
		}
	}
}

func (h *Handler) handleGo(tokens []string) {
	h.stop = false

	limits := parseGoLimits(tokens)

	if bookMove, ok := h.Book.Lookup(h.played); ok {
		h.send(fmt.Sprintf("bestmove %s", bookMove))
		h.applyPlayed(bookMove)
		return
	}

	remaining := limits.whiteTime
	if !h.Board.WhiteToMove {
		remaining = limits.blackTime
	}
	if limits.depth > 0 {
		h.runSearch(limits.depth)
		return
	}
	depth := chess.PickDepth(remaining, h.Board.MoveNumber, h.DefaultDepth)
	h.runSearch(depth)
}

func (h *Handler) runSearch(depth int) {
	fenBefore := h.Board.FEN()
	start := time.Now()
	result := chess.SearchWithStop(h.Board, depth, &h.stop)
	elapsed := time.Since(start)

	pvMoves := strings.Fields(result.PV)
	if len(pvMoves) == 0 {
		h.sendInfoString("no legal moves")
		return
	}
	best := pvMoves[0]

	nps := uint64(0)
	if elapsed > 0 {
		nps = uint64(float64(result.Nodes) / elapsed.Seconds())
	}
	h.send(fmt.Sprintf("info depth %d time %d score %s nodes %d nps %d pv %s",
		result.Depth, elapsed.Milliseconds(), scoreToken(result.Score), result.Nodes, nps, result.PV))
	h.send(fmt.Sprintf("bestmove %s", best))

	if h.Game != nil {
		_ = h.Game.Record(gamelog.Row{
			Timestamp: time.Now().Format(time.RFC3339),
			FENBefore: fenBefore,
			Move:      best,
			Depth:     result.Depth,
			ScoreCP:   result.Score,
			Nodes:     result.Nodes,
			ElapsedMS: elapsed.Milliseconds(),
		})
	}

	h.applyPlayed(best)
}

// scoreToken renders a search score as either "cp C" or "mate N",
// using the mate-distance conversion: N = sign(score)
// * ceil((CHECKMATE - |score|) / 2).
func scoreToken(score int32) string {
	mag := score
	if mag < 0 {
		mag = -mag
	}
	if chess.Checkmate-mag > 100_000 {
		return fmt.Sprintf("cp %d", score)
	}
	plies := chess.Checkmate - mag
	n := (plies + 1) / 2
	if score < 0 {
		n = -n
	}
	return fmt.Sprintf("mate %d", n)
}

func (h *Handler) applyPlayed(uciMove string) {
	if _, err := chess.ParseAndApply(h.Board, uciMove); err != nil {
		if h.Log != nil {
			h.Log.Errorf("applying own move %q: %s", uciMove, err)
		}
		return
	}
	h.played = append(h.played, uciMove)
}

type goLimits struct {
	whiteTime, blackTime int
	depth                int
}

func parseGoLimits(tokens []string) goLimits {
	var l goLimits
	for i := 1; i < len(tokens); i++ {
		switch tokens[i] {
		case "wtime":
			if i+1 < len(tokens) {
				l.whiteTime, _ = strconv.Atoi(tokens[i+1])
				i++
			}
		case "btime":
			if i+1 < len(tokens) {
				l.blackTime, _ = strconv.Atoi(tokens[i+1])
				i++
			}
		case "depth":
			if i+1 < len(tokens) {
				l.depth, _ = strconv.Atoi(tokens[i+1])
				i++
			}
		case "winc", "binc", "movetime", "nodes", "mate":
			i++ // accepted but not used by the depth controller
		case "infinite":
			// handled by the caller leaving depth unset; the controller
			// falls back to the configured default
		}
	}
	return l
}

func (h *Handler) send(s string) {
	fmt.Fprintln(h.Out, s)
}

func (h *Handler) sendInfoString(msg string) {
	h.send("info string " + msg)
	if h.Log != nil {
		h.Log.Warning(msg)
	}
}
