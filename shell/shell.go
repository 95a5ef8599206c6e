// Package shell is the interactive front end: it reads lines, drives the
// round state machine, and prints boards. All game legality lives below it;
// the shell only translates text to positions and errors back to text.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/domino14/pegthing/automatic"
	"github.com/domino14/pegthing/board"
	"github.com/domino14/pegthing/config"
	"github.com/domino14/pegthing/game"
	"github.com/domino14/pegthing/move"
)

// MaxRows is the biggest board the single-letter input scheme can address
// (T(6) = 21 <= 26 positions; T(7) = 28 would run out of letters).
const MaxRows = 6

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	game *game.Game
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mpegthing>\033[0m ",
		HistoryFile:     "/tmp/pegthing_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{l: l, cfg: cfg}
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.l.Stderr())
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// newGameRows parses the optional argument of the `new` command and guards
// the letter-scheme cap.
func newGameRows(line string, defaultRows int) (int, error) {
	fields := strings.Fields(line)
	rows := defaultRows
	if len(fields) > 2 {
		return 0, errors.New("usage: new [rows]")
	}
	if len(fields) == 2 {
		var err error
		rows, err = strconv.Atoi(fields[1])
		if err != nil {
			return 0, fmt.Errorf("rows must be a number, got %q", fields[1])
		}
	}
	if rows < 1 || rows > MaxRows {
		return 0, fmt.Errorf("rows must be between 1 and %d (only %d letters to name positions with)",
			MaxRows, board.MaxLetterPositions)
	}
	return rows, nil
}

// autoplayArgs parses `autoplay <numgames> [threads]`.
func autoplayArgs(line string) (numGames, threads int, err error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || len(fields) > 3 {
		return 0, 0, errors.New("usage: autoplay <numgames> [threads]")
	}
	numGames, err = strconv.Atoi(fields[1])
	if err != nil || numGames < 1 {
		return 0, 0, fmt.Errorf("numgames must be a positive number, got %q", fields[1])
	}
	if len(fields) == 3 {
		threads, err = strconv.Atoi(fields[2])
		if err != nil || threads < 1 {
			return 0, 0, fmt.Errorf("threads must be a positive number, got %q", fields[2])
		}
	}
	return numGames, threads, nil
}

// movesText lists the legal jumps from a position in enterable form.
func movesText(b *board.Board, pos board.Position) string {
	vm := b.ValidMoves(pos)
	if len(vm) == 0 {
		return "no valid moves from there"
	}
	dests := make([]board.Position, 0, len(vm))
	for dest := range vm {
		dests = append(dests, dest)
	}
	sort.Slice(dests, func(i, j int) bool { return dests[i] < dests[j] })
	parts := make([]string, 0, len(dests))
	for _, dest := range dests {
		jl, _ := board.PosToLetter(vm[dest])
		parts = append(parts, fmt.Sprintf("%s (over %c)", move.New(pos, dest), jl))
	}
	return "valid moves: " + strings.Join(parts, ", ")
}

func (sc *ShellController) newGame(line string) {
	rows, err := newGameRows(line, sc.cfg.GetInt("rows"))
	if err != nil {
		sc.showError(err)
		return
	}
	g, err := game.NewGame(rows)
	if err != nil {
		sc.showError(err)
		return
	}
	sc.game = g
	sc.showMessage(g.ToDisplayText())
}

// handleEntry deals with bare letter input: a single letter is the hole
// choice, a letter pair is a move.
func (sc *ShellController) handleEntry(line string) {
	if sc.game == nil {
		sc.showError(errors.New("start a game first with the `new` command"))
		return
	}
	switch sc.game.State() {
	case game.StateAwaitingHoleChoice:
		pos, err := move.ParsePosition(line)
		if err != nil {
			sc.showError(err)
			return
		}
		if err := sc.game.ChooseHole(pos); err != nil {
			sc.showError(err)
			return
		}
	case game.StatePlaying:
		m, err := move.Parse(line)
		if err != nil {
			sc.showError(err)
			return
		}
		if err := sc.game.PlayMove(m); err != nil {
			// Invalid moves change nothing; just reprompt.
			sc.showError(err)
			return
		}
	default:
		sc.showError(errors.New("the round is over; start another with `new`"))
		return
	}
	sc.showMessage(sc.game.ToDisplayText())
}

func (sc *ShellController) moves(line string) {
	if sc.game == nil {
		sc.showError(errors.New("start a game first with the `new` command"))
		return
	}
	fields := strings.Fields(line)
	if len(fields) != 2 {
		sc.showError(errors.New("usage: moves <position letter>"))
		return
	}
	pos, err := move.ParsePosition(fields[1])
	if err != nil {
		sc.showError(err)
		return
	}
	sc.showMessage(movesText(sc.game.Board(), pos))
}

func (sc *ShellController) autoplay(line string) {
	numGames, threads, err := autoplayArgs(line)
	if err != nil {
		sc.showError(err)
		return
	}
	if threads == 0 {
		threads = sc.cfg.GetInt("threads")
	}
	rows := sc.cfg.GetInt("rows")
	if sc.game != nil {
		rows = sc.game.Board().Rows()
	}
	summary, err := automatic.StartAutoplayGames(context.Background(), rows,
		numGames, threads, sc.cfg.GetString("autoplay-log"))
	if err != nil {
		sc.showError(err)
		return
	}
	sc.showMessage(summary.Report())
}

func (sc *ShellController) standardModeSwitch(line string, sig chan os.Signal) error {
	switch {
	case strings.HasPrefix(line, "new"):
		sc.newGame(line)

	// no single-letter alias for show: bare letters are game input
	case line == "show":
		if sc.game == nil {
			sc.showError(errors.New("start a game first with the `new` command"))
			break
		}
		sc.showMessage(sc.game.ToDisplayText())

	case strings.HasPrefix(line, "moves"):
		sc.moves(line)

	case line == "score":
		if sc.game == nil {
			sc.showError(errors.New("start a game first with the `new` command"))
			break
		}
		sc.showMessage(fmt.Sprintf("%d pegs on the board (%s)",
			sc.game.Score(), sc.game.State()))

	case strings.HasPrefix(line, "autoplay"):
		sc.autoplay(line)

	case line == "bye" || line == "exit":
		sig <- syscall.SIGINT
		return errors.New("sending quit signal")

	case strings.HasPrefix(line, "help"):
		usage(sc.l.Stderr())

	case isLetterEntry(line):
		sc.handleEntry(line)

	default:
		if strings.TrimSpace(line) != "" {
			log.Debug().Msgf("you said: %v", strconv.Quote(line))
			sc.showMessage("unknown command; try `help`")
		}
	}
	return nil
}

// isLetterEntry is true for the bare inputs the game prompt expects: one
// letter (hole choice) or two (a move).
func isLetterEntry(line string) bool {
	if len(line) != 1 && len(line) != 2 {
		return false
	}
	for _, r := range line {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if err := sc.standardModeSwitch(line, sig); err != nil {
			break
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}
