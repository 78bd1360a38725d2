// Package shell is the interactive driver: it reads a rule variant,
// initializes (or loads) the tablebase for it, and plays games against
// the user, suggesting optimal moves on request.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/domino14/gobbler/config"
	"github.com/domino14/gobbler/game"
	"github.com/domino14/gobbler/registry"
	"github.com/domino14/gobbler/rules"
	"github.com/domino14/gobbler/state"
	"github.com/domino14/gobbler/tablebase"
)

var errNoGame = errors.New("no active game; set a variant first with `rules`")

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	solver  *tablebase.Solver
	curGame *game.Game
	reg     *registry.Registry
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
		Prompt:          "\033[31mgobbler>\033[0m ",
		HistoryFile:     "/tmp/gobbler_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}

	sc := &ShellController{l: l, cfg: cfg}
	regPath := filepath.Join(cfg.GetString("data-path"), "solves.db")
	sc.reg, err = registry.Open(regPath)
	if err != nil {
		log.Warn().Err(err).Str("path", regPath).Msg("solve registry unavailable")
		sc.reg = nil
	}
	return sc
}

// Loop reads and executes commands until the user exits, then signals
// the main goroutine to shut down.
func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		if line == "exit" || line == "bye" {
			break
		}
		if line == "" {
			continue
		}
		if err := sc.handle(line); err != nil {
			showMessage("error: "+err.Error(), sc.l.Stderr())
		}
	}
	sig <- syscall.SIGINT
}

// Execute runs a single command line non-interactively.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	if err := sc.handle(line); err != nil {
		showMessage("error: "+err.Error(), sc.l.Stderr())
	}
}

func (sc *ShellController) Cleanup() {
	if sc.reg != nil {
		sc.reg.Close()
	}
}

func (sc *ShellController) handle(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	switch fields[0] {
	case "rules":
		return sc.setRules(fields[1:])
	case "show":
		return sc.show()
	case "best":
		return sc.best()
	case "verdict":
		return sc.verdict()
	case "moves":
		return sc.listMoves()
	case "solves":
		return sc.listSolves()
	case "help":
		usage(sc.l.Stderr())
		return nil
	default:
		// Anything else should be a move: "<start> <end>", with the
		// sentinels "0 0" for a suggestion and "-1 -1" for undo.
		if len(fields) == 2 {
			start, err1 := strconv.Atoi(fields[0])
			end, err2 := strconv.Atoi(fields[1])
			if err1 == nil && err2 == nil {
				return sc.enterMove(start, end)
			}
		}
		return fmt.Errorf("unknown command %q; type `help`", fields[0])
	}
}

func (sc *ShellController) setRules(args []string) error {
	if len(args) != 3 {
		return errors.New("usage: rules <sizes> <per-size> <allow-move>")
	}
	sizes, err := strconv.Atoi(args[0])
	if err != nil {
		return err
	}
	perSize, err := strconv.Atoi(args[1])
	if err != nil {
		return err
	}
	allowMove, err := strconv.ParseBool(args[2])
	if err != nil {
		return err
	}
	r := rules.Rules{Sizes: sizes, PerSize: perSize, AllowMove: allowMove}

	solver, err := tablebase.New(r, tablebase.Options{
		Exponent: uint(sc.cfg.GetInt("table-exp")),
		DataPath: sc.cfg.GetString("data-path"),
		Compress: sc.cfg.GetBool("compress-cache"),
	})
	if err != nil {
		return err
	}
	sc.solver = solver
	sc.curGame = game.NewGame(solver)

	if st := solver.Stats(); !st.FromCache && sc.reg != nil {
		err := sc.reg.Record(registry.Solve{
			Rules:      r,
			Discovered: st.Discovered,
			Solved:     st.Solved,
			Elapsed:    st.Elapsed,
			CreatedAt:  time.Now(),
		})
		if err != nil {
			log.Warn().Err(err).Msg("could not record solve")
		}
	}
	return sc.show()
}

func (sc *ShellController) show() error {
	if sc.curGame == nil {
		return errNoGame
	}
	out := sc.l.Stdout()
	showMessage(sc.curGame.DisplayState().ToDisplayText(), out)
	if over, winner := sc.curGame.Over(); over {
		if winner == 0 {
			showMessage("Game ends in a draw.", out)
		} else {
			showMessage(fmt.Sprintf("Player %d wins.", winner), out)
		}
		return nil
	}
	showMessage(fmt.Sprintf(
		"Player %d to move. Enter `<start> <end>` (negative start plays a new piece of that size), `0 0` for the best move, `-1 -1` to undo.",
		sc.curGame.PlayerOnTurn()), out)
	return nil
}

func (sc *ShellController) verdictString() string {
	value, moves, ok := sc.curGame.Verdict()
	if !ok {
		return "position not in tablebase"
	}
	switch value {
	case tablebase.Draw:
		return "Draw"
	case tablebase.Win:
		return fmt.Sprintf("Win in %d moves", moves)
	default:
		return fmt.Sprintf("Lose in %d moves", moves)
	}
}

func (sc *ShellController) best() error {
	if sc.curGame == nil {
		return errNoGame
	}
	m, ok := sc.curGame.BestMove()
	if !ok {
		return errors.New("no moves available")
	}
	showMessage(fmt.Sprintf("%s with (%d, %d).", sc.verdictString(), m.Start, m.End),
		sc.l.Stdout())
	return nil
}

func (sc *ShellController) verdict() error {
	if sc.curGame == nil {
		return errNoGame
	}
	showMessage(sc.verdictString()+".", sc.l.Stdout())
	return nil
}

func (sc *ShellController) enterMove(start, end int) error {
	if sc.curGame == nil {
		return errNoGame
	}
	if start == 0 && end == 0 {
		return sc.best()
	}
	if start == -1 && end == -1 {
		if !sc.curGame.Undo() {
			return errors.New("nothing to undo")
		}
		return sc.show()
	}
	if err := sc.curGame.Play(state.Move{Start: start, End: end}); err != nil {
		return err
	}
	return sc.show()
}
