package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/domino14/gobbler/state"
)

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "rules <sizes> <per-size> <allow-move> - solve (or load) a variant and start a game\n")
	io.WriteString(w, "    e.g. `rules 1 3 0` for classic Tic-Tac-Toe, `rules 3 2 1` for Gobblet Gobblers\n")
	io.WriteString(w, "<start> <end> - play a move; a negative start plays a new piece of size -start\n")
	io.WriteString(w, "0 0 - show the best move for the player on turn\n")
	io.WriteString(w, "-1 -1 - undo the last move\n")
	io.WriteString(w, "show - display the board\n")
	io.WriteString(w, "best - show the best move and verdict\n")
	io.WriteString(w, "verdict - show the verdict for the player on turn\n")
	io.WriteString(w, "moves - list the legal moves (distinct up to symmetry)\n")
	io.WriteString(w, "solves - list the variants solved on this machine\n")
	io.WriteString(w, "exit - quit\n")
}

func formatMove(m state.Move) string {
	return fmt.Sprintf("(%d, %d)", m.Start, m.End)
}

func (sc *ShellController) listMoves() error {
	if sc.curGame == nil {
		return errNoGame
	}
	moves := sc.curGame.Rules().LegalMoves(sc.curGame.Current())
	if len(moves) == 0 {
		return errors.New("no moves available")
	}
	showMessage(strings.Join(lo.Map(moves, func(m state.Move, _ int) string {
		return formatMove(m)
	}), " "), sc.l.Stdout())
	return nil
}

func (sc *ShellController) listSolves() error {
	if sc.reg == nil {
		return errors.New("solve registry unavailable")
	}
	solves, err := sc.reg.List()
	if err != nil {
		return err
	}
	if len(solves) == 0 {
		showMessage("no solves recorded yet", sc.l.Stdout())
		return nil
	}
	for _, s := range solves {
		showMessage(fmt.Sprintf("%-8s %12d states %12d win/loss %10s  %s",
			s.Rules, s.Discovered, s.Solved, s.Elapsed.Round(time.Millisecond),
			s.CreatedAt.Local().Format("2006-01-02 15:04")), sc.l.Stdout())
	}
	return nil
}
