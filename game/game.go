// Package game keeps the bookkeeping for an interactive game played on
// top of a solved tablebase: the position history for undo, the turn
// counter, and the display perspective.
package game

import (
	"errors"

	"github.com/domino14/gobbler/rules"
	"github.com/domino14/gobbler/state"
	"github.com/domino14/gobbler/tablebase"
)

var ErrIllegalMove = errors.New("illegal move")

// Game is a single playthrough. Positions in the history are always
// stored from the perspective of the player on turn.
type Game struct {
	solver  *tablebase.Solver
	history []state.State
}

func NewGame(solver *tablebase.Solver) *Game {
	return &Game{
		solver:  solver,
		history: []state.State{state.Initial},
	}
}

// Current returns the position from the perspective of the player on
// turn.
func (g *Game) Current() state.State {
	return g.history[len(g.history)-1]
}

// PlayerOnTurn returns 1 or 2. Player 1 moves first.
func (g *Game) PlayerOnTurn() int {
	return 1 + (len(g.history)-1)%2
}

// DisplayState returns the current position oriented so player 1's
// pieces always render as X, whichever side is on turn.
func (g *Game) DisplayState() state.State {
	if g.PlayerOnTurn() == 1 {
		return g.Current()
	}
	return state.SwapSides(g.Current())
}

// Rules returns the variant in play.
func (g *Game) Rules() rules.Rules {
	return g.solver.Rules()
}

// Play advances the game by one ply. The move is validated here; Apply
// itself is a pure bit transformation and assumes legality.
func (g *Game) Play(m state.Move) error {
	if over, _ := g.Over(); over {
		return ErrIllegalMove
	}
	if !g.solver.Rules().Legal(g.Current(), m) {
		return ErrIllegalMove
	}
	g.history = append(g.history, state.SwapSides(state.Apply(g.Current(), m)))
	return nil
}

// Undo takes back the last ply. It reports false at the initial
// position.
func (g *Game) Undo() bool {
	if len(g.history) == 1 {
		return false
	}
	g.history = g.history[:len(g.history)-1]
	return true
}

// Over reports whether the game has ended, and the winning player (1 or
// 2) or 0 for a draw. The game is over when the stored count field is
// zero: a terminal win or loss, or a stalemate with no legal moves left.
func (g *Game) Over() (over bool, winner int) {
	value, moves, ok := g.solver.Verdict(g.Current())
	if !ok || moves != 0 {
		return false, 0
	}
	switch value {
	case tablebase.Draw:
		return true, 0
	case tablebase.Win:
		return true, g.PlayerOnTurn()
	default:
		return true, 3 - g.PlayerOnTurn()
	}
}

// Verdict returns the tablebase verdict for the player on turn.
func (g *Game) Verdict() (tablebase.Value, int, bool) {
	return g.solver.Verdict(g.Current())
}

// BestMove returns the optimal move for the player on turn.
func (g *Game) BestMove() (state.Move, bool) {
	return g.solver.BestMove(g.Current())
}
