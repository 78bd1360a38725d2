package rules

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/gobbler/state"
)

func row(owner int, squares ...int) state.State {
	var placements []state.Placement
	for _, sq := range squares {
		placements = append(placements, state.Placement{Square: sq, Owner: owner, Size: 1})
	}
	return state.FromPlacements(placements...)
}

func TestTerminalValueLines(t *testing.T) {
	is := is.New(t)
	is.Equal(TerminalValue(state.Initial), 0)
	is.Equal(TerminalValue(row(1, 0, 1, 2)), 1)
	is.Equal(TerminalValue(row(2, 0, 1, 2)), -1)
	is.Equal(TerminalValue(row(1, 0, 3, 6)), 1)
	is.Equal(TerminalValue(row(2, 2, 4, 6)), -1)
	// Two in a row is not a line.
	is.Equal(TerminalValue(row(1, 0, 1)), 0)
	// Mixed ownership breaks the line.
	is.Equal(TerminalValue(row(1, 0, 1)|row(2, 2)), 0)
}

func TestTerminalValueUncoveringPrecedence(t *testing.T) {
	is := is.New(t)
	// Both sides show a line: the side to move wins regardless of which
	// line the scan finds first. Their line can only be showing because
	// the opponent's last move uncovered it.
	is.Equal(TerminalValue(row(1, 0, 1, 2)|row(2, 6, 7, 8)), 1)
	is.Equal(TerminalValue(row(2, 0, 1, 2)|row(1, 6, 7, 8)), 1)
}

func TestTerminalValueCoveredPiecesDoNotCount(t *testing.T) {
	is := is.New(t)
	// Our size-1 on square 0 is gobbled by their size-2, so our row 0 is
	// not complete.
	s := row(1, 0, 1, 2) |
		state.FromPlacements(state.Placement{Square: 0, Owner: 2, Size: 2})
	is.Equal(TerminalValue(s), 0)
}
