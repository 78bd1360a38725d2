package state

import (
	"fmt"
	"strings"
)

// ToDisplayText renders the position as a 3x3 text grid. Only the top
// piece of every square is shown (covered pieces stay hidden, as they
// would be over the board); X is the side to move, O the opponent, and
// the digit is the piece size. Square indices are printed under the
// cells so moves can be entered by number.
func (s State) ToDisplayText() string {
	var str strings.Builder
	for row := 0; row < 3; row++ {
		str.WriteString("      |      |\n")
		for col := 0; col < 3; col++ {
			owner, size := s.Top(3*row + col)
			str.WriteString(fmt.Sprintf("  %c%c", " XO"[owner], " 123"[size]))
			if col < 2 {
				str.WriteString("  |")
			}
		}
		str.WriteString("\n")
		for col := 0; col < 3; col++ {
			str.WriteString(fmt.Sprintf("     %d", 3*row+col))
			if col < 2 {
				str.WriteString("|")
			}
		}
		str.WriteString("\n")
		if row < 2 {
			str.WriteString("------|------|------\n")
		}
	}
	return str.String()
}

// Placement describes one piece for FromPlacements. Owner is 1 for the
// side to move, 2 for the opponent; Size is 1-based.
type Placement struct {
	Square, Owner, Size int
}

// FromPlacements assembles a position from explicit piece placements.
// It is a test and setup convenience; it does not validate that the
// result is reachable.
func FromPlacements(placements ...Placement) State {
	var s State
	for _, p := range placements {
		s |= State(p.Owner) << (squareBits*p.Square + 2*(p.Size-1))
	}
	return s
}
