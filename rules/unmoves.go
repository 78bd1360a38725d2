package rules

import (
	"slices"

	"github.com/domino14/gobbler/state"
)

// Predecessors returns the canonical positions from which a single legal
// move reaches s. The previous mover is the current opponent, so we swap
// sides first and undo moves in that frame: every topmost piece of the
// (post-swap) side to move is a candidate last move, undone either by
// taking it back into hand or, when relocation is allowed, by sliding it
// back to any square it could legally have come from.
//
// A candidate in which the game was already over is discarded. That
// player could not have been on the move, because the game would have
// ended one ply earlier.
func (r Rules) Predecessors(s state.State) []state.State {
	swapped := state.SwapSides(s)
	set := make(map[state.State]struct{})

	for end := 0; end < state.NumSquares; end++ {
		pieces := swapped.Square(end)
		owner := uint(0)
		size := 0
		for ; pieces != 0; size++ {
			owner = pieces & 0x3
			pieces >>= 2
		}
		if owner != 1 {
			continue
		}
		if r.AllowMove {
			// Undo a relocation: slide the top piece at end back to any
			// square whose stack it could have covered. The piece's own
			// slot at end keeps the start==end case out automatically.
			for start := 0; start < state.NumSquares; start++ {
				if uint(1)<<(2*(size-1)) > swapped.Square(start) {
					prev := state.Apply(swapped, state.Move{Start: end, End: start})
					if TerminalValue(prev) == 0 {
						set[state.Canonical(prev)] = struct{}{}
					}
				}
			}
		}
		// Undo a placement: the slot holds the mover's piece, so the
		// XOR in Apply lifts it back into hand.
		prev := state.Apply(swapped, state.Move{Start: -size, End: end})
		if TerminalValue(prev) == 0 {
			set[state.Canonical(prev)] = struct{}{}
		}
	}

	prevs := make([]state.State, 0, len(set))
	for p := range set {
		prevs = append(prevs, p)
	}
	slices.Sort(prevs)
	return prevs
}
