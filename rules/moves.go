package rules

import "github.com/domino14/gobbler/state"

// LegalMoves returns the moves available to the side to move, ignoring
// whether the game is already over. Moves are deduplicated by the
// canonical form of their successor: the tablebase is keyed on canonical
// positions, so two moves that collapse to the same successor are a
// single choice, and counting them twice would corrupt the
// winning-moves-remaining bookkeeping during retrograde propagation.
func (r Rules) LegalMoves(s state.State) []state.Move {
	var moves []state.Move
	var played [state.MaxSizes]int
	seen := make(map[state.State]struct{})

	// Relocations of pieces already on the board.
	for start := 0; start < state.NumSquares; start++ {
		pieces := s.Square(start)
		owner := uint(0)
		size := 0
		for ; pieces != 0; size++ {
			owner = pieces & 0x3
			if owner == 1 {
				// Count the mover's pieces of each size so we know how
				// many of each remain in hand.
				played[size]++
			}
			pieces >>= 2
		}
		if !r.AllowMove || owner != 1 {
			continue
		}
		for end := 0; end < state.NumSquares; end++ {
			if end == start {
				// Moving a piece onto its own square is a no-op.
				continue
			}
			if uint(1)<<(2*(size-1)) > s.Square(end) {
				m := state.Move{Start: start, End: end}
				next := state.Fingerprint(s, m)
				if _, ok := seen[next]; !ok {
					moves = append(moves, m)
					seen[next] = struct{}{}
				}
			}
		}
	}

	// Placements of new pieces from hand.
	for size := 1; size <= r.Sizes; size++ {
		if played[size-1] >= r.PerSize {
			continue
		}
		for end := 0; end < state.NumSquares; end++ {
			if uint(1)<<(2*(size-1)) > s.Square(end) {
				m := state.Move{Start: -size, End: end}
				next := state.Fingerprint(s, m)
				if _, ok := seen[next]; !ok {
					moves = append(moves, m)
					seen[next] = struct{}{}
				}
			}
		}
	}
	return moves
}
