package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/domino14/gobbler/state"
)

func TestLegalMovesSymmetryDedup(t *testing.T) {
	r := Rules{Sizes: 1, PerSize: 3, AllowMove: false}
	// From the empty board the nine placements collapse to three
	// choices: corner, edge, center.
	moves := r.LegalMoves(state.Initial)
	assert.Len(t, moves, 3)

	// With the opponent on the center, the eight placements collapse to
	// corner and edge.
	center := state.FromPlacements(state.Placement{Square: 4, Owner: 2, Size: 1})
	assert.Len(t, r.LegalMoves(center), 2)
}

func TestLegalMovesRespectsPieceSupply(t *testing.T) {
	r := Rules{Sizes: 1, PerSize: 3, AllowMove: false}
	// All three of our pieces are on the board and relocation is off:
	// no moves at all.
	s := state.FromPlacements(
		state.Placement{Square: 0, Owner: 1, Size: 1},
		state.Placement{Square: 1, Owner: 1, Size: 1},
		state.Placement{Square: 3, Owner: 1, Size: 1},
	)
	assert.Empty(t, r.LegalMoves(s))

	// The same position with relocation allowed has only board moves.
	mr := Rules{Sizes: 1, PerSize: 3, AllowMove: true}
	moves := mr.LegalMoves(s)
	assert.NotEmpty(t, moves)
	for _, m := range moves {
		assert.GreaterOrEqual(t, m.Start, 0)
	}
}

func TestLegalMovesGobbling(t *testing.T) {
	r := Rules{Sizes: 3, PerSize: 2, AllowMove: true}
	s := state.FromPlacements(
		state.Placement{Square: 4, Owner: 2, Size: 2},
	)
	for _, m := range r.LegalMoves(s) {
		if m.End != 4 {
			continue
		}
		// Only a size-3 piece may land on their size-2.
		assert.Equal(t, -3, m.Start)
	}
	// A size-3 placement onto the occupied center must be present.
	assert.Contains(t, r.LegalMoves(s), state.Move{Start: -3, End: 4})
}

func TestLegalMovesNeverRelocatesOpponent(t *testing.T) {
	r := Rules{Sizes: 2, PerSize: 2, AllowMove: true}
	s := state.FromPlacements(
		state.Placement{Square: 0, Owner: 2, Size: 2},
		state.Placement{Square: 8, Owner: 1, Size: 1},
	)
	for _, m := range r.LegalMoves(s) {
		if !m.IsPlacement() {
			assert.Equal(t, 8, m.Start)
		}
	}
}

func TestLegal(t *testing.T) {
	r := Rules{Sizes: 3, PerSize: 2, AllowMove: true}
	s := state.FromPlacements(
		state.Placement{Square: 0, Owner: 1, Size: 3},
		state.Placement{Square: 4, Owner: 2, Size: 1},
	)
	assert.True(t, r.Legal(s, state.Move{Start: 0, End: 4}))    // gobble their piece
	assert.True(t, r.Legal(s, state.Move{Start: -3, End: 4}))   // second size-3 from hand
	assert.True(t, r.Legal(s, state.Move{Start: -1, End: 1}))   // small to empty square
	assert.False(t, r.Legal(s, state.Move{Start: -1, End: 4}))  // small cannot cover small
	assert.False(t, r.Legal(s, state.Move{Start: 4, End: 1}))   // not our piece
	assert.False(t, r.Legal(s, state.Move{Start: 0, End: 0}))   // no-op
	assert.False(t, r.Legal(s, state.Move{Start: 1, End: 2}))   // empty start square
	assert.False(t, r.Legal(s, state.Move{Start: -4, End: 1}))  // no such size
	assert.False(t, r.Legal(s, state.Move{Start: -1, End: 9}))  // off the board
	assert.False(t, r.Legal(s, state.Move{Start: -1, End: -1})) // off the board

	noMove := Rules{Sizes: 3, PerSize: 2, AllowMove: false}
	assert.False(t, noMove.Legal(s, state.Move{Start: 0, End: 4}))

	// Piece supply exhausted.
	supply := Rules{Sizes: 1, PerSize: 1, AllowMove: false}
	one := state.FromPlacements(state.Placement{Square: 0, Owner: 1, Size: 1})
	assert.False(t, supply.Legal(one, state.Move{Start: -1, End: 5}))
}
