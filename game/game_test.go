package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/gobbler/rules"
	"github.com/domino14/gobbler/state"
	"github.com/domino14/gobbler/tablebase"
)

func classicSolver(t *testing.T) *tablebase.Solver {
	t.Helper()
	s, err := tablebase.New(
		rules.Rules{Sizes: 1, PerSize: 3, AllowMove: false},
		tablebase.Options{Exponent: 14})
	require.NoError(t, err)
	return s
}

func place(sq int) state.Move {
	return state.Move{Start: -1, End: sq}
}

func TestPlayUntilWin(t *testing.T) {
	g := NewGame(classicSolver(t))
	assert.Equal(t, 1, g.PlayerOnTurn())

	// X takes the 0-4-8 diagonal while O shuffles along the top.
	for _, sq := range []int{4, 1, 0, 2, 8} {
		require.NoError(t, g.Play(place(sq)))
	}
	over, winner := g.Over()
	require.True(t, over)
	assert.Equal(t, 1, winner)

	// No more moves once the game has ended.
	assert.ErrorIs(t, g.Play(place(3)), ErrIllegalMove)
}

func TestPlayUntilStalemateDraw(t *testing.T) {
	g := NewGame(classicSolver(t))
	// Both players place all three pieces without making a line. With
	// relocation off there are no moves left: a stalemate draw.
	for _, sq := range []int{4, 0, 1, 7, 3, 5} {
		require.NoError(t, g.Play(place(sq)))
	}
	over, winner := g.Over()
	require.True(t, over)
	assert.Equal(t, 0, winner)
	assert.ErrorIs(t, g.Play(place(2)), ErrIllegalMove)
}

func TestIllegalMovesRejected(t *testing.T) {
	g := NewGame(classicSolver(t))
	require.NoError(t, g.Play(place(4)))
	// Occupied square.
	assert.ErrorIs(t, g.Play(place(4)), ErrIllegalMove)
	// No size-2 pieces in this variant.
	assert.ErrorIs(t, g.Play(state.Move{Start: -2, End: 0}), ErrIllegalMove)
	// Relocation is off.
	assert.ErrorIs(t, g.Play(state.Move{Start: 4, End: 0}), ErrIllegalMove)
	// The position is unchanged after the rejections.
	assert.Equal(t, 2, g.PlayerOnTurn())
}

func TestUndo(t *testing.T) {
	g := NewGame(classicSolver(t))
	assert.False(t, g.Undo())

	require.NoError(t, g.Play(place(4)))
	require.NoError(t, g.Play(place(0)))
	assert.Equal(t, 1, g.PlayerOnTurn())

	assert.True(t, g.Undo())
	assert.Equal(t, 2, g.PlayerOnTurn())
	assert.True(t, g.Undo())
	assert.Equal(t, state.Initial, g.Current())
	assert.False(t, g.Undo())
}

func TestDisplayStateOrientation(t *testing.T) {
	g := NewGame(classicSolver(t))
	require.NoError(t, g.Play(place(4)))

	// It's O's turn, so Current has O as the side to move, but the
	// display keeps player 1's piece rendered as X.
	owner, _ := g.Current().Top(4)
	assert.Equal(t, uint(2), owner)
	owner, _ = g.DisplayState().Top(4)
	assert.Equal(t, uint(1), owner)
}

func TestBestMoveAndVerdictDelegate(t *testing.T) {
	g := NewGame(classicSolver(t))
	value, _, ok := g.Verdict()
	require.True(t, ok)
	assert.Equal(t, tablebase.Draw, value)
	_, ok = g.BestMove()
	assert.True(t, ok)
}
