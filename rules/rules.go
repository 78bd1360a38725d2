// Package rules parameterizes the family of 3x3 stacking Tic-Tac-Toe
// variants and implements move generation, unmove generation, and
// game-over detection on the packed position encoding.
package rules

import (
	"errors"
	"fmt"
)

var ErrUnsupportedRules = errors.New("rule variant not supported")

// Rules selects a game variant. Sizes is the number of distinct piece
// sizes (1..3), PerSize the number of pieces of each size per player, and
// AllowMove whether pieces already on the board may be relocated.
// Classic Tic-Tac-Toe is {1, 3, false}; full Gobblet Gobblers is
// {3, 2, true}.
type Rules struct {
	Sizes     int
	PerSize   int
	AllowMove bool
}

// Validate checks that the variant is one the solver supports. Three
// sizes with more than two pieces each blows the reachable state space
// past the fixed table capacity.
func (r Rules) Validate() error {
	if r.Sizes < 1 || r.Sizes > 3 {
		return fmt.Errorf("%w: sizes must be 1..3, got %d", ErrUnsupportedRules, r.Sizes)
	}
	maxPerSize := 9
	if r.Sizes == 3 {
		maxPerSize = 2
	}
	if r.PerSize < 1 || r.PerSize > maxPerSize {
		return fmt.Errorf("%w: per-size count must be 1..%d for %d sizes, got %d",
			ErrUnsupportedRules, maxPerSize, r.Sizes, r.PerSize)
	}
	return nil
}

func (r Rules) String() string {
	moveFlag := 0
	if r.AllowMove {
		moveFlag = 1
	}
	return fmt.Sprintf("%d_%d_%d", r.Sizes, r.PerSize, moveFlag)
}
