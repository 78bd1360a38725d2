package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	testcases := []struct {
		name string
		r    Rules
		ok   bool
	}{
		{"classic tic-tac-toe", Rules{1, 3, false}, true},
		{"full gobblet", Rules{3, 2, true}, true},
		{"one piece movable", Rules{1, 1, true}, true},
		{"two sizes many pieces", Rules{2, 9, false}, true},
		{"zero sizes", Rules{0, 3, false}, false},
		{"four sizes", Rules{4, 2, true}, false},
		{"zero pieces", Rules{2, 0, false}, false},
		{"too many pieces", Rules{1, 10, false}, false},
		{"three sizes three pieces", Rules{3, 3, true}, false},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.r.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrUnsupportedRules)
			}
		})
	}
}

func TestRulesString(t *testing.T) {
	assert.Equal(t, "3_2_1", Rules{3, 2, true}.String())
	assert.Equal(t, "1_3_0", Rules{1, 3, false}.String())
}
