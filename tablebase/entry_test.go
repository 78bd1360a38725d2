package tablebase

import (
	"testing"

	"github.com/matryer/is"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	is := is.New(t)
	// The 8-bit field is decoded with sign extension, so every class
	// round-trips distances and counts up to 127. Real distances and
	// escape counts stay far below that.
	for moves := 0; moves <= 127; moves++ {
		for _, value := range []int{1, 0, -1} {
			word := pack(value, moves)
			is.Equal(unpackValue(word), value)
			is.Equal(unpackMoves(word), moves)
		}
	}
}

func TestPackLeavesPositionBitsAlone(t *testing.T) {
	is := is.New(t)
	for _, value := range []int{-1, 0, 1} {
		is.Equal(pack(value, 9)&uint64(1<<54-1), uint64(0))
	}
}

// The whole point of the encoding: comparing full table words picks the
// best successor for the mover at the parent. An opponent loss beats a
// draw beats an opponent win; quicker opponent losses and slower
// opponent wins are better.
func TestWordOrderingIsMoveOrdering(t *testing.T) {
	is := is.New(t)
	is.True(pack(-1, 0) > pack(-1, 2))
	is.True(pack(-1, 2) > pack(-1, 126))
	is.True(pack(-1, 126) > pack(0, 0))
	is.True(pack(-1, 126) > pack(0, 100))
	is.True(pack(0, 0) > pack(1, 120))
	is.True(pack(0, 100) > pack(1, 120))
	is.True(pack(1, 120) > pack(1, 3))
	is.True(pack(1, 3) > pack(1, 0))
	// Any packed verdict beats an unclassified bare key.
	is.True(pack(1, 0) > uint64(1)<<54-1)
}

func TestUnclassifiedValue(t *testing.T) {
	is := is.New(t)
	is.Equal(unpackValue(emptySlot), 2)
	is.Equal(unpackValue(uint64(0x1041)), 2) // bare position key
}
