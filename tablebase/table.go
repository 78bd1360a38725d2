package tablebase

import (
	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"

	"github.com/domino14/gobbler/state"
)

// DefaultExponent sizes the table at 2^29 words (4 GiB), enough to hold
// the reachable closure of the hardest supported variant at a load factor
// under 0.5.
const DefaultExponent = 29

// emptySlot marks an unused table slot. As a position it is impossible
// (both players owning the same small-piece slot of square 0), so it can
// never collide with a real key. The all-zero word is reserved for the
// valid initial board.
const emptySlot uint64 = 0x3

// Table is a fixed-capacity open-addressing map from canonical positions
// to table words (MSI layout: the value lives in the key's spare upper
// bits). It is allocated once and never grows or rehashes; the solver's
// state-space bound is a sizing precondition, so probe exhaustion is a
// programmer error and panics.
type Table struct {
	words []uint64
	exp   uint
	mask  uint64
}

func NewTable(exp uint) *Table {
	n := uint64(1) << exp
	bytes := n * 8
	if total := memory.TotalMemory(); total > 0 && bytes > total {
		log.Warn().Uint64("table-bytes", bytes).
			Uint64("total-system-memory-bytes", total).
			Msg("table larger than system memory; expect heavy swapping")
	}
	log.Info().Uint("exponent", exp).Uint64("num-words", n).
		Uint64("table-bytes", bytes).Msg("tablebase-size")

	t := &Table{
		words: make([]uint64, n),
		exp:   exp,
		mask:  n - 1,
	}
	for i := range t.words {
		t.words[i] = emptySlot
	}
	return t
}

// splitMix64 is the SplitMix64 finalizer, used to spread the 54-bit keys
// over the index space.
func splitMix64(h uint64) uint64 {
	h ^= h >> 30
	h *= 0xbf58476d1ce4e5b9
	h ^= h >> 27
	h *= 0x94d049bb133111eb
	h ^= h >> 31
	return h
}

// lookup returns a pointer to the slot holding s, or to the empty slot
// where s belongs. Fibonacci-style multiplicative probing: the low bits
// of the hash pick the first index and the high bits, forced odd, give a
// step coprime with the power-of-two size, so the probe sequence covers
// the whole table.
func (t *Table) lookup(s state.State) *uint64 {
	h := splitMix64(uint64(s))
	step := h>>(64-t.exp) | 1
	probes := 0
	for i := h; ; {
		i = (i + step) & t.mask
		if t.words[i] == emptySlot || state.State(t.words[i])&state.PositionMask == s {
			return &t.words[i]
		}
		probes++
		if probes > len(t.words) {
			panic("tablebase: table full; state space exceeded capacity precondition")
		}
	}
}

// clear resets every slot to the empty sentinel.
func (t *Table) clear() {
	for i := range t.words {
		t.words[i] = emptySlot
	}
}

// Len returns the table capacity in words.
func (t *Table) Len() int {
	return len(t.words)
}

// scan calls f for every occupied slot.
func (t *Table) scan(f func(word uint64)) {
	for _, w := range t.words {
		if w != emptySlot {
			f(w)
		}
	}
}
