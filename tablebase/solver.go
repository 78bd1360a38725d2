package tablebase

import (
	"errors"
	"io/fs"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/gobbler/rules"
	"github.com/domino14/gobbler/state"
)

// Options controls solver resource usage and cache persistence.
type Options struct {
	// Exponent is the log2 of the table capacity; 0 means
	// DefaultExponent. Small variants (and tests) can run with a much
	// smaller table.
	Exponent uint
	// DataPath is the directory for cache files. Empty disables
	// persistence entirely.
	DataPath string
	// Compress writes the cache zstd-compressed. The table is mostly
	// empty sentinel words, which compress by orders of magnitude.
	Compress bool
}

// Stats reports what a solve did.
type Stats struct {
	Discovered uint64 // positions found by the forward search
	Solved     uint64 // win/loss positions, game-over ones included
	Elapsed    time.Duration
	FromCache  bool
}

// Solver owns a solved (or loaded) tablebase for one rule variant. The
// whole solve runs on the calling goroutine: the propagation mutates
// table words in place, and single ownership is what makes that safe.
type Solver struct {
	rules rules.Rules
	opts  Options
	table *Table
	stats Stats
}

// New validates the rule variant, allocates the table, and returns once
// it holds the full solution: loaded from a cache file when one exists,
// otherwise solved from scratch and saved back. A cache that cannot be
// read is treated as absent; a cache that cannot be written only logs a
// warning, since the in-memory solve is already usable.
func New(r rules.Rules, opts Options) (*Solver, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if opts.Exponent == 0 {
		opts.Exponent = DefaultExponent
	}
	// The default capacity is sized for the hardest supported variant.
	// A shrunken table only provably fits when twice the combinatorial
	// state bound, discounted by the eight symmetry images, still fits.
	if bound := r.StateBound() / 8; opts.Exponent < DefaultExponent &&
		uint64(1)<<opts.Exponent < 2*bound {
		log.Warn().Uint64("canonical-state-bound", bound).
			Uint("exponent", opts.Exponent).
			Msg("table not provably large enough for this variant")
	}
	s := &Solver{rules: r, opts: opts, table: NewTable(opts.Exponent)}

	if opts.DataPath != "" {
		err := s.loadCache()
		if err == nil {
			s.stats.FromCache = true
			return s, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn().Err(err).Msg("cache unreadable; re-solving")
			// A partial read may have dirtied the table.
			s.table.clear()
		}
	}

	start := time.Now()
	s.propagate(s.search())
	s.stats.Elapsed = time.Since(start)
	log.Info().Str("rules", r.String()).
		Uint64("discovered", s.stats.Discovered).
		Uint64("solved", s.stats.Solved).
		Dur("elapsed", s.stats.Elapsed).
		Msg("solve-complete")

	if opts.DataPath != "" {
		if err := s.saveCache(); err != nil {
			log.Warn().Err(err).Msg("could not write cache; solve kept in memory")
		}
	}
	return s, nil
}

// search runs the forward breadth-first pass from the initial board. It
// seeds every reachable canonical position into the table - game-over
// positions as win/loss in 0 plies, the rest as tentative draws whose
// count field holds the number of distinct successors - and returns the
// queue of game-over positions for the backward pass.
func (s *Solver) search() *fifo {
	solved := newFifo()
	q := newFifo()
	q.push(state.Initial)
	*s.table.lookup(state.Initial) = uint64(state.Initial)

	for q.len() > 0 {
		current := q.pop()
		s.stats.Discovered++
		if value := rules.TerminalValue(current); value != 0 {
			*s.table.lookup(current) = uint64(current) | pack(value, 0)
			solved.push(current)
			continue
		}
		moves := s.rules.LegalMoves(current)
		*s.table.lookup(current) = uint64(current) | pack(0, len(moves))
		for _, m := range moves {
			next := state.Fingerprint(current, m)
			ptr := s.table.lookup(next)
			if *ptr == emptySlot {
				// Mark as seen (bare key, no verdict) instead of
				// letting duplicate queue entries pile up.
				*ptr = uint64(next)
				q.push(next)
			}
		}
	}
	log.Info().Uint64("discovered", s.stats.Discovered).
		Int("terminal", solved.len()).Msg("forward-search-done")
	return solved
}

// propagate works backward breadth-first from the game-over queue. A win
// at a successor is a losing move for the predecessor's mover, so it
// decrements the predecessor's remaining-escape count; when the count
// hits zero every move loses and the predecessor is a loss. A loss at a
// successor is a winning move, classifying the predecessor as a win
// immediately. BFS order makes both distances shortest-path: the first
// loss successor seen is the nearest, and the win successor that zeroes
// the count is the farthest. Whatever stays tentative when the queue
// drains still has a draw successor, and so is itself a draw.
func (s *Solver) propagate(solved *fifo) {
	for solved.len() > 0 {
		current := solved.pop()
		s.stats.Solved++
		curWord := *s.table.lookup(current)
		for _, prev := range s.rules.Predecessors(current) {
			prevPtr := s.table.lookup(prev)
			if unpackValue(*prevPtr) != 0 {
				// Already classified (or not a reachable position).
				continue
			}
			if unpackValue(curWord) == 1 {
				escapes := unpackMoves(*prevPtr) - 1
				if escapes != 0 {
					*prevPtr = uint64(prev) | pack(0, escapes)
				} else {
					*prevPtr = uint64(prev) | pack(-1, unpackMoves(curWord)+1)
					solved.push(prev)
				}
			} else {
				*prevPtr = uint64(prev) | pack(1, unpackMoves(curWord)+1)
				solved.push(prev)
			}
		}
	}
	log.Info().Uint64("solved", s.stats.Solved).Msg("retrograde-done")
}

// Verdict looks up a position (any dihedral image - it is canonicalized
// here - with the side to move as owner 1; sides are not swapped) and
// returns its value for the side to move and
// the distance field: plies to the end for wins and losses, remaining
// escapes for draws. ok is false for positions outside the reachable
// state space.
func (s *Solver) Verdict(pos state.State) (value Value, moves int, ok bool) {
	word := *s.table.lookup(state.Canonical(pos))
	v := unpackValue(word)
	if v == 2 {
		return Draw, 0, false
	}
	return Value(v), unpackMoves(word), true
}

// BestMove returns the move whose successor table word is numerically
// largest, which the verdict encoding makes the optimal choice. ok is
// false when the position has no legal moves.
func (s *Solver) BestMove(pos state.State) (best state.Move, ok bool) {
	var max uint64
	for _, m := range s.rules.LegalMoves(pos) {
		next := *s.table.lookup(state.Fingerprint(pos, m))
		if next > max {
			max = next
			best = m
			ok = true
		}
	}
	return best, ok
}

// Rules returns the variant this solver was built for.
func (s *Solver) Rules() rules.Rules {
	return s.rules
}

// Stats returns solve statistics. Discovered and Solved are zero when
// the table was loaded from a cache file.
func (s *Solver) Stats() Stats {
	return s.stats
}
