package rules

import "gonum.org/v1/gonum/stat/combin"

// StateBound returns an upper bound on the number of raw positions a
// variant can produce: each (player, size) pool of PerSize identical
// pieces occupies some subset of at most PerSize of the nine per-size
// slots, independently of the other pools. Reachability and the eight
// symmetry images cut the true count far below this; the bound is only
// meant for table-sizing checks.
func (r Rules) StateBound() uint64 {
	perPool := 0
	for k := 0; k <= r.PerSize; k++ {
		perPool += combin.Binomial(9, k)
	}
	bound := uint64(1)
	for i := 0; i < 2*r.Sizes; i++ {
		bound *= uint64(perPool)
	}
	return bound
}
