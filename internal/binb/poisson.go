package binb

import "math/rand/v2"

// SamplePoisson draws a balls-in-boxes profile the fast way available
// only for the Poisson(1) offspring law: a size-conditioned Poisson
// Galton-Watson tree's out-degree profile is exactly m balls thrown
// independently and uniformly into n boxes, so no weight vector or
// rejection sampling is needed at all. Ported from
// _examples/original_source/src/rand/ballsinboxes.h::binbpoisson, which
// draws every ball from a single generator rather than splitting the
// work across threads.
//
// The result is tallied into the same Profile shape every other sampler
// in this package produces (Profile[k] = number of boxes that received
// exactly k balls), not the raw per-box ball counts, so callers such as
// internal/treegen.ExpandProfile can treat every Law uniformly.
func SamplePoisson(n, m int, rng *rand.Rand) Profile {
	perBox := make([]int, n)
	for i := 0; i < m; i++ {
		perBox[rng.IntN(n)]++
	}

	N := make(Profile, n)
	for _, c := range perBox {
		N[c]++
	}
	return N
}
