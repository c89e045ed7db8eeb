// Package binb implements Devroye's rejection algorithm for the weighted
// balls-in-boxes model: placing m balls into n boxes so that the number
// of boxes receiving exactly i balls follows the conditional-binomial
// decomposition of internal/weight's preprocessed probabilities. Ported
// from _examples/original_source/src/rand/ballsinboxes.h.
package binb

import (
	"math/rand/v2"

	"github.com/benediktstufler/grant/internal/container"
	apperrors "github.com/benediktstufler/grant/pkg/errors"
)

// Profile is a balls-in-boxes result: Profile[i] is the number of boxes
// that received exactly i balls, for i in [0,n).
type Profile []int

// attempt draws one candidate profile. It mirrors ballsinboxes' inner
// loop exactly: box-count i walks 0..n-1, each step draws how many of
// the still-unassigned boxes receive exactly i balls via
// Binomial(remaining boxes, q[i]), and the attempt aborts the moment the
// running ball total exceeds m.
//
// The walk itself is scratched into a buffer borrowed from pool rather
// than a fresh make([]int, n), since most attempts are rejected under
// q's acceptance rate and never need to keep N around. A copy is made
// only on the rare accepted attempt, once the result actually has to
// outlive the buffer's return to the pool.
func attempt(n, m int, q []float64, rng *rand.Rand, pool *container.SlicePool[int]) (Profile, bool) {
	buf := pool.Get()
	defer pool.Put(buf)

	N := *buf
	if cap(N) < n {
		N = make([]int, n)
	} else {
		N = N[:n]
	}

	sumN := 0
	sumE := 0
	for i := 0; i < n; i++ {
		trials := n - sumN
		c := binomial(rng, trials, q[i])
		N[i] = c
		sumN += c
		sumE += i * c
		if sumE > m {
			*buf = N
			return nil, false
		}
	}
	*buf = N
	if sumE != m {
		return nil, false
	}
	result := make(Profile, n)
	copy(result, N)
	return result, true
}

// Sample draws exactly one valid profile using a single goroutine; a
// thin wrapper over Scheduler for callers that only need one sample
// (the source's tbinb, a single-thread convenience over threadedbinb).
func Sample(n, m int, q []float64, rng *rand.Rand) (Profile, error) {
	profiles := NewScheduler(1).Run(n, m, q, []*rand.Rand{rng}, 1)
	if len(profiles) != 1 {
		return nil, apperrors.New(apperrors.CodeThreadError, "balls-in-boxes sampler returned no profile")
	}
	return profiles[0], nil
}

// binomial draws a Binomial(trials, p) variate by direct Bernoulli
// simulation. Trial counts here are bounded by the number of still
// unassigned boxes, so this stays linear in the tree's size per
// complete attempt — adequate for the sizes this simulator targets
// without pulling in a dedicated statistical-distributions library (none
// appear anywhere in the example corpus).
func binomial(rng *rand.Rand, trials int, p float64) int {
	if trials <= 0 || p <= 0 {
		return 0
	}
	if p >= 1 {
		return trials
	}
	count := 0
	for i := 0; i < trials; i++ {
		if rng.Float64() < p {
			count++
		}
	}
	return count
}
