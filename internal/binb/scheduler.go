package binb

import (
	"math/rand/v2"

	"github.com/benediktstufler/grant/internal/container"
	"github.com/benediktstufler/grant/internal/work"
)

// Scheduler distributes rejection-sampling attempts for the weighted
// balls-in-boxes model across a fixed worker count, collecting results
// until the requested number of valid profiles has been found. Grounded
// on threadedbinb's thread launch/join and the collect-until-full mutex
// protocol now generalized in internal/work.CollectN.
type Scheduler struct {
	Workers int
}

// NewScheduler builds a Scheduler with the given worker count (at least 1).
func NewScheduler(workers int) *Scheduler {
	if workers <= 0 {
		workers = 1
	}
	return &Scheduler{Workers: workers}
}

// Run collects num valid profiles for n boxes, m balls, and conditional
// probabilities q, distributing attempts across min(s.Workers, len(rngs))
// worker goroutines (one independent *rand.Rand per worker, exactly as each C
// thread gets its own gsl_rng seeded with seed+threadIndex).
func (s *Scheduler) Run(n, m int, q []float64, rngs []*rand.Rand, num int) []Profile {
	workers := s.Workers
	if workers > len(rngs) {
		workers = len(rngs)
	}
	if workers <= 0 {
		workers = 1
	}

	// One scratch-buffer pool shared across the worker goroutines: a
	// rejected attempt (the common case under rejection sampling) never
	// allocates past warm-up, since it only needs N during the walk and
	// never returns it.
	pool := container.NewSlicePool[int](n)

	return work.CollectN(workers, num, func(workerID int) (Profile, bool) {
		return attempt(n, m, q, rngs[workerID%len(rngs)], pool)
	})
}
