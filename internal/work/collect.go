package work

import (
	"sync"
	"sync/atomic"
)

// CollectN runs workers concurrent goroutines, each repeatedly calling
// attempt(workerID) until the target number of accepted results has been
// collected across all workers, then returns exactly target results.
//
// This is the Go rendition of the source's threadedbinb/ballsinboxes
// mutex protocol: a shared slice and counter guarded by one mutex, and a
// stop flag read outside the lock so a worker only checks it between
// attempts. A worker that reads a stale "keep going" value performs at
// most one extra (discarded) attempt past the target — the same benign
// race the source accepts rather than synchronizing away.
//
// attempt returns (result, accepted). A false accepted return means the
// attempt was rejected (as in rejection sampling) and the worker should
// immediately retry without counting against target.
func CollectN[T any](workers, target int, attempt func(workerID int) (T, bool)) []T {
	if target <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = 1
	}

	results := make([]T, 0, target)
	var mu sync.Mutex
	var stop atomic.Bool
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for !stop.Load() {
				v, ok := attempt(workerID)
				if !ok {
					continue
				}
				mu.Lock()
				if len(results) < target {
					results = append(results, v)
				}
				if len(results) >= target {
					stop.Store(true)
				}
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()

	return results
}
