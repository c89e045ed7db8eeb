// Package work provides the two concurrency shapes the simulator needs:
// a fork-join partition run (for closeness centrality, adapted from
// the teacher's ChunkProcessor) and a collect-N worker pool with early
// exit (for balls-in-boxes rejection sampling, with no analogue in the
// teacher's single-pass pools — modeled on the source's threadedbinb
// mutex protocol instead).
package work

// Partition splits [0,n) into k contiguous slices of nearly-equal size,
// the remainder distributed to the first slices, one vertex short of
// none. This is the "stacked boxes" partitioning bfscentrality.h uses for
// its per-thread segment of starting vertices, extracted standalone (the
// teacher's ChunkProcessor computes equivalent bounds internally but never
// exposes them) because the centrality engine needs the boundaries
// themselves, not just a reduced value.
func Partition(n, k int) [][2]int {
	if k <= 0 {
		k = 1
	}
	if k > n {
		k = n
	}
	if n <= 0 {
		return nil
	}
	bounds := make([][2]int, 0, k)
	base := n / k
	rem := n % k
	start := 0
	for i := 0; i < k; i++ {
		size := base
		if i < rem {
			size++
		}
		if size == 0 {
			continue
		}
		end := start + size
		bounds = append(bounds, [2]int{start, end})
		start = end
	}
	return bounds
}

// RunPartitioned runs fn once per partition of [0,n) into up to workers
// contiguous slices, blocking until every worker has returned. Each
// worker receives its own [start,end) half-open range and its index.
// There is no shared state between workers beyond what fn closes over,
// matching the source's "threads never communicate once launched" shape.
func RunPartitioned(n, workers int, fn func(workerID, start, end int)) {
	bounds := Partition(n, workers)
	if len(bounds) == 0 {
		return
	}
	done := make(chan struct{}, len(bounds))
	for i, b := range bounds {
		go func(workerID, start, end int) {
			defer func() { done <- struct{}{} }()
			fn(workerID, start, end)
		}(i, b[0], b[1])
	}
	for range bounds {
		<-done
	}
}
