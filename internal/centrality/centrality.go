// Package centrality computes the closeness centrality of every vertex
// of a graph via per-vertex BFS, distributed across a fixed worker count
// by partitioning the vertex range into contiguous, roughly-equal
// segments. Ported from
// _examples/original_source/src/graph/bfscentrality.h.
package centrality

import (
	"github.com/benediktstufler/grant/internal/container"
	"github.com/benediktstufler/grant/internal/graph"
	"github.com/benediktstufler/grant/internal/work"
)

// Scratch buffers for the per-worker status/dist/queue arrays are
// pooled at package scope: a driver run calls Compute once per sample
// that requests centrality output, and pooling lets each later call
// reuse an earlier call's backing arrays
// instead of re-allocating three n-sized slices per worker.
var (
	statusPool = container.NewSlicePool[int](0)
	distPool   = container.NewSlicePool[uint64](0)
	queuePool  = container.NewSlicePool[int](0)
)

// Compute sets g.Vertices[i].Cent to the sum of BFS distances from
// vertex i to every other vertex, for every i in [start,end), splitting
// the work across up to workers goroutines via
// internal/work.RunPartitioned.
//
// Each worker reuses one status array and one queue across all of its
// starting vertices: status[v] holds the id of the vertex currently
// being explored from once v has been queued, so checking "has v been
// queued during this BFS" is a single integer comparison against the
// current root id rather than a reset pass over the whole array between
// runs — the same self-id sentinel trick bfscentrality.h's
// "arr[].status != i" check relies on.
func Compute(g *graph.Graph, start, end, workers int) {
	if end <= start {
		return
	}
	n := len(g.Vertices)

	work.RunPartitioned(end-start, workers, func(_, segStart, segEnd int) {
		statusBuf := statusPool.Get()
		status := *statusBuf
		if cap(status) < n {
			status = make([]int, n)
		} else {
			status = status[:n]
		}
		for i := range status {
			status[i] = -1
		}
		defer func() { *statusBuf = status; statusPool.Put(statusBuf) }()

		distBuf := distPool.Get()
		dist := *distBuf
		if cap(dist) < n {
			dist = make([]uint64, n)
		} else {
			dist = dist[:n]
		}
		defer func() { *distBuf = dist; distPool.Put(distBuf) }()

		queueBuf := queuePool.Get()
		queue := *queueBuf
		if cap(queue) < n {
			queue = make([]int, n)
		} else {
			queue = queue[:n]
		}
		defer func() { *queueBuf = queue; queuePool.Put(queueBuf) }()

		for i := start + segStart; i < start+segEnd; i++ {
			pop := 1
			queue[0] = i
			status[i] = i
			dist[i] = 0

			var total uint64
			for j := 0; j < n && j != pop; j++ {
				v := queue[j]
				total += dist[v]
				for _, nb := range g.Vertices[v].Neighbors {
					if status[nb] == i {
						continue
					}
					queue[pop] = nb
					pop++
					status[nb] = i
					dist[nb] = dist[v] + 1
				}
			}
			g.Vertices[i].Cent = total
		}
	})
}
