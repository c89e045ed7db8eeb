// Package looptree implements the looptree transform: a BFS-driven
// rewrite that replaces every vertex's set of not-yet-visited neighbors
// with a cycle running through them (and back through the vertex itself
// when it has more than one such neighbor). Ported from
// _examples/original_source/src/graph/graphstructure.h::looptree.
package looptree

import (
	"github.com/benediktstufler/grant/internal/container"
	"github.com/benediktstufler/grant/internal/graph"
)

// Build computes the looptree of g rooted at root. g must be a tree
// (exactly len(g.Vertices)-1 edges); callers are responsible for
// checking that precondition (internal/driver does, for externally
// loaded graphs) since looptree itself has no way to detect a cycle in
// its input without doing the traversal it's already committed to.
func Build(g *graph.Graph, root int) *graph.Graph {
	n := len(g.Vertices)
	h := graph.New(n)
	h.Root = root

	visited := make([]bool, n)
	q := container.NewQueue[int](n)
	cyc := container.NewQueue[int](n)

	visited[root] = true
	q.Enqueue(root)

	for !q.IsEmpty() {
		v, _ := q.Dequeue()
		for _, nb := range g.Vertices[v].Neighbors {
			if visited[nb] {
				continue
			}
			visited[nb] = true
			cyc.Enqueue(nb)
			q.Enqueue(nb)
		}

		if cyc.IsEmpty() {
			continue
		}

		w, _ := cyc.Dequeue()
		h.AddEdge(v, w)

		hasMiddle := !cyc.IsEmpty()
		for !cyc.IsEmpty() {
			x, _ := cyc.Dequeue()
			h.AddEdge(w, x)
			w = x
		}
		if hasMiddle {
			h.AddEdge(v, w)
		}
	}

	return h
}
