// Package graph implements the plane-tree / general-graph primitives the
// simulator builds on: vertices with an adjacency list whose first entry
// is always the parent (for rooted trees), BFS/DFS ordering, and the
// degree/height bookkeeping every downstream component (looptree,
// centrality, graphml output) depends on. Ported from
// _examples/original_source/src/graph/graphstructure.h.
package graph

import (
	"github.com/benediktstufler/grant/internal/container"
	"github.com/benediktstufler/grant/pkg/collections"
)

// Vertex is one node of a Graph. Neighbors[0] is the vertex's parent for
// every non-root vertex of a rooted tree — the invariant graphstructure.h
// documents and every tree-construction routine in this module preserves.
type Vertex struct {
	ID        int
	Height    int
	Deg       int
	Neighbors []int
	// Cent accumulates the raw sum of BFS distances from this vertex to
	// every other vertex; (NumVertices-1) divided by it yields closeness
	// centrality, a convention left for the output layer per spec's
	// documented denominator rule rather than baked into this field.
	Cent uint64
}

// Graph is a collection of vertices with an optional distinguished root
// (meaningful for rooted trees; ignored for general graphs).
type Graph struct {
	Vertices     []*Vertex
	Root         int
	Disconnected bool
}

// New allocates a graph with n unconnected vertices, ids 0..n-1.
func New(n int) *Graph {
	g := &Graph{Vertices: make([]*Vertex, n)}
	for i := range g.Vertices {
		g.Vertices[i] = &Vertex{ID: i}
	}
	return g
}

// AddEdge adds an undirected edge between u and v, appending to both
// vertices' neighbor lists. Ported from graphstructure.h::addEdge, which
// is symmetric in both directions — the "first neighbor is the parent"
// invariant relied on elsewhere in this package falls out of
// construction order, not out of any special-cased insert here: a tree
// built by connecting each parent to its children before any of those
// children connect onward will naturally see the parent arrive first in
// every child's (until-then empty) neighbor list.
func (g *Graph) AddEdge(u, v int) {
	g.Vertices[u].Neighbors = append(g.Vertices[u].Neighbors, v)
	g.Vertices[v].Neighbors = append(g.Vertices[v].Neighbors, u)
}

// BFS computes height and degree for every vertex reachable from root,
// setting g.Disconnected if some vertex was never reached. Ported from
// graphstructure.h::bfsorder.
func (g *Graph) BFS(root int) (order []int, disconnected bool) {
	n := len(g.Vertices)
	visited := collections.NewBitset(n)
	q := container.NewQueue[int](n)

	g.Vertices[root].Height = 0
	visited.Set(root)
	q.Enqueue(root)
	order = make([]int, 0, n)

	for !q.IsEmpty() {
		u, _ := q.Dequeue()
		order = append(order, u)
		for _, v := range g.Vertices[u].Neighbors {
			if visited.Test(v) {
				continue
			}
			visited.Set(v)
			g.Vertices[v].Height = g.Vertices[u].Height + 1
			q.Enqueue(v)
		}
		g.Vertices[u].Deg = len(g.Vertices[u].Neighbors)
		if u != root {
			g.Vertices[u].Deg--
		}
	}

	disconnected = len(order) < n
	g.Disconnected = disconnected
	return order, disconnected
}

// DFS returns the vertices reachable from root in depth-first order.
// Neighbors are pushed onto an explicit stack in reverse so the
// resulting traversal visits them in their natural (first-neighbor-
// first) order, matching graphstructure.h::dfsorder's reversed-push
// convention.
func (g *Graph) DFS(root int) []int {
	n := len(g.Vertices)
	visited := collections.NewBitset(n)
	stack := container.NewStack[int](n)
	stack.Push(root)

	order := make([]int, 0, n)
	for !stack.IsEmpty() {
		u, _ := stack.Pop()
		if visited.Test(u) {
			continue
		}
		visited.Set(u)
		order = append(order, u)

		neighbors := g.Vertices[u].Neighbors
		for i := len(neighbors) - 1; i >= 0; i-- {
			v := neighbors[i]
			if !visited.Test(v) {
				stack.Push(v)
			}
		}
	}
	return order
}

// Reindex returns a new graph whose vertex ids follow order (order[k]
// becomes vertex k in the result), preserving each vertex's Height, Deg
// and edges. Used by TreeBuilder to relabel a BFS-built tree into DFS
// order, per sgwtree.h::deg2dfstree.
func (g *Graph) Reindex(order []int) *Graph {
	n := len(order)
	old2new := make([]int, n)
	for newID, oldID := range order {
		old2new[oldID] = newID
	}

	out := New(n)
	for newID, oldID := range order {
		old := g.Vertices[oldID]
		nv := out.Vertices[newID]
		nv.Height = old.Height
		nv.Deg = old.Deg
		nv.Cent = old.Cent
		nv.Neighbors = make([]int, len(old.Neighbors))
		for i, nb := range old.Neighbors {
			nv.Neighbors[i] = old2new[nb]
		}
	}
	out.Root = old2new[g.Root]
	out.Disconnected = g.Disconnected
	return out
}

// NumEdges returns the number of undirected edges in g, counted once per
// pair.
func (g *Graph) NumEdges() int {
	sum := 0
	for _, v := range g.Vertices {
		sum += len(v.Neighbors)
	}
	return sum / 2
}

// DegreeSequence returns each vertex's out-degree (number of children) in
// the graph's current vertex order, defined as neighbor count minus 1 for
// every vertex except the root (whose parent edge does not exist).
func (g *Graph) DegreeSequence() []int {
	out := make([]int, len(g.Vertices))
	for i, v := range g.Vertices {
		d := len(v.Neighbors)
		if i != g.Root {
			d--
		}
		out[i] = d
	}
	return out
}

// HeightSequence returns each vertex's height in the graph's current
// vertex order.
func (g *Graph) HeightSequence() []int {
	out := make([]int, len(g.Vertices))
	for i, v := range g.Vertices {
		out[i] = v.Height
	}
	return out
}

// DegreeProfile tallies N[k] = number of vertices with exactly k
// children, ported from graphstructure.h::makedegprofile.
func (g *Graph) DegreeProfile() []int {
	maxDeg := 0
	degs := g.DegreeSequence()
	for _, d := range degs {
		if d > maxDeg {
			maxDeg = d
		}
	}
	profile := make([]int, maxDeg+1)
	for _, d := range degs {
		profile[d]++
	}
	return profile
}
