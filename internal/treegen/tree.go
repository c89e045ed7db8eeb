package treegen

import "github.com/benediktstufler/grant/internal/graph"

// BuildBFS realizes an out-degree sequence D as a tree whose i-th vertex
// (in construction order) has D[i] children, assigning child ids
// sequentially so the result is exactly the BFS order of the tree it
// defines. Ported from sgwtree.h::deg2bfstree.
func BuildBFS(d []int) *graph.Graph {
	n := len(d)
	g := graph.New(n)
	if n > 0 {
		g.Root = 0
		g.Vertices[0].Height = 0
	}

	pos := 1
	for i := 0; i < n; i++ {
		g.Vertices[i].Deg = d[i]
		for j := 0; j < d[i]; j++ {
			g.AddEdge(i, pos)
			g.Vertices[pos].Height = g.Vertices[i].Height + 1
			pos++
		}
	}
	return g
}

// BuildDFS builds the BFS-order tree from d, then relabels vertex ids
// into depth-first order. Ported from sgwtree.h::deg2dfstree: the
// returned graph's Vertices are in DFS order; callers that also need the
// original BFS order can rebuild it from d via BuildBFS.
func BuildDFS(d []int) *graph.Graph {
	g := BuildBFS(d)
	order := g.DFS(g.Root)
	return g.Reindex(order)
}
