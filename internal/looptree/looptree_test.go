package looptree

import (
	"testing"

	"github.com/benediktstufler/grant/internal/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// branchingTree builds spec.md §8 S5's fixture: root 0 with children 1,
// 2, 3; vertex 1 has children 4, 5.
func branchingTree() *graph.Graph {
	g := graph.New(6)
	g.Root = 0
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(0, 3)
	g.AddEdge(1, 4)
	g.AddEdge(1, 5)
	return g
}

func hasUndirectedEdge(g *graph.Graph, u, v int) bool {
	for _, nb := range g.Vertices[u].Neighbors {
		if nb == v {
			return true
		}
	}
	return false
}

func TestBuild_BranchingTreeProducesExpectedCycles(t *testing.T) {
	g := branchingTree()
	h := Build(g, g.Root)

	require.Len(t, h.Vertices, 6)

	// the 0-centered 4-cycle through children 1, 2, 3.
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		assert.True(t, hasUndirectedEdge(h, e[0], e[1]), "missing edge %v", e)
	}
	// the 1-centered 3-cycle through children 4, 5.
	for _, e := range [][2]int{{1, 4}, {4, 5}, {5, 1}} {
		assert.True(t, hasUndirectedEdge(h, e[0], e[1]), "missing edge %v", e)
	}

	assert.Equal(t, 2, len(h.Vertices[0].Neighbors))
	assert.Len(t, h.Vertices[2].Neighbors, 2)
	assert.Len(t, h.Vertices[3].Neighbors, 2)
}

func TestBuild_PathTreeUnchangedUpToEdgeOrder(t *testing.T) {
	// Every internal vertex has out-degree 1: spec.md §8 property 6 says
	// the looptree of such a tree equals the tree itself.
	g := graph.New(4)
	g.Root = 0
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)

	h := Build(g, g.Root)
	assert.Equal(t, g.NumEdges(), h.NumEdges())
	for u := 0; u < 4; u++ {
		for _, v := range g.Vertices[u].Neighbors {
			assert.True(t, hasUndirectedEdge(h, u, v))
		}
	}
}

func TestBuild_PreservesVertexCount(t *testing.T) {
	g := branchingTree()
	h := Build(g, g.Root)
	assert.Equal(t, len(g.Vertices), len(h.Vertices))
}

func TestBuild_SingleChildProducesOneEdgeNotACycle(t *testing.T) {
	// Out-degree 1 at the root: the d=1 case adds a single edge, not a
	// self-returning cycle.
	g := graph.New(2)
	g.Root = 0
	g.AddEdge(0, 1)
	h := Build(g, g.Root)
	assert.Equal(t, []int{1}, h.Vertices[0].Neighbors)
	assert.Equal(t, []int{0}, h.Vertices[1].Neighbors)
}

func TestBuild_SingleVertexHasNoEdges(t *testing.T) {
	g := graph.New(1)
	h := Build(g, 0)
	assert.Empty(t, h.Vertices[0].Neighbors)
}
