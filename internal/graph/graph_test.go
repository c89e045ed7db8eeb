package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pathGraph(n int) *Graph {
	g := New(n)
	for i := 0; i < n-1; i++ {
		g.AddEdge(i, i+1)
	}
	return g
}

func starGraph(leaves int) *Graph {
	g := New(leaves + 1)
	for i := 1; i <= leaves; i++ {
		g.AddEdge(0, i)
	}
	return g
}

func TestNew_AllocatesContiguousIDs(t *testing.T) {
	g := New(5)
	for i, v := range g.Vertices {
		assert.Equal(t, i, v.ID)
		assert.Empty(t, v.Neighbors)
	}
}

func TestAddEdge_IsSymmetric(t *testing.T) {
	g := New(3)
	g.AddEdge(0, 1)
	assert.Equal(t, []int{1}, g.Vertices[0].Neighbors)
	assert.Equal(t, []int{0}, g.Vertices[1].Neighbors)
	assert.Equal(t, 1, g.NumEdges())
}

func TestBFS_PathIsConnectedWithCorrectHeights(t *testing.T) {
	g := pathGraph(5)
	order, disconnected := g.BFS(0)
	assert.False(t, disconnected)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
	for i, v := range g.Vertices {
		assert.Equal(t, i, v.Height)
	}
}

func TestBFS_DetectsDisconnectedGraph(t *testing.T) {
	g := New(4)
	g.AddEdge(0, 1)
	// vertices 2, 3 are isolated.
	_, disconnected := g.BFS(0)
	assert.True(t, disconnected)
	assert.True(t, g.Disconnected)
}

func TestDFS_VisitsInPlaneOrder(t *testing.T) {
	// root 0 with children 1, 2 (in that neighbor order); 1 has child 3.
	g := New(4)
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(1, 3)
	g.Root = 0

	order := g.DFS(0)
	assert.Equal(t, []int{0, 1, 3, 2}, order)
}

func TestReindex_EdgesFollowRelabeling(t *testing.T) {
	g := New(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.Root = 0

	order := []int{1, 0, 2} // old1->new0, old0->new1, old2->new2
	out := g.Reindex(order)

	require.Len(t, out.Vertices, 3)
	assert.Equal(t, 1, out.Root) // old root (0) is now id 1

	// old vertex 1 (new 0) was connected to old 0 (new 1) and old 2 (new 2).
	assert.ElementsMatch(t, []int{1, 2}, out.Vertices[0].Neighbors)
	assert.ElementsMatch(t, []int{0}, out.Vertices[1].Neighbors)
	assert.ElementsMatch(t, []int{0}, out.Vertices[2].Neighbors)
}

func TestDegreeSequence_ExcludesParentEdgeForNonRoot(t *testing.T) {
	g := New(3)
	g.Root = 0
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	assert.Equal(t, []int{2, 0, 0}, g.DegreeSequence())
}

func TestDegreeProfile_TalliesByOutDegree(t *testing.T) {
	g := New(3)
	g.Root = 0
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	profile := g.DegreeProfile()
	// two leaves (degree 0), one vertex of degree 2.
	assert.Equal(t, []int{2, 0, 1}, profile)
}

func TestHeightSequence(t *testing.T) {
	g := pathGraph(4)
	g.BFS(0)
	assert.Equal(t, []int{0, 1, 2, 3}, g.HeightSequence())
}

func TestNumEdges_SingleVertexIsZero(t *testing.T) {
	g := New(1)
	assert.Equal(t, 0, g.NumEdges())
}
