package centrality

import (
	"testing"

	"github.com/benediktstufler/grant/internal/graph"
	"github.com/stretchr/testify/assert"
)

func pathGraph(n int) *graph.Graph {
	g := graph.New(n)
	for i := 0; i < n-1; i++ {
		g.AddEdge(i, i+1)
	}
	return g
}

func starGraph(leaves int) *graph.Graph {
	g := graph.New(leaves + 1)
	for i := 1; i <= leaves; i++ {
		g.AddEdge(0, i)
	}
	return g
}

func centValues(g *graph.Graph) []uint64 {
	out := make([]uint64, len(g.Vertices))
	for i, v := range g.Vertices {
		out[i] = v.Cent
	}
	return out
}

func TestCompute_PathOfFive(t *testing.T) {
	// spec.md §8 S3: path 0-1-2-3-4.
	g := pathGraph(5)
	Compute(g, 0, 5, 2)
	assert.Equal(t, []uint64{10, 7, 6, 7, 10}, centValues(g))
}

func TestCompute_StarOfFour(t *testing.T) {
	// spec.md §8 S4: center 0 with leaves 1..4.
	g := starGraph(4)
	Compute(g, 0, 5, 3)
	assert.Equal(t, uint64(4), g.Vertices[0].Cent)
	for i := 1; i <= 4; i++ {
		assert.Equal(t, uint64(7), g.Vertices[i].Cent)
	}
}

func TestCompute_SingleWorkerMatchesMultiWorker(t *testing.T) {
	g1 := pathGraph(9)
	Compute(g1, 0, 9, 1)

	g2 := pathGraph(9)
	Compute(g2, 0, 9, 6)

	assert.Equal(t, centValues(g1), centValues(g2))
}

func TestCompute_PartialRangeOnlyTouchesRequestedVertices(t *testing.T) {
	g := pathGraph(5)
	Compute(g, 1, 3, 2)
	// vertices 0 and 4 were never requested, so they stay at the zero value.
	assert.Equal(t, uint64(0), g.Vertices[0].Cent)
	assert.Equal(t, uint64(0), g.Vertices[4].Cent)
	assert.NotZero(t, g.Vertices[1].Cent)
	assert.NotZero(t, g.Vertices[2].Cent)
}

func TestCompute_DisconnectedGraphOnlySumsOwnComponent(t *testing.T) {
	g := graph.New(4)
	g.AddEdge(0, 1)
	g.AddEdge(2, 3)
	Compute(g, 0, 4, 2)
	assert.Equal(t, uint64(1), g.Vertices[0].Cent)
	assert.Equal(t, uint64(1), g.Vertices[1].Cent)
	assert.Equal(t, uint64(1), g.Vertices[2].Cent)
	assert.Equal(t, uint64(1), g.Vertices[3].Cent)
}

func TestCompute_IsolatedVertexHasZeroCentrality(t *testing.T) {
	g := graph.New(3)
	g.AddEdge(0, 1)
	// vertex 2 is isolated.
	Compute(g, 0, 3, 2)
	assert.Equal(t, uint64(0), g.Vertices[2].Cent)
}

func TestCompute_SingleVertexGraph(t *testing.T) {
	g := graph.New(1)
	Compute(g, 0, 1, 4)
	assert.Equal(t, uint64(0), g.Vertices[0].Cent)
}

func TestCompute_EmptyRangeIsNoop(t *testing.T) {
	g := pathGraph(3)
	Compute(g, 2, 2, 2)
	for _, v := range g.Vertices {
		assert.Equal(t, uint64(0), v.Cent)
	}
}
