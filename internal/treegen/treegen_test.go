package treegen

import (
	"math/rand/v2"
	"testing"

	"github.com/benediktstufler/grant/internal/binb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandProfile_ExpandsEachCountToItsValue(t *testing.T) {
	// 2 vertices of degree 0, 1 of degree 3: 3 vertices total.
	profile := binb.Profile{2, 0, 0, 1}
	rng := rand.New(rand.NewPCG(1, 1))

	d := ExpandProfile(profile, 3, rng)
	require.Len(t, d, 3)

	counts := map[int]int{}
	for _, v := range d {
		counts[v]++
	}
	assert.Equal(t, 2, counts[0])
	assert.Equal(t, 1, counts[3])
}

// lukasiewiczPrefixSums returns the running sum of (d[i]-1).
func lukasiewiczPrefixSums(d []int) []int {
	sums := make([]int, len(d))
	running := 0
	for i, v := range d {
		running += v - 1
		sums[i] = running
	}
	return sums
}

func TestCyclicShift_ProducesNonNegativePrefixesUntilFinalMinusOne(t *testing.T) {
	// Any sequence summing to -1 has exactly one rotation satisfying the
	// Lukasiewicz non-negativity property (the cyclic lemma, spec.md §8
	// property 1). Exercise this across several raw (unrotated) sequences.
	cases := [][]int{
		{2, 0, 0, 3, 0, 0},
		{0, 3, 0, 0, 0, 3, 0},
		{3, 0, 0, 0, 0, 0, 0, 4},
		{1, 1, 1, 1, 0},
		{0, 0, 0, 3},
	}
	for _, d := range cases {
		sum := 0
		for _, v := range d {
			sum += v - 1
		}
		require.Equal(t, -1, sum, "fixture must sum to -1: %v", d)

		got := append([]int(nil), d...)
		CyclicShift(got)

		sums := lukasiewiczPrefixSums(got)
		for i, s := range sums[:len(sums)-1] {
			assert.GreaterOrEqual(t, s, 0, "prefix sum at %d of %v (from %v) went negative", i, got, d)
		}
		assert.Equal(t, -1, sums[len(sums)-1])

		// The rotation must be a genuine rotation of the input (same
		// multiset of values).
		assert.ElementsMatch(t, d, got)
	}
}

func TestCyclicShift_TieBreakTakesLastMinimum(t *testing.T) {
	// D = [1,1,0,1,0] -> d[i]-1 = [0,0,-1,0,-1], prefix sums
	// [0,0,-1,-1,-2]; the minimum -2 is achieved only at the last index,
	// so no rotation occurs (already the canonical starting point).
	d := []int{1, 1, 0, 1, 0}
	got := append([]int(nil), d...)
	CyclicShift(got)
	assert.Equal(t, d, got)
}

func TestCyclicShift_EmptyIsNoop(t *testing.T) {
	var d []int
	CyclicShift(d)
	assert.Empty(t, d)
}

func TestBuildDFS_SingleVertex(t *testing.T) {
	g := BuildDFS([]int{0})
	require.Len(t, g.Vertices, 1)
	assert.Equal(t, 0, g.Root)
	assert.Equal(t, 0, g.Vertices[0].Height)
	assert.Empty(t, g.Vertices[0].Neighbors)
}

func TestBuildBFS_ParentIsFirstNeighbor(t *testing.T) {
	// Root with 2 children, first child has 1 child of its own.
	d := []int{2, 1, 0, 0}
	g := BuildBFS(d)

	require.Len(t, g.Vertices[1].Neighbors, 2) // parent + 1 child
	assert.Equal(t, 0, g.Vertices[1].Neighbors[0], "vertex 1's first neighbor must be its parent")

	require.Len(t, g.Vertices[2].Neighbors, 1)
	assert.Equal(t, 0, g.Vertices[2].Neighbors[0])

	require.Len(t, g.Vertices[3].Neighbors, 1)
	assert.Equal(t, 1, g.Vertices[3].Neighbors[0])

	assert.Equal(t, 0, g.Vertices[0].Height)
	assert.Equal(t, 1, g.Vertices[1].Height)
	assert.Equal(t, 1, g.Vertices[2].Height)
	assert.Equal(t, 2, g.Vertices[3].Height)
}

func TestBuildDFS_TreeIsConnectedAcyclicWithNMinusOneEdges(t *testing.T) {
	d := []int{2, 1, 0, 0}
	g := BuildDFS(d)
	assert.Equal(t, len(g.Vertices)-1, g.NumEdges())

	order, disconnected := g.BFS(g.Root)
	assert.False(t, disconnected)
	assert.Len(t, order, len(g.Vertices))
}
