// Package treegen turns a balls-in-boxes profile into a uniformly random
// plane tree: expand the profile into a shuffled degree sequence, apply
// the cyclic shift that the Cyclic Lemma guarantees makes it a valid
// tree encoding, then realize that sequence as a graph in BFS and DFS
// order. Ported from
// _examples/original_source/src/rand/sgwtree.h::gendegsequence/cycshift.
package treegen

import (
	"math/rand/v2"

	"github.com/benediktstufler/grant/internal/binb"
)

// ExpandProfile turns a balls-in-boxes Profile (Profile[i] = number of
// vertices with i children) into a length-size sequence listing each
// vertex's out-degree, then shuffles it uniformly at random — the Go
// rendition of gendegsequence's sequential fill plus gsl_ran_shuffle.
func ExpandProfile(profile binb.Profile, size int, rng *rand.Rand) []int {
	out := make([]int, 0, size)
	for i, count := range profile {
		for j := 0; j < count; j++ {
			out = append(out, i)
		}
	}
	rng.Shuffle(len(out), func(a, b int) { out[a], out[b] = out[b], out[a] })
	return out
}

// CyclicShift rewrites D in place into a valid plane-tree out-degree
// sequence via the Cyclic Lemma: find the index where the running sum of
// (D[i]-1) first achieves its minimum, and rotate the sequence to start
// right after that index. Ported from sgwtree.h::cycshift.
//
// The running minimum is tracked with a strict "<" comparison, so the
// *first* index achieving the minimum is kept. Rotating after a later
// index that ties it would leave the earlier minimum inside the rotated
// sequence as a negative strict prefix sum.
func CyclicShift(d []int) {
	n := len(d)
	if n == 0 {
		return
	}

	sum := 0
	min := 0
	indMin := 0
	for i := 0; i < n; i++ {
		sum += d[i] - 1
		if sum < min {
			min = sum
			indMin = i
		}
	}

	if indMin >= n-1 {
		return
	}

	tmp := make([]int, n)
	j := 0
	for i := indMin + 1; i < n; i++ {
		tmp[j] = d[i]
		j++
	}
	for i := 0; i <= indMin; i++ {
		tmp[j] = d[i]
		j++
	}
	copy(d, tmp)
}
