// Package collections provides the small generic data structures the
// simulator's graph traversals are built on.
package collections

// Bitset is a fixed-size, memory-efficient boolean set used to track
// visited vertices during BFS/DFS: 1 bit per vertex id instead of the
// byte-per-entry a []bool would cost.
type Bitset struct {
	bits []uint64
	size int
}

// NewBitset creates a bitset able to hold indices in [0, size).
func NewBitset(size int) *Bitset {
	if size <= 0 {
		size = 1
	}
	numWords := (size + 63) / 64
	return &Bitset{
		bits: make([]uint64, numWords),
		size: size,
	}
}

// Set sets the bit at index i.
func (b *Bitset) Set(i int) {
	if i < 0 || i >= b.size {
		return
	}
	b.bits[i/64] |= 1 << uint(i%64)
}

// Test returns true if the bit at index i is set.
func (b *Bitset) Test(i int) bool {
	if i < 0 || i >= b.size {
		return false
	}
	return b.bits[i/64]&(1<<uint(i%64)) != 0
}
