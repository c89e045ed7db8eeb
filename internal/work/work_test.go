package work

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartition_EqualSplit(t *testing.T) {
	bounds := Partition(10, 2)
	assert.Equal(t, [][2]int{{0, 5}, {5, 10}}, bounds)
}

func TestPartition_RemainderGoesToFirstSlices(t *testing.T) {
	bounds := Partition(10, 3)
	assert.Equal(t, [][2]int{{0, 4}, {4, 7}, {7, 10}}, bounds)
}

func TestPartition_MoreWorkersThanItems(t *testing.T) {
	bounds := Partition(2, 5)
	total := 0
	for _, b := range bounds {
		total += b[1] - b[0]
	}
	assert.Equal(t, 2, total)
	assert.LessOrEqual(t, len(bounds), 2)
}

func TestPartition_EmptyRange(t *testing.T) {
	assert.Nil(t, Partition(0, 4))
}

func TestRunPartitioned_CoversEveryIndexExactlyOnce(t *testing.T) {
	const n = 97
	seen := make([]int32, n)
	RunPartitioned(n, 8, func(_, start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&seen[i], 1)
		}
	})
	for i, c := range seen {
		assert.Equal(t, int32(1), c, "index %d visited %d times", i, c)
	}
}

func TestCollectN_ReturnsExactlyTarget(t *testing.T) {
	const target = 50
	var attempts int64
	results := CollectN(4, target, func(workerID int) (int, bool) {
		n := atomic.AddInt64(&attempts, 1)
		// reject every third draw to exercise the retry path
		if n%3 == 0 {
			return 0, false
		}
		return workerID, true
	})
	assert.Len(t, results, target)
}

func TestCollectN_ZeroTargetReturnsNil(t *testing.T) {
	results := CollectN(2, 0, func(workerID int) (int, bool) { return 0, true })
	assert.Nil(t, results)
}

func TestCollectN_SingleWorker(t *testing.T) {
	results := CollectN(1, 5, func(workerID int) (int, bool) { return 1, true })
	assert.Len(t, results, 5)
}
