package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_PushPopOrder(t *testing.T) {
	s := NewStack[int](0)
	assert.True(t, s.IsEmpty())

	s.Push(1)
	s.Push(2)
	s.Push(3)
	assert.Equal(t, 3, s.Len())

	v, ok := s.Pop()
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	v, ok = s.Pop()
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	s.Clear()
	assert.True(t, s.IsEmpty())

	_, ok = s.Pop()
	assert.False(t, ok)
}

func TestQueue_FIFOOrder(t *testing.T) {
	q := NewQueue[string](0)
	assert.True(t, q.IsEmpty())

	q.Enqueue("a")
	q.Enqueue("b")
	q.Enqueue("c")
	assert.Equal(t, 3, q.Len())

	v, ok := q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	q.Clear()
	assert.True(t, q.IsEmpty())
	_, ok = q.Dequeue()
	assert.False(t, ok)
}

func TestQueue_CompactsAfterManyDequeues(t *testing.T) {
	q := NewQueue[int](0)
	const n = 3000
	for i := 0; i < n; i++ {
		q.Enqueue(i)
	}
	for i := 0; i < n; i++ {
		v, ok := q.Dequeue()
		assert.True(t, ok)
		assert.Equal(t, i, v)
	}
	assert.True(t, q.IsEmpty())
}

func TestSlicePool_GetPutReusesBacking(t *testing.T) {
	p := NewSlicePool[int](4)
	s := p.Get()
	*s = append(*s, 1, 2, 3)
	p.Put(s)

	s2 := p.Get()
	assert.Equal(t, 0, len(*s2))
}
