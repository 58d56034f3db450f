package queue

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_FIFO(t *testing.T) {
	t.Parallel()

	q := New[int]()
	q.Push(1)
	q.Push(2)
	q.Push(3)
	require.Equal(t, 3, q.Len())

	v, ok := q.Shift()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	q.Push(4)
	if diff := cmp.Diff([]int{2, 3, 4}, q.Snapshot()); diff != "" {
		t.Fatalf("wrong queue contents\n%s", diff)
	}
}

func TestQueue_ShiftEmpty(t *testing.T) {
	t.Parallel()

	q := New[string]()
	v, ok := q.Shift()
	assert.False(t, ok)
	assert.Equal(t, "", v)

	q.Push("x")
	_, _ = q.Shift()
	_, ok = q.Shift()
	assert.False(t, ok)
	assert.Equal(t, 0, q.Len())

	q.Push("y")
	v, ok = q.Shift()
	assert.True(t, ok)
	assert.Equal(t, "y", v)
}

func TestQueue_ConcurrentPush(t *testing.T) {
	t.Parallel()

	q := New[int]()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				q.Push(i)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 8000, q.Len())
	assert.Len(t, q.Snapshot(), 8000)
}
