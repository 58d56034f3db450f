package queue

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/seqflow/pkg/flow"
	"github.com/ib-77/seqflow/pkg/flow/core"
)

func add(n int) flow.Task[int] {
	return func(next flow.Continuation[int], prev int) {
		next(prev + n)
	}
}

func TestDrain_ThreadsResults(t *testing.T) {
	t.Parallel()

	q := New[flow.Task[int]]()
	var inputs []int
	record := func(next flow.Continuation[int], prev int) {
		inputs = append(inputs, prev)
		next(prev)
	}
	q.Push(record)
	q.Push(add(1))
	q.Push(record)
	q.Push(add(10))
	q.Push(record)

	final := -1
	Drain(q, func(result int) { final = result })

	assert.Equal(t, 11, final)
	assert.Equal(t, 0, q.Len())
	if diff := cmp.Diff([]int{0, 1, 11}, inputs); diff != "" {
		t.Fatalf("wrong threaded inputs\n%s", diff)
	}
}

func TestDrain_EmptyQueueCompletesWithZero(t *testing.T) {
	t.Parallel()

	called := false
	Drain(New[flow.Task[string]](), func(result string) {
		called = true
		assert.Equal(t, "", result)
	})
	assert.True(t, called)
}

func TestDrainFrom_SeedsFirstTask(t *testing.T) {
	t.Parallel()

	q := New[flow.Task[int]]()
	q.Push(add(2))

	final := 0
	DrainFrom(q, 40, func(result int) { final = result })
	assert.Equal(t, 42, final)
}

func TestDrain_ObservesPushesDuringDrain(t *testing.T) {
	t.Parallel()

	q := New[flow.Task[int]]()
	var order []string
	q.Push(func(next flow.Continuation[int], prev int) {
		order = append(order, "first")
		q.Push(func(next flow.Continuation[int], prev int) {
			order = append(order, "pushed")
			next(prev + 1)
		})
		next(prev + 1)
	})

	final := 0
	Drain(q, func(result int) {
		order = append(order, "done")
		final = result
	})

	assert.Equal(t, 2, final)
	if diff := cmp.Diff([]string{"first", "pushed", "done"}, order); diff != "" {
		t.Fatalf("wrong drain order\n%s", diff)
	}
}

func TestDrain_AsynchronousTasks(t *testing.T) {
	t.Parallel()

	q := New[flow.Task[[]int]]()
	for i := 1; i <= 3; i++ {
		i := i
		q.Push(func(next flow.Continuation[[]int], prev []int) {
			delay := time.Duration(4-i) * time.Millisecond
			time.AfterFunc(delay, func() {
				next(append(prev, i))
			})
		})
	}

	got := <-core.ToChan(func(done flow.Continuation[[]int]) {
		Drain(q, done)
	})

	require.Len(t, got, 3)
	if diff := cmp.Diff([]int{1, 2, 3}, got); diff != "" {
		t.Fatalf("tasks must run one after another regardless of their duration\n%s", diff)
	}
}

func TestDrain_StalledTaskBlocksQueue(t *testing.T) {
	t.Parallel()

	q := New[flow.Task[int]]()
	q.Push(func(next flow.Continuation[int], prev int) {})
	q.Push(add(1))

	called := false
	Drain(q, func(int) { called = true })

	assert.False(t, called)
	assert.Equal(t, 1, q.Len())
}
