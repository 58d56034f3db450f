package queue

import "sync"

// Queue is a FIFO backed by a singly linked list. Push and Shift are O(1)
// and safe for concurrent use.
type Queue[E any] struct {
	mu   sync.Mutex
	head *node[E]
	tail *node[E]
	size int
}

type node[E any] struct {
	value E
	next  *node[E]
}

func New[E any]() *Queue[E] {
	return &Queue[E]{}
}

// Push appends v at the back.
func (q *Queue[E]) Push(v E) {
	n := &node[E]{value: v}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.tail == nil {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.size++
}

// Shift removes and returns the front element. ok is false when q is empty.
func (q *Queue[E]) Shift() (v E, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := q.head
	if n == nil {
		return v, false
	}
	q.head = n.next
	if q.head == nil {
		q.tail = nil
	}
	q.size--
	return n.value, true
}

func (q *Queue[E]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.size
}

// Snapshot copies the queued elements, front first.
func (q *Queue[E]) Snapshot() []E {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]E, 0, q.size)
	for n := q.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}
