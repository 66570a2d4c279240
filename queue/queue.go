/*
Package queue implements a concurrent FIFO queue with separate head and tail locks.

The queue always holds a sentinel node, so head and tail are never nil.
Producers only take the tail lock and consumers only take the head lock.
*/
package queue

import (
	"sync"
	"sync/atomic"
)

type node[V any] struct {
	next  atomic.Pointer[node[V]]
	value V
}

// Queue is a two-lock queue.
//
// The zero value is a ready to use unbounded empty queue.
type Queue[V any] struct {
	once sync.Once

	// head is the sentinel. head.next is the front element.
	head   *node[V]
	headMu sync.Mutex

	// tail is the last node. It equals head when the queue is empty.
	tail   *node[V]
	tailMu sync.Mutex

	len atomic.Int64
	cap int
}

// New creates an empty queue.
func New[V any](opts ...Option) *Queue[V] {
	opt := newDefaultQueueOptions()

	for _, o := range opts {
		o.apply(&opt)
	}

	q := &Queue[V]{
		cap: opt.capacity,
	}
	q.lazyInit()

	return q
}

// lazyInit allocates the sentinel of a zero value queue.
func (q *Queue[V]) lazyInit() {
	q.once.Do(func() {
		sentinel := &node[V]{}
		q.head = sentinel
		q.tail = sentinel
	})
}

// Len returns the number of values in the queue.
func (q *Queue[V]) Len() int {
	return int(q.len.Load())
}

// Cap returns the queue capacity. Zero means unbounded.
func (q *Queue[V]) Cap() int {
	return q.cap
}

// Push appends a value at the back of the queue.
// It returns ErrFull if the queue is bounded and has no free capacity.
func (q *Queue[V]) Push(value V) error {
	q.lazyInit()

	n := &node[V]{value: value}

	q.tailMu.Lock()
	defer q.tailMu.Unlock()

	// Only producers increment and they hold tailMu, so a concurrent Pop
	// can only lower the length between the check and the increment.
	if q.cap > 0 && q.len.Load() >= int64(q.cap) {
		return ErrFull
	}
	q.len.Add(1)

	q.tail.next.Store(n)
	q.tail = n

	return nil
}

// Pop removes and returns the front value.
func (q *Queue[V]) Pop() (value V, ok bool) {
	q.lazyInit()

	q.headMu.Lock()
	defer q.headMu.Unlock()

	next := q.head.next.Load()
	if next == nil {
		return value, false
	}

	// next becomes the new sentinel.
	value = next.value
	var zero V
	next.value = zero
	q.head = next

	q.len.Add(-1)

	return value, true
}

// Peek returns the front value without removing it.
func (q *Queue[V]) Peek() (value V, ok bool) {
	q.lazyInit()

	q.headMu.Lock()
	defer q.headMu.Unlock()

	if next := q.head.next.Load(); next != nil {
		return next.value, true
	}

	return value, false
}

// Clear removes all values from the queue.
func (q *Queue[V]) Clear() {
	q.lazyInit()

	q.headMu.Lock()
	defer q.headMu.Unlock()

	q.tailMu.Lock()
	defer q.tailMu.Unlock()

	sentinel := &node[V]{}
	q.head = sentinel
	q.tail = sentinel
	q.len.Store(0)
}
