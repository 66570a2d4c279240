/*
Package linkedq implements linked data structures with explicit node ownership.

The list subpackage provides a doubly linked list that is not safe for concurrent use.
The queue subpackage provides a two-lock FIFO queue.
SyncList wraps the list for concurrent use and hands element chains between goroutines with Take.
*/
package linkedq

import (
	"sync"

	"github.com/linkedq/linkedq/list"
	"github.com/linkedq/linkedq/queue"
	"github.com/puzpuzpuz/xsync/v2"
)

// NewQueue creates an empty two-lock queue.
func NewQueue[V any](opts ...queue.Option) *queue.Queue[V] {
	return queue.New[V](opts...)
}

// SyncList is a doubly linked list safe for concurrent use.
// Element handles are never exposed, only values.
//
// The zero value is a ready to use empty list.
type SyncList[V any] struct {
	once sync.Once
	mu   *xsync.RBMutex
	list list.List[V]
}

// NewSyncList creates an empty list.
func NewSyncList[V any]() *SyncList[V] {
	s := &SyncList[V]{}
	s.lazyInit()
	return s
}

func (s *SyncList[V]) lazyInit() {
	s.once.Do(func() {
		s.mu = xsync.NewRBMutex()
	})
}

// Len returns the number of values in the list.
func (s *SyncList[V]) Len() int {
	s.lazyInit()

	t := s.mu.RLock()
	defer s.mu.RUnlock(t)

	return s.list.Len()
}

// PushBack inserts a value at the back of the list.
func (s *SyncList[V]) PushBack(value V) {
	s.lazyInit()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.list.PushBack(value)
}

// PushFront inserts a value at the front of the list.
func (s *SyncList[V]) PushFront(value V) {
	s.lazyInit()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.list.PushFront(value)
}

// PopFront removes and returns the first value.
func (s *SyncList[V]) PopFront() (V, bool) {
	s.lazyInit()

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.list.PopFront()
}

// PopBack removes and returns the last value.
func (s *SyncList[V]) PopBack() (V, bool) {
	s.lazyInit()

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.list.PopBack()
}

// Front returns the first value.
func (s *SyncList[V]) Front() (value V, ok bool) {
	s.lazyInit()

	t := s.mu.RLock()
	defer s.mu.RUnlock(t)

	if e := s.list.Front(); e != nil {
		return e.Value, true
	}

	return value, false
}

// Back returns the last value.
func (s *SyncList[V]) Back() (value V, ok bool) {
	s.lazyInit()

	t := s.mu.RLock()
	defer s.mu.RUnlock(t)

	if e := s.list.Back(); e != nil {
		return e.Value, true
	}

	return value, false
}

// Range calls f for each value in forward order.
// If f returns false, Range stops the iteration.
//
// f must not modify the list.
func (s *SyncList[V]) Range(f func(value V) bool) {
	s.lazyInit()

	t := s.mu.RLock()
	defer s.mu.RUnlock(t)

	s.list.Do(func(e *list.Element[V]) bool {
		return f(e.Value)
	})
}

// Values returns the list values in forward order.
func (s *SyncList[V]) Values() []V {
	s.lazyInit()

	t := s.mu.RLock()
	defer s.mu.RUnlock(t)

	return s.list.Values()
}

// Clear removes all values.
func (s *SyncList[V]) Clear() {
	s.lazyInit()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.list.Clear()
}

// Take detaches every element and returns them as a list owned by the caller.
// The SyncList is left empty and keeps no reference to the returned elements.
func (s *SyncList[V]) Take() *list.List[V] {
	s.lazyInit()

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.list.Take()
}

func (s *SyncList[V]) String() string {
	s.lazyInit()

	t := s.mu.RLock()
	defer s.mu.RUnlock(t)

	return s.list.String()
}
