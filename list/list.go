/*
Package list implements a doubly linked list with nullable ends.

The list owns its elements through the next links starting at the head.
The prev links are back references only. An empty list has nil head and tail.
*/
package list

import (
	"fmt"
	"strings"
)

// List is a doubly linked list.
//
// The zero value is a ready to use empty list.
type List[V any] struct {
	head *Element[V]
	tail *Element[V]
	len  int
}

// Len returns the number of elements in the list.
func (l *List[V]) Len() int {
	return l.len
}

// Front returns the first element of the list or nil.
func (l *List[V]) Front() *Element[V] {
	return l.head
}

// Back returns the last element of the list or nil.
func (l *List[V]) Back() *Element[V] {
	return l.tail
}

// PushBack inserts a value at the back of list l and returns the new element.
func (l *List[V]) PushBack(value V) *Element[V] {
	e := &Element[V]{Value: value}
	l.insertAfter(e, l.tail)
	return e
}

// PushFront inserts a value at the front of list l and returns the new element.
func (l *List[V]) PushFront(value V) *Element[V] {
	e := &Element[V]{Value: value}
	l.insertBefore(e, l.head)
	return e
}

// PopFront removes the first element and returns its value.
func (l *List[V]) PopFront() (value V, ok bool) {
	if l.head == nil {
		return value, false
	}
	return l.Remove(l.head), true
}

// PopBack removes the last element and returns its value.
func (l *List[V]) PopBack() (value V, ok bool) {
	if l.tail == nil {
		return value, false
	}
	return l.Remove(l.tail), true
}

// Do calls function f on each element of the list, in forward order.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *List[V]) Do(f func(e *Element[V]) bool) {
	for e := l.head; e != nil; e = e.next {
		if !f(e) {
			return
		}
	}
}

// Values returns the list values in forward order.
func (l *List[V]) Values() []V {
	values := make([]V, 0, l.len)
	for e := l.head; e != nil; e = e.next {
		values = append(values, e.Value)
	}
	return values
}

// MoveAfter moves an element to its new position after mark.
// If mark == l.Back(), e becomes the new back element.
func (l *List[V]) MoveAfter(e, mark *Element[V]) {
	l.mustOwn(e)
	l.mustOwn(mark)

	if e == mark || mark.next == e {
		return
	}

	l.unlink(e)
	l.insertAfter(e, mark)
}

// MoveBefore moves an element to its new position before mark.
// If mark == l.Front(), e becomes the new front element.
func (l *List[V]) MoveBefore(e, mark *Element[V]) {
	l.mustOwn(e)
	l.mustOwn(mark)

	if e == mark || mark.prev == e {
		return
	}

	l.unlink(e)
	l.insertBefore(e, mark)
}

// MoveToFront moves the element to the front of list l.
func (l *List[V]) MoveToFront(e *Element[V]) {
	l.MoveBefore(e, l.head)
}

// MoveToBack moves the element to the back of list l.
func (l *List[V]) MoveToBack(e *Element[V]) {
	l.MoveAfter(e, l.tail)
}

// Move moves element e forward or backwards by at most delta positions
// or until the element becomes the front or back element in the list.
func (l *List[V]) Move(e *Element[V], delta int) {
	l.mustOwn(e)

	mark := e

	switch {
	case delta == 0:
		return

	case delta > 0:
		for i := 0; i < delta && mark.next != nil; i++ {
			mark = mark.next
		}

		l.MoveAfter(e, mark)

	case delta < 0:
		for i := 0; i > delta && mark.prev != nil; i-- {
			mark = mark.prev
		}

		l.MoveBefore(e, mark)
	}
}

// Remove an element from the list and return its value.
func (l *List[V]) Remove(e *Element[V]) V {
	l.mustOwn(e)
	l.unlink(e)
	e.detach()
	return e.Value
}

// Clear removes all elements from the list.
func (l *List[V]) Clear() {
	for e := l.head; e != nil; {
		next := e.next
		e.detach()
		e = next
	}
	l.head = nil
	l.tail = nil
	l.len = 0
}

// Take moves all elements of l into a new list and returns it.
// l is left empty. Elements keep their identity and order.
func (l *List[V]) Take() *List[V] {
	taken := &List[V]{
		head: l.head,
		tail: l.tail,
		len:  l.len,
	}

	for e := taken.head; e != nil; e = e.next {
		e.list = taken
	}

	l.head = nil
	l.tail = nil
	l.len = 0

	return taken
}

// String formats the list values in forward order.
func (l *List[V]) String() string {
	var sb strings.Builder

	sb.WriteByte('[')
	for e := l.head; e != nil; e = e.next {
		fmt.Fprint(&sb, e.Value)
		if e.next != nil {
			sb.WriteString(", ")
		}
	}
	sb.WriteByte(']')

	return sb.String()
}

// insertAfter links a detached element e after mark.
// A nil mark inserts e at the front.
func (l *List[V]) insertAfter(e, mark *Element[V]) {
	e.list = l
	e.prev = mark

	if mark == nil {
		e.next = l.head
		l.head = e
	} else {
		e.next = mark.next
		mark.next = e
	}

	if e.next == nil {
		l.tail = e
	} else {
		e.next.prev = e
	}

	l.len++
}

// insertBefore links a detached element e before mark.
// A nil mark inserts e at the back.
func (l *List[V]) insertBefore(e, mark *Element[V]) {
	if mark == nil {
		l.insertAfter(e, l.tail)
		return
	}
	l.insertAfter(e, mark.prev)
}

// unlink removes e from the chain, keeping its owner.
func (l *List[V]) unlink(e *Element[V]) {
	if e.prev == nil {
		l.head = e.next
	} else {
		e.prev.next = e.next
	}

	if e.next == nil {
		l.tail = e.prev
	} else {
		e.next.prev = e.prev
	}

	e.next = nil
	e.prev = nil
	l.len--
}

func (l *List[V]) mustOwn(e *Element[V]) {
	if e == nil || e.list != l {
		panic("list: invalid element")
	}
}
