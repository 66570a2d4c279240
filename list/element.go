package list

// Element is a list element.
type Element[V any] struct {
	next, prev *Element[V]
	list       *List[V]
	Value      V
}

// Next returns the next element or nil if e is the last element in its list.
func (e *Element[V]) Next() *Element[V] {
	if e.list == nil {
		return nil
	}
	return e.next
}

// Prev returns the previous element or nil if e is the first element in its list.
func (e *Element[V]) Prev() *Element[V] {
	if e.list == nil {
		return nil
	}
	return e.prev
}

// detach clears the links and the owner of e.
func (e *Element[V]) detach() {
	e.next = nil
	e.prev = nil
	e.list = nil
}
