package queue

import "errors"

// ErrFull indicates a bounded queue has no free capacity.
var ErrFull = errors.New("queue is full")
