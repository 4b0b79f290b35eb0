package utils

import (
	"iter"

	"github.com/TimothyDexter/FiveM-StanceModifier/oerror"
)

// CircularQueue keeps the most recent items appended to it, up to a fixed capacity. Appending to a
// full queue drops the oldest item.
type CircularQueue[T any] struct {
	items []T
	head  int
	size  int
}

func NewCircularQueue[T any](capacity int) *CircularQueue[T] {
	return &CircularQueue[T]{items: make([]T, capacity)}
}

// Append appends an item or returns an error if the queue has zero capacity.
func (q *CircularQueue[T]) Append(item T) error {
	if len(q.items) == 0 {
		return oerror.New("circularQueue: append on zero-capacity queue")
	}
	q.items[(q.head+q.size)%len(q.items)] = item
	if q.size == len(q.items) {
		q.head = (q.head + 1) % len(q.items)
	} else {
		q.size++
	}
	return nil
}

// Get returns the item at logical position index (0 = oldest).
func (q *CircularQueue[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= q.size {
		return zero, false
	}
	return q.items[(q.head+index)%len(q.items)], true
}

// Last returns the newest item.
func (q *CircularQueue[T]) Last() (T, bool) {
	return q.Get(q.size - 1)
}

// Iter iterates the items from oldest to newest.
func (q *CircularQueue[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for index := range q.size {
			if !yield(q.items[(q.head+index)%len(q.items)]) {
				return
			}
		}
	}
}

// Len returns the number of items in the queue.
func (q *CircularQueue[T]) Len() int {
	return q.size
}

// Cap returns the maximum number of items the queue holds.
func (q *CircularQueue[T]) Cap() int {
	return len(q.items)
}
