package queue

import (
	"iter"
)

var _ Queue[int] = (*Ring[int])(nil)

// Ring is a fixed-capacity circular FIFO queue.
// Slots are addressed by index modulo capacity, so enqueue and dequeue never shift elements.
// It is NOT thread-safe.
type Ring[T any] struct {
	slots []T // backing array, len == capacity
	front int // index of the oldest item
	count int // number of occupied slots
}

// NewRing creates an empty Ring holding at most capacity items.
// Unlike the byte ring buffer, the capacity is kept exactly as given and never grows.
func NewRing[T any](capacity int) (*Ring[T], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Ring[T]{slots: make([]T, capacity)}, nil
}

// index maps logical position i (0 = front) onto the backing array.
func (q *Ring[T]) index(i int) int {
	return (q.front + i) % len(q.slots)
}

// back returns the index of the newest item, or the slot before front when empty.
func (q *Ring[T]) back() int {
	return (q.front + q.count - 1 + len(q.slots)) % len(q.slots)
}

// IsEmpty reports whether the queue holds no items.
func (q *Ring[T]) IsEmpty() bool { return q.count == 0 }

// IsFull reports whether the queue is at capacity.
func (q *Ring[T]) IsFull() bool { return q.count == len(q.slots) }

// Len returns the number of items in the queue.
func (q *Ring[T]) Len() int { return q.count }

// Cap returns the fixed capacity.
func (q *Ring[T]) Cap() int { return len(q.slots) }

// Capacity returns the fixed capacity.
func (q *Ring[T]) Capacity() uint64 { return uint64(len(q.slots)) }

// Enqueue appends item at the slot after the current back.
func (q *Ring[T]) Enqueue(item T) error {
	if q.IsFull() {
		return ErrFull
	}
	q.slots[(q.back()+1)%len(q.slots)] = item
	q.count++
	return nil
}

// Dequeue removes and returns the front item.
func (q *Ring[T]) Dequeue() (T, error) {
	var zero T
	if q.IsEmpty() {
		return zero, ErrEmpty
	}
	item := q.slots[q.front]
	q.slots[q.front] = zero
	q.front = (q.front + 1) % len(q.slots)
	q.count--
	return item, nil
}

// PushFront puts item back in front of the current front item.
// It undoes a Dequeue: after Dequeue then PushFront the queue order is unchanged.
func (q *Ring[T]) PushFront(item T) error {
	if q.IsFull() {
		return ErrFull
	}
	q.front = (q.front - 1 + len(q.slots)) % len(q.slots)
	q.slots[q.front] = item
	q.count++
	return nil
}

// PeekFront returns the front item without removing it.
func (q *Ring[T]) PeekFront() (T, error) {
	var zero T
	if q.IsEmpty() {
		return zero, ErrEmpty
	}
	return q.slots[q.front], nil
}

// At returns the item at logical position i, where 0 is the front.
func (q *Ring[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= q.count {
		return zero, ErrOutOfRange
	}
	return q.slots[q.index(i)], nil
}

// Set replaces the item at logical position i in place.
// Front index and count are unchanged.
func (q *Ring[T]) Set(i int, item T) error {
	if i < 0 || i >= q.count {
		return ErrOutOfRange
	}
	q.slots[q.index(i)] = item
	return nil
}

// All iterates occupied positions from front to back.
// Each call starts a fresh pass; the queue must not be mutated during iteration.
func (q *Ring[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < q.count; i++ {
			if !yield(i, q.slots[q.index(i)]) {
				return
			}
		}
	}
}

// Snapshot returns a copy of the items in front-to-back order.
func (q *Ring[T]) Snapshot() []T {
	out := make([]T, 0, q.count)
	for _, item := range q.All() {
		out = append(out, item)
	}
	return out
}

// Reset empties the queue. Capacity is retained.
func (q *Ring[T]) Reset() {
	clear(q.slots)
	q.front = 0
	q.count = 0
}
