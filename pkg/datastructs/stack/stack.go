package stack

import (
	"iter"
)

// Stack is a fixed-capacity LIFO backed by a flat array and a top index.
// Slot 0 is the base. It is NOT thread-safe.
type Stack[T any] struct {
	slots []T
	top   int // index of the newest item, -1 when empty
}

// New creates an empty Stack holding at most capacity items.
func New[T any](capacity int) (*Stack[T], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Stack[T]{slots: make([]T, capacity), top: -1}, nil
}

// IsEmpty reports whether the stack holds no items.
func (s *Stack[T]) IsEmpty() bool { return s.top == -1 }

// IsFull reports whether the stack is at capacity.
func (s *Stack[T]) IsFull() bool { return s.top == len(s.slots)-1 }

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int { return s.top + 1 }

// Cap returns the fixed capacity.
func (s *Stack[T]) Cap() int { return len(s.slots) }

// Push places item on top.
func (s *Stack[T]) Push(item T) error {
	if s.IsFull() {
		return ErrFull
	}
	s.top++
	s.slots[s.top] = item
	return nil
}

// Pop removes and returns the top item.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if s.IsEmpty() {
		return zero, ErrEmpty
	}
	item := s.slots[s.top]
	s.slots[s.top] = zero
	s.top--
	return item, nil
}

// PeekTop returns the top item without removing it.
func (s *Stack[T]) PeekTop() (T, error) {
	var zero T
	if s.IsEmpty() {
		return zero, ErrEmpty
	}
	return s.slots[s.top], nil
}

// At returns the item in slot i, where 0 is the base.
func (s *Stack[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i > s.top {
		return zero, ErrOutOfRange
	}
	return s.slots[i], nil
}

// Set replaces the item in slot i without moving the top.
func (s *Stack[T]) Set(i int, item T) error {
	if i < 0 || i > s.top {
		return ErrOutOfRange
	}
	s.slots[i] = item
	return nil
}

// All iterates from top down to base. The yielded index is the slot (0 = base).
func (s *Stack[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := s.top; i >= 0; i-- {
			if !yield(i, s.slots[i]) {
				return
			}
		}
	}
}

// Snapshot returns a copy of the items in top-to-base order.
func (s *Stack[T]) Snapshot() []T {
	out := make([]T, 0, s.Len())
	for _, item := range s.All() {
		out = append(out, item)
	}
	return out
}

// Reset empties the stack. Capacity is retained.
func (s *Stack[T]) Reset() {
	clear(s.slots)
	s.top = -1
}
