package unique

import (
	"errors"
)

// ErrNegativeOrigin is returned when a sequence is configured to start below zero.
var ErrNegativeOrigin = errors.New("sequence origin must be non-negative")

// Sequence hands out strictly increasing non-negative ids.
// It is NOT thread-safe.
type Sequence struct {
	next   int64
	origin int64
}

// NewSequence creates a Sequence whose first id is origin.
func NewSequence(origin int64) (*Sequence, error) {
	if origin < 0 {
		return nil, ErrNegativeOrigin
	}
	return &Sequence{next: origin, origin: origin}, nil
}

// Generate returns the current counter value and advances it.
func (s *Sequence) Generate() int64 {
	id := s.next
	s.next++
	return id
}

// Peek returns the id the next Generate call will return.
func (s *Sequence) Peek() int64 {
	return s.next
}

// Issued reports how many ids have been handed out.
func (s *Sequence) Issued() int64 {
	return s.next - s.origin
}
