package queue

import "errors"

var (
	ErrFull            = errors.New("queue is full")
	ErrEmpty           = errors.New("queue is empty")
	ErrOutOfRange      = errors.New("queue position out of range")
	ErrInvalidCapacity = errors.New("queue capacity must be at least 1")
)
