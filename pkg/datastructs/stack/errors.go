package stack

import "errors"

var (
	ErrFull            = errors.New("stack is full")
	ErrEmpty           = errors.New("stack is empty")
	ErrOutOfRange      = errors.New("stack slot out of range")
	ErrInvalidCapacity = errors.New("stack capacity must be at least 1")
)
