package piece

import "errors"

var (
	ErrNoKinds     = errors.New("piece kind set is empty")
	ErrInvalidKind = errors.New("invalid piece kind")
)
