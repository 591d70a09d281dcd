package inventory

import "errors"

var (
	ErrUnknownAction     = errors.New("unknown action")
	ErrInvalidCapacities = errors.New("stack capacity must be at least 1 and smaller than queue capacity")
	ErrBlockNotReady     = errors.New("queue and reserve stack must both be full")
)
