package apperr

import (
	"fmt"
)

// Generic Action Messages
const (
	MsgFailed             = "failed"
	MsgPreconditionFailed = "precondition not met"
	MsgInternal           = "internal error"
)

// MapError wraps an error with a message scoped to the failing operation.
func MapError(scope string, err error, code Code, msg string) *AppError {
	if err == nil {
		return nil
	}

	formattedMsg := fmt.Sprintf("%s %s", scope, msg)
	return Wrap(err, code, formattedMsg)
}

// NewError creates a new AppError with a message scoped to the failing operation.
func NewError(scope string, code Code, msg string, cause error) *AppError {
	formattedMsg := fmt.Sprintf("%s %s", scope, msg)
	return New(code, formattedMsg, cause)
}
