package apperr

import (
	stderrors "errors"

	"github.com/pkg/errors"
)

// Code classifies a failure.
type Code int

const (
	CodeUnknown Code = iota
	CodeFull
	CodeEmpty
	CodePreconditionFailed
	CodeInternal
)

var codeNames = map[Code]string{
	CodeUnknown:            "unknown",
	CodeFull:               "full",
	CodeEmpty:              "empty",
	CodePreconditionFailed: "precondition_failed",
	CodeInternal:           "internal",
}

// String returns the snake_case name of the code.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return codeNames[CodeUnknown]
}

// AppError is a coded error. The cause chain carries a stack trace and stays
// reachable through errors.Is / errors.As.
type AppError struct {
	Code    Code
	Message string
	cause   error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	return e.cause.Error()
}

// Unwrap implements the errors.Wrapper interface.
func (e *AppError) Unwrap() error {
	return e.cause
}

// Cause returns the error that was wrapped, or the message error for New.
func (e *AppError) Cause() error {
	return errors.Cause(e.cause)
}

// New creates an AppError. If cause is nil the message becomes the root error.
func New(code Code, msg string, cause error) *AppError {
	if cause == nil {
		return &AppError{Code: code, Message: msg, cause: errors.New(msg)}
	}
	return &AppError{Code: code, Message: msg, cause: errors.Wrap(cause, msg)}
}

// Wrap annotates err with msg and code. Returns nil if err is nil.
func Wrap(err error, code Code, msg string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: msg, cause: errors.Wrap(err, msg)}
}

// CodeOf extracts the code of the first AppError in err's chain.
func CodeOf(err error) Code {
	var e *AppError
	if stderrors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}
