package domain

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	ErrorKind_Validation          ErrorKind = "VALIDATION"
	ErrorKind_InsufficientData    ErrorKind = "INSUFFICIENT_DATA"
	ErrorKind_Provider            ErrorKind = "PROVIDER"
	ErrorKind_NotFound            ErrorKind = "NOT_FOUND"
	ErrorKind_Authorization       ErrorKind = "AUTHORIZATION"
	ErrorKind_ConcurrencyConflict ErrorKind = "CONCURRENCY_CONFLICT"
)

// Error is the stable failure type every exposed operation returns. The kind
// is translated to a transport status exactly once, at the API boundary.
type Error struct {
	Kind    ErrorKind
	Message string
	wrapped error
}

func (e Error) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.wrapped)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e Error) Unwrap() error {
	return e.wrapped
}

func NewError(kind ErrorKind, format string, args ...interface{}) Error {
	return Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func WrapError(kind ErrorKind, err error, format string, args ...interface{}) Error {
	return Error{Kind: kind, Message: fmt.Sprintf(format, args...), wrapped: err}
}

// KindOf returns the error kind carried by err, or "" when err holds none.
func KindOf(err error) ErrorKind {
	var e Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
