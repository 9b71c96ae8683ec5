package gateway

import (
	"errors"
	"fmt"
)

// Kind classifies every fault the gateway can surface to a caller. The
// set is closed: anything a handler returns that is not already one of
// these is reported as KindInternal.
type Kind string

const (
	KindUnauthorized    Kind = "unauthorized"
	KindUnknownTool     Kind = "unknown_tool"
	KindMissingArgument Kind = "missing_argument"
	KindTypeMismatch    Kind = "type_mismatch"
	KindUpstream        Kind = "upstream_error"
	KindInternal        Kind = "internal_error"
)

// Error is a classified gateway fault. The Kind and Message together form
// the protocol-level error response; Err preserves the underlying cause
// for logging and errors.Is/As chains.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E builds a classified error with a formatted message.
func E(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap classifies an underlying error, keeping it on the unwrap chain.
func Wrap(kind Kind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf reports the classification of err. Unclassified non-nil errors
// report KindInternal; nil reports the empty Kind.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return KindInternal
}
