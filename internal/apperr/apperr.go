// Package apperr defines the error kinds surfaced to API callers.
//
// Domain packages return *Error values; the service layer maps each Kind
// to a transport status exactly once.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the caller.
type Kind int

const (
	// KindInternal is any unexpected failure (storage, signing, etc.).
	KindInternal Kind = iota
	// KindBadRequest is malformed or semantically invalid input.
	KindBadRequest
	// KindUnauthorized is bad credentials or an invalid/expired/unmatched token.
	KindUnauthorized
	// KindForbidden is an authenticated caller that is not entitled to the resource.
	KindForbidden
	// KindNotFound is a referenced entity that does not exist.
	KindNotFound
	// KindConflict is a duplicate of a unique key.
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Error is an error with a stable kind and a caller-safe message.
type Error struct {
	Kind    Kind
	Message string
	// Err is the underlying cause. It is logged, never shown to callers.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns an error of the given kind.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Newf returns an error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func BadRequest(format string, args ...any) *Error { return Newf(KindBadRequest, format, args...) }
func Unauthorized(msg string) *Error                { return New(KindUnauthorized, msg) }
func Forbidden(msg string) *Error                   { return New(KindForbidden, msg) }
func NotFound(format string, args ...any) *Error    { return Newf(KindNotFound, format, args...) }
func Conflict(msg string) *Error                    { return New(KindConflict, msg) }

// Internal wraps an unexpected failure. The message shown to callers is generic.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal error", Err: err}
}

// KindOf reports the kind of err, or KindInternal when err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
