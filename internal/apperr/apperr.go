// Package apperr defines the failure taxonomy shared by services and
// handlers. Services return *Error values carrying a Kind and a
// human-readable message; the handler layer translates the Kind into an
// HTTP status code. Anything that is not an *Error is treated as an
// unexpected internal failure by the boundary.
package apperr

import "errors"

// Kind classifies a failure. The zero value is deliberately invalid so
// that a forgotten Kind surfaces as KindInternal at the boundary.
type Kind int

const (
	KindBadRequest      Kind = iota + 1 // malformed or missing input
	KindUnauthenticated                 // missing or unverifiable credential
	KindForbidden                       // valid credential, wrong principal
	KindNotFound                        // resource absent
	KindConflict                        // unique-constraint style violation
	KindInternal                        // unexpected failure (store, marshal, ...)
)

// Error is a service-layer failure with a classification and a message
// safe to return to clients. Err optionally wraps the underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// New builds an *Error with the given kind and client-facing message.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Wrap is like New but keeps the underlying cause for logging.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// BadRequest returns a KindBadRequest error with the given message.
func BadRequest(msg string) *Error { return New(KindBadRequest, msg) }

// Unauthenticated returns a KindUnauthenticated error.
func Unauthenticated(msg string) *Error { return New(KindUnauthenticated, msg) }

// Forbidden returns a KindForbidden error.
func Forbidden(msg string) *Error { return New(KindForbidden, msg) }

// NotFound returns a KindNotFound error.
func NotFound(msg string) *Error { return New(KindNotFound, msg) }

// Conflict returns a KindConflict error.
func Conflict(msg string) *Error { return New(KindConflict, msg) }

// Internal wraps an unexpected failure. The message shown to clients is
// generic; the cause travels in Err for server-side logs.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal server error", Err: err}
}

// KindOf extracts the Kind from err. Errors outside the taxonomy report
// KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
