// Package apperr defines the error taxonomy shared by the storage layer, the
// resolvers and the transport. The transport maps kinds to HTTP statuses in
// one place; handlers never string-match error text.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for transport mapping.
type Kind int

const (
	// KindInternal is an unexpected failure. Logged in full server side,
	// reported to the caller with a generic message.
	KindInternal Kind = iota
	// KindAuthRequired means no API key was supplied on a protected operation.
	KindAuthRequired
	// KindAuthInvalid means the supplied API key does not resolve.
	KindAuthInvalid
	// KindForbidden means the resolved identity does not own the target entity.
	KindForbidden
	// KindNotFound means the target identifier is malformed or does not resolve.
	KindNotFound
	// KindValidation is a malformed payload value, e.g. an unparseable date.
	KindValidation
	// KindMalformed means the request body could not be parsed at all.
	KindMalformed
)

// Error carries a kind and a caller-facing message.
type Error struct {
	Kind    Kind
	Message string
	// Err is the underlying cause, kept for server-side logging only.
	Err error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// New builds an Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error of the given kind keeping cause for server-side logs.
func Wrap(err error, kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind of err, or KindInternal for any error that does not
// carry one.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
