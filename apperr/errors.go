package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an operational failure so that controllers can map it
// to an HTTP status without string matching.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalid
	KindPermissionDenied
	KindNotFound
	KindInvalidState
	KindConflict
)

// Error is a classified error with a human-readable message. The message
// is surfaced verbatim to the caller.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PermissionDenied indicates an authorization predicate failed.
func PermissionDenied(format string, args ...interface{}) error {
	return &Error{Kind: KindPermissionDenied, Message: fmt.Sprintf(format, args...)}
}

// NotFound indicates a referenced entity does not exist.
func NotFound(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// InvalidState indicates the entity exists but forbids the requested
// transition (deleted, not shareable, already released).
func InvalidState(format string, args ...interface{}) error {
	return &Error{Kind: KindInvalidState, Message: fmt.Sprintf(format, args...)}
}

// Conflict indicates a concurrent or pre-existing record blocks the
// request, e.g. an active claim already held by another actor.
func Conflict(format string, args ...interface{}) error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// Invalid indicates malformed or failing-validation input.
func Invalid(format string, args ...interface{}) error {
	return &Error{Kind: KindInvalid, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying error.
func Wrap(kind Kind, err error, message string) error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind of err, or KindUnknown for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// HTTPStatus maps an error to the status code controllers should write.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindInvalid:
		return http.StatusBadRequest
	case KindPermissionDenied:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidState, KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
