// Package apperr defines the error kinds the business layer reports and the
// HTTP status each kind translates to at the API boundary.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a business-rule failure.
type Kind int

const (
	// KindNotFound means a referenced Account, Bill, Customer or
	// transaction does not exist.
	KindNotFound Kind = iota + 1
	// KindConflict means the request contradicts stored or expected state.
	KindConflict
	// KindInvalidInput means the request is semantically malformed given
	// the current state of the resource.
	KindInvalidInput
)

// Error carries a failure kind together with a client-facing message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NotFoundf builds a KindNotFound error.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflictf builds a KindConflict error.
func Conflictf(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// InvalidInputf builds a KindInvalidInput error.
func InvalidInputf(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind carried by err, or 0 when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// HTTPStatus maps an error to the status code the API boundary responds with.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
