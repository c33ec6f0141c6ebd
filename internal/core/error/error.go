package errx

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so callers can decide how to present it
// without inspecting the underlying error.
type Kind string

const (
	// KindNetwork covers connect/transport failures before any response.
	KindNetwork Kind = "network"
	// KindHTTPStatus covers non-2xx responses from the remote API.
	KindHTTPStatus Kind = "http_status"
	// KindParse covers response bodies with an unexpected shape.
	KindParse Kind = "parse"
	// KindValidation covers form input rejected before submission.
	KindValidation Kind = "validation"
	// KindStorage covers durable session storage failures.
	KindStorage Kind = "storage"
)

const (
	// SystemErrorMessage is a user-facing fallback when internal errors occur.
	SystemErrorMessage = "something went wrong"
	// StorageErrorMessage describes session storage related failures.
	StorageErrorMessage = "session storage operation failed"
)

// Error wraps an underlying error with a kind, an optional HTTP status and
// a message safe to show to the user.
type Error struct {
	Err     error
	Kind    Kind
	Status  int
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error with the provided information.
func New(err error, kind Kind, status int, message string) *Error {
	return &Error{
		Err:     err,
		Kind:    kind,
		Status:  status,
		Message: message,
	}
}

// Is reports whether the target matches the underlying error or the Error itself.
func (e *Error) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// As allows casting to Error or the wrapped error in a chain.
func (e *Error) As(target any) bool {
	if errors.As(e.Err, target) {
		return true
	}
	if t, ok := target.(**Error); ok {
		*t = e
		return true
	}
	return false
}

// KindOf extracts the Kind of an error produced by this package, or an
// empty Kind for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
