package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an error for retry decisions and HTTP status mapping
type Kind string

const (
	// KindNotFound indicates a referenced trip or driver does not exist
	KindNotFound Kind = "not_found"
	// KindConflict indicates an assignment collision: the trip already has a
	// schedule, or the driver has a temporally overlapping commitment
	KindConflict Kind = "conflict"
	// KindInvalidState indicates the operation is not valid for the current
	// state of the entity (ineligible driver, terminal trip status)
	KindInvalidState Kind = "invalid_state"
	// KindTransient indicates an environment failure (database, queue) that
	// may succeed on retry
	KindTransient Kind = "transient"
)

// Error carries a kind alongside a human-readable message so callers can map
// it to a response code or a retry decision without string matching
type Error struct {
	Kind    Kind
	Message string
	Err     error
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

// New creates a domain error of the given kind
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates a domain error with a formatted message
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a domain error wrapping an underlying cause
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind of err. Errors that never passed through this
// package are treated as transient, which keeps unclassified database and
// queue failures on the retry path.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindTransient
}

// IsDomain reports whether err is a deterministic domain error that a retry
// cannot fix
func IsDomain(err error) bool {
	switch KindOf(err) {
	case KindNotFound, KindConflict, KindInvalidState:
		return true
	}
	return false
}

// IsNotFound reports whether err is a not-found domain error
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsConflict reports whether err is a conflict domain error
func IsConflict(err error) bool {
	return KindOf(err) == KindConflict
}
