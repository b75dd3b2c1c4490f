package errs

import (
	"errors"
	"fmt"
)

// Kind categorises an error without exposing provider-specific codes.
type Kind int

const (
	KindUnknown              Kind = iota
	KindConfigurationMissing      // required setting absent at startup
	KindPageFetchFailed           // one list request failed
	KindInvalidInput              // bad arguments from the caller
	KindConnectionFailed          // cannot build a client for the backend
)

func (k Kind) String() string {
	switch k {
	case KindConfigurationMissing:
		return "configuration_missing"
	case KindPageFetchFailed:
		return "page_fetch_failed"
	case KindInvalidInput:
		return "invalid_input"
	case KindConnectionFailed:
		return "connection_failed"
	default:
		return "unknown"
	}
}

// Error is the kinded error returned by blobls packages.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap allows errors.Is / errors.As to traverse the cause chain.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an *Error with the given kind and message and no cause.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Wrap creates an *Error with the given kind, message, and an underlying cause.
func Wrap(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Cause: cause}
}

// Missing reports an absent required setting, naming the environment variable.
func Missing(setting string) *Error {
	return New(KindConfigurationMissing, "missing "+setting)
}

// IsConfigurationMissing reports whether err is a fatal missing-setting error.
func IsConfigurationMissing(err error) bool {
	return KindOf(err) == KindConfigurationMissing
}

// IsPageFetchFailed reports whether err came from a failed list request.
func IsPageFetchFailed(err error) bool {
	return KindOf(err) == KindPageFetchFailed
}

// IsInvalidInput reports whether err was caused by bad input from the caller.
func IsInvalidInput(err error) bool {
	return KindOf(err) == KindInvalidInput
}

// IsConnectionFailed reports whether a backend client could not be built.
func IsConnectionFailed(err error) bool {
	return KindOf(err) == KindConnectionFailed
}

// KindOf extracts the Kind from any error in the chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
