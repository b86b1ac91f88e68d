package errors

import (
	"errors"
	"fmt"
)

// Error codes of the archiving pipeline
const (
	CodeUpstream       = "UPSTREAM"
	CodeNetwork        = "NETWORK"
	CodeStorage        = "STORAGE"
	CodeNotification   = "NOTIFICATION"
	CodeLedger         = "LEDGER"
	CodeMalformedMedia = "MALFORMED_MEDIA"
)

// Common errors
var (
	ErrInvalidInput = errors.New("invalid input")

	ErrUpstream       = &Error{Code: CodeUpstream, Message: "upstream error"}
	ErrNetwork        = &Error{Code: CodeNetwork, Message: "network error"}
	ErrStorage        = &Error{Code: CodeStorage, Message: "storage error"}
	ErrNotification   = &Error{Code: CodeNotification, Message: "notification error"}
	ErrLedger         = &Error{Code: CodeLedger, Message: "ledger error"}
	ErrMalformedMedia = &Error{Code: CodeMalformedMedia, Message: "malformed media"}
)

// Error represents a custom error type
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the code sentinels, so errors.Is(err, ErrNetwork) holds for
// every error wrapped with CodeNetwork.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Err != nil || t.Code == "" {
		return false
	}
	return t.Code == e.Code
}

// New creates a new error with a message
func New(message string) error {
	return &Error{
		Message: message,
	}
}

// NewWithCode creates a coded error without an underlying cause
func NewWithCode(code, message string) error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional message
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Message: message,
		Err:     err,
	}
}

// WrapWithCode wraps an error with a code and message
func WrapWithCode(err error, code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func Upstream(err error, message string) error { return WrapWithCode(err, CodeUpstream, message) }
func Network(err error, message string) error  { return WrapWithCode(err, CodeNetwork, message) }
func Storage(err error, message string) error  { return WrapWithCode(err, CodeStorage, message) }
func Ledger(err error, message string) error   { return WrapWithCode(err, CodeLedger, message) }

func Notification(err error, message string) error {
	return WrapWithCode(err, CodeNotification, message)
}

func MalformedMedia(message string) error {
	return NewWithCode(CodeMalformedMedia, message)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Join wraps errors.Join
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// GetCode returns the error code if it exists
func GetCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
