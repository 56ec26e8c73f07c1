package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies every expected business failure. Anything outside these
// four is a programming error and surfaces as a plain 500.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindInvalidState
	KindDependency
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindInvalidState:
		return "invalid_state"
	case KindDependency:
		return "dependency_failure"
	}
	return "unknown"
}

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

func Validation(message string) error {
	return &Error{Kind: KindValidation, Message: message}
}

func NotFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

func InvalidState(message string) error {
	return &Error{Kind: KindInvalidState, Message: message}
}

// Dependency wraps a store or sink failure so callers can distinguish it
// from business rule violations.
func Dependency(message string, err error) error {
	return &Error{Kind: KindDependency, Message: message, Err: err}
}

// KindOf extracts the classification from an error chain.
func KindOf(err error) (Kind, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind, true
	}
	return 0, false
}

func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
