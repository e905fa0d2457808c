package services

import (
	"errors"
	"fmt"
	"strings"
)

// ViolationKind tells a client error caused by bad input apart from one
// caused by an existing account.
type ViolationKind int

const (
	KindInvalidInput ViolationKind = iota
	KindConflict
)

func (k ViolationKind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindConflict:
		return "conflict"
	default:
		return fmt.Sprintf("ViolationKind(%d)", int(k))
	}
}

// Violation is one user-facing message about one input field.
type Violation struct {
	Field   string
	Message string
}

// ViolationError is a client error. Its messages are safe to return to the
// caller as-is.
type ViolationError struct {
	Kind       ViolationKind
	Violations []Violation
}

func (e *ViolationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, strings.Join(msgs, "; "))
}

// Messages returns the violation messages in order.
func (e *ViolationError) Messages() []string {
	out := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		out[i] = v.Message
	}
	return out
}

// InternalError wraps a dependency failure. State is the step that failed.
// The text is meant for logs and must not be shown to the caller.
type InternalError struct {
	State State
	Err   error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("registration failed at %s: %v", e.State, e.Err)
}

func (e *InternalError) Unwrap() error { return e.Err }

// Outcome classifies the result of Register for metrics and logs:
// success, invalid, conflict or internal.
func Outcome(err error) string {
	if err == nil {
		return "success"
	}
	var ve *ViolationError
	if errors.As(err, &ve) {
		if ve.Kind == KindConflict {
			return "conflict"
		}
		return "invalid"
	}
	return "internal"
}
