package service

import (
	"errors"
	"strings"
)

// Kind classifies a service failure for the response boundary.
type Kind int

const (
	KindTechnical Kind = iota
	KindValidation
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	default:
		return "technical"
	}
}

// Error is the typed failure returned by UserService. Messages are safe to show
// to the client; Cause is only logged.
type Error struct {
	Kind     Kind
	Messages []string
	Cause    error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if len(e.Messages) > 0 {
		msg += ": " + strings.Join(e.Messages, "; ")
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func validationError(messages ...string) error {
	return &Error{Kind: KindValidation, Messages: messages}
}

func notFoundError() error {
	return &Error{Kind: KindNotFound}
}

func technicalError(cause error) error {
	return &Error{Kind: KindTechnical, Cause: cause}
}

// KindOf returns the Kind of err. Errors that are not *Error are technical.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindTechnical
}

// MessagesOf returns the client-facing messages carried by err, if any.
func MessagesOf(err error) []string {
	var se *Error
	if errors.As(err, &se) {
		return se.Messages
	}
	return nil
}
