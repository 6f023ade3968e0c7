package usecase

import (
	"errors"
)

// Error taxonomy sentinels. Handlers map these to HTTP statuses with
// errors.Is; anything unwrapped is an infrastructure failure and surfaces
// as a generic 500.
var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// Error pairs a taxonomy sentinel with a user-facing message.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }
func (e *Error) Unwrap() error { return e.kind }

func invalid(msg string) error      { return &Error{kind: ErrValidation, msg: msg} }
func unauthorized(msg string) error { return &Error{kind: ErrUnauthorized, msg: msg} }
func forbidden(msg string) error    { return &Error{kind: ErrForbidden, msg: msg} }
func notFound(msg string) error     { return &Error{kind: ErrNotFound, msg: msg} }
func conflict(msg string) error     { return &Error{kind: ErrConflict, msg: msg} }

// optional converts an empty string to a NULL-able nil pointer.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
