package service

import (
	"errors"

	"Taskboard/internal/repo"

	"github.com/google/uuid"
)

// Error kinds. Match with errors.Is.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("upstream unavailable")
	ErrInternal     = errors.New("internal error")
)

// Error is returned by every service. Msg is safe to show to the user;
// Cause is for logs only.
type Error struct {
	Kind  error
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Msg + ": " + e.Cause.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// Message returns the user-facing message of err, or fallback when err is
// not a service error.
func Message(err error, fallback string) string {
	var se *Error
	if errors.As(err, &se) {
		return se.Msg
	}
	return fallback
}

func invalid(msg string) error { return &Error{Kind: ErrInvalidInput, Msg: msg} }

func notFound(msg string) error { return &Error{Kind: ErrNotFound, Msg: msg} }

func internal(msg string, cause error) error {
	return &Error{Kind: ErrInternal, Msg: msg, Cause: cause}
}

func unavailable(msg string, cause error) error {
	return &Error{Kind: ErrUnavailable, Msg: msg, Cause: cause}
}

// fromRepo maps store errors: missing rows become notFoundMsg, unique
// violations conflictMsg, anything else an internal error with failMsg.
func fromRepo(err error, notFoundMsg, conflictMsg, failMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repo.ErrNotFound):
		return &Error{Kind: ErrNotFound, Msg: notFoundMsg, Cause: err}
	case errors.Is(err, repo.ErrConflict):
		return &Error{Kind: ErrConflict, Msg: conflictMsg, Cause: err}
	}
	return internal(failMsg, err)
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
