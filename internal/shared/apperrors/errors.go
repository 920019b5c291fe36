package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a domain error so the HTTP layer can map it to a status
// code without inspecting message text.
type Kind uint8

const (
	KindUnexpected Kind = iota // storage failure, mapping failure
	KindValidation             // malformed or missing input, caller-fixable
	KindConflict               // uniqueness invariant already held by another record
	KindNotFound               // referenced id does not exist
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "VALIDATION"
	case KindConflict:
		return "CONFLICT"
	case KindNotFound:
		return "NOT_FOUND"
	default:
		return "UNEXPECTED"
	}
}

// Error is a classified domain error. Domain packages declare sentinels with
// the constructors below and compare with errors.Is.
type Error struct {
	kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Kind() Kind { return e.kind }

// Is lets a formatted error (Conflictf) match its sentinel of the same kind.
// Two errors of the same kind and message are the same error.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.kind == t.kind && (t.msg == "" || e.msg == t.msg)
}

func Validation(msg string) *Error { return &Error{kind: KindValidation, msg: msg} }
func Conflict(msg string) *Error   { return &Error{kind: KindConflict, msg: msg} }
func NotFound(msg string) *Error   { return &Error{kind: KindNotFound, msg: msg} }

func Validationf(format string, args ...interface{}) *Error {
	return &Error{kind: KindValidation, msg: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...interface{}) *Error {
	return &Error{kind: KindConflict, msg: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...interface{}) *Error {
	return &Error{kind: KindNotFound, msg: fmt.Sprintf(format, args...)}
}

// Unexpected wraps a lower-level failure that the caller cannot fix.
func Unexpected(msg string, err error) *Error {
	return &Error{kind: KindUnexpected, msg: msg, err: err}
}

// KindOf returns the kind of err, or KindUnexpected for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindUnexpected
}

func IsValidation(err error) bool { return KindOf(err) == KindValidation }
func IsConflict(err error) bool   { return KindOf(err) == KindConflict }
func IsNotFound(err error) bool   { return KindOf(err) == KindNotFound }

// HTTPStatus maps an error kind to its status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
