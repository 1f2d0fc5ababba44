package store

import "errors"

// ValidationError: missing or malformed input, mapped to HTTP 400.
type ValidationError struct {
	msg string
}

func Invalid(msg string) error { return &ValidationError{msg: msg} }

func (e *ValidationError) Error() string { return e.msg }

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// NotFoundError: the referenced entity does not exist, mapped to HTTP 404.
type NotFoundError struct {
	msg string
}

func NotFound(msg string) error { return &NotFoundError{msg: msg} }

func (e *NotFoundError) Error() string { return e.msg }

func IsNotFound(err error) bool {
	var v *NotFoundError
	return errors.As(err, &v)
}

// ConflictError: a referential guard blocked a destructive operation,
// mapped to HTTP 409.
type ConflictError struct {
	msg string
}

func Conflict(msg string) error { return &ConflictError{msg: msg} }

func (e *ConflictError) Error() string { return e.msg }

func IsConflict(err error) bool {
	var v *ConflictError
	return errors.As(err, &v)
}
