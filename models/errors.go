package models

import "errors"

// Domain errors returned by the lifecycle operations. Handlers map each to
// a distinct HTTP status so callers can always tell the kinds apart.
var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidState    = errors.New("invalid state for this operation")
	ErrDuplicateOrder  = errors.New("lesson order must be unique within course")
	ErrAlreadyEnrolled = errors.New("already enrolled")
	ErrAlreadyCreator  = errors.New("already a creator")
)
