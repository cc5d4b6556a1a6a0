package errs

import (
	"errors"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrForbidden   = errors.New("forbidden")
	ErrValidation  = errors.New("validation error")
	ErrEmailExists = errors.New("email already exists")
)
