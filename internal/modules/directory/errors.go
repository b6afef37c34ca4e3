package directory

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("user not found")
	ErrDuplicateUser = errors.New("user with this email or phone already exists")
)
