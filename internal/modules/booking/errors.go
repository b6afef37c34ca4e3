package booking

import "errors"

var (
	ErrInvalidRoom = errors.New("invalid room number")
	ErrValidation  = errors.New("validation error")
)
