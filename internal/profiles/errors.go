package profiles

import "errors"

var (
	// ErrNotFound indicates the profile does not exist yet.
	ErrNotFound = errors.New("profile not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)
