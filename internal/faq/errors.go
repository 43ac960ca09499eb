package faq

import "errors"

var (
	ErrNotFound     = errors.New("faq entry not found")
	ErrInvalidInput = errors.New("invalid input")
)
