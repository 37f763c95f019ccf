package domain

import "errors"

// Sentinel errors shared across layers.
var (
	// ErrNotFound is returned when a content record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidContent is returned when a content record fails validation.
	ErrInvalidContent = errors.New("invalid content")
)
