// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// Evaluation-related errors
	ErrSourceTooLong = errors.New("source too long")
)
