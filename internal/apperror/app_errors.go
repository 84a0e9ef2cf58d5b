package apperror

import "errors"

var (
	ErrNegativeCoordinate = errors.New("grid coordinates must be non-negative")
	ErrGridSizeTooSmall   = errors.New("grid size must be positive")
	ErrGridSizeTooLarge   = errors.New("grid size too large")

	ErrSessionNotFound = errors.New("session not found")
)
