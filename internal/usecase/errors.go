package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")

	// ErrSeasonNotStarted means the calendar has no current week yet. It
	// matches ErrInvalidInput as well.
	ErrSeasonNotStarted = fmt.Errorf("%w: season has not started", ErrInvalidInput)
)
