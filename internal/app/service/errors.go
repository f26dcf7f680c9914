package service

import (
	"errors"
	"fmt"
)

// Validation and allocation failures surfaced to the boundary layer. None of
// them are fatal to the process; handlers map them onto HTTP statuses.
var (
	ErrInvalidTarget       = errors.New("target must be an absolute URL")
	ErrInvalidSlug         = errors.New("slug may only contain letters, digits, _ and -")
	ErrSelfReferential     = errors.New("shortening own host is not supported")
	ErrGenerationExhausted = errors.New("could not generate a free slug")
	ErrNotFound            = errors.New("slug not found")
)

// SlugInUseError names the conflicting fully-qualified short URL so the
// caller can act on it directly.
type SlugInUseError struct {
	ShortURL string
}

func (e *SlugInUseError) Error() string {
	return fmt.Sprintf("%s already in use", e.ShortURL)
}
