package core

import (
	"errors"

	"agendahub/internal/store"
)

// Failure taxonomy. Every condition is terminal and non-retryable; handlers
// map them onto HTTP status codes.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("permission denied")
	ErrNotFound        = errors.New("not found")
	ErrBadRequest      = errors.New("bad request")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrQuotaExceeded   = errors.New("free plan appointment limit reached")
)

func fromStore(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
