package queries

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound covers both nonexistent rows and rows owned by
	// another user; callers must not be able to tell them apart.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEntry maps a storage-level unique violation.
	ErrDuplicateEntry = errors.New("duplicate entry")

	// ErrInvalidCredentials deliberately does not distinguish an
	// unknown username from a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
