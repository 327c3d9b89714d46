// Package apperr defines the error taxonomy shared by the repositories and
// the HTTP layer. Repositories wrap these sentinels with context via %w;
// handlers translate them to status codes with errors.Is.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation indicates a missing or malformed required field.
	ErrValidation = errors.New("invalid request")
	// ErrAuthentication indicates a credential mismatch.
	ErrAuthentication = errors.New("authentication failed")
	// ErrForbidden indicates the requester does not own the target entity.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound indicates a referenced entity is absent.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates a uniqueness violation (email, access code).
	ErrConflict = errors.New("already exists")
	// ErrStorage indicates an underlying persistence failure, including
	// transaction rollback and storage-call timeouts.
	ErrStorage = errors.New("storage failure")
)

// Storage wraps err as a storage failure, keeping the original error text
// for logs while callers match on ErrStorage only.
func Storage(op string, err error) error {
	return fmt.Errorf("%s: %w (%v)", op, ErrStorage, err)
}
