package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. Entity-specific variants below wrap it so callers can match
	// either the generic or the specific error with errors.Is.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would violate a uniqueness
	// constraint (e.g. creating a company with an existing code).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidReference is returned when an operation references an entity
	// that does not exist (a foreign key violation, e.g. creating an invoice
	// for an unknown company code).
	ErrInvalidReference = errors.New("referenced entity does not exist")

	// ErrCompanyNotFound indicates that the requested company does not exist.
	ErrCompanyNotFound = fmt.Errorf("%w: company", ErrNotFound)

	// ErrInvoiceNotFound indicates that the requested invoice does not exist.
	ErrInvoiceNotFound = fmt.Errorf("%w: invoice", ErrNotFound)

	// ErrCompanyExists indicates that a company with the given code already
	// exists.
	ErrCompanyExists = fmt.Errorf("%w: company code", ErrDuplicate)

	// ErrCompanyInUse indicates that a company cannot be deleted because
	// invoices still reference it.
	ErrCompanyInUse = fmt.Errorf("%w: invoices reference this company", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" or
// constraint-conflict error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
