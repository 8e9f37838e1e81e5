// Package store defines the persistence interfaces and sentinel errors for
// the BizTime API. Concrete implementations live in platform/postgres.
package store

import (
	"context"

	"github.com/biztime/biztime-api/internal/domain"
)

// CompanyStore defines the interface for company data persistence.
type CompanyStore interface {
	// List retrieves all companies ordered by name ascending.
	// Only Code and Name are populated. Returns an empty slice when the
	// store holds no companies.
	List(ctx context.Context) ([]domain.Company, error)

	// Get retrieves a company by its code.
	// Returns ErrCompanyNotFound if no company has the given code.
	Get(ctx context.Context, code string) (*domain.Company, error)

	// InvoiceIDs retrieves the ids of all invoices referencing the given
	// company code, ordered by id ascending. An unknown code yields an
	// empty slice, not an error; callers resolve existence via Get.
	InvoiceIDs(ctx context.Context, code string) ([]int64, error)

	// Create inserts a new company.
	// Returns ErrCompanyExists if the code is already taken.
	Create(ctx context.Context, company *domain.Company) error

	// Update modifies the name and description of the company with the
	// given code. The code itself is never changed.
	// Returns ErrCompanyNotFound if no row was affected.
	Update(ctx context.Context, company *domain.Company) error

	// Delete removes a company by code.
	// Returns ErrCompanyNotFound if no row was affected, and ErrCompanyInUse
	// if invoices still reference the company.
	Delete(ctx context.Context, code string) error
}
