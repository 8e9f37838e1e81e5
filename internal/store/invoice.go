package store

import (
	"context"

	"github.com/biztime/biztime-api/internal/domain"
)

// InvoiceStore defines the interface for invoice data persistence.
type InvoiceStore interface {
	// List retrieves all invoices ordered by id ascending.
	// Only ID and CompCode are populated. Returns an empty slice when the
	// store holds no invoices.
	List(ctx context.Context) ([]domain.Invoice, error)

	// GetWithCompany retrieves an invoice joined with its parent company.
	// The company snapshot is read in the same statement as the invoice, so
	// it can never be stale or dangling.
	// Returns ErrInvoiceNotFound if the join yields no row.
	GetWithCompany(ctx context.Context, id int64) (*domain.Invoice, *domain.Company, error)

	// Create inserts a new invoice for the given company code and amount.
	// The store generates id, paid (false), add_date and paid_date (null).
	// A nil amt is passed through as NULL so the table's NOT NULL constraint
	// rejects it; presence is store-enforced, not handler-enforced.
	// Returns ErrInvalidReference if the company code does not exist.
	Create(ctx context.Context, compCode string, amt *float64) (*domain.Invoice, error)

	// UpdateAmount sets the amount of the invoice with the given id and
	// returns the full updated row. Amt is the only mutable invoice field;
	// a nil amt is rejected by the table's NOT NULL constraint.
	// Returns ErrInvoiceNotFound if no row matches.
	UpdateAmount(ctx context.Context, id int64, amt *float64) (*domain.Invoice, error)

	// Delete removes an invoice by id.
	// Returns ErrInvoiceNotFound if no row was affected.
	Delete(ctx context.Context, id int64) error
}
