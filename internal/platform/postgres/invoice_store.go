package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/biztime/biztime-api/internal/domain"
	"github.com/biztime/biztime-api/internal/store"
)

// InvoiceStore implements the store.InvoiceStore interface using a PostgreSQL
// database as the storage backend.
type InvoiceStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewInvoiceStore creates a new PostgreSQL implementation of the InvoiceStore
// interface. It accepts a database connection or transaction that is
// initialized and managed by the caller. If logger is nil, a default logger
// is used.
func NewInvoiceStore(db store.DBTX, logger *slog.Logger) *InvoiceStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &InvoiceStore{
		db:     db,
		logger: logger.With(slog.String("component", "invoice_store")),
	}
}

// Ensure InvoiceStore implements store.InvoiceStore.
var _ store.InvoiceStore = (*InvoiceStore)(nil)

// List implements store.InvoiceStore.List.
func (s *InvoiceStore) List(ctx context.Context) ([]domain.Invoice, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, comp_code FROM invoices ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	invoices := make([]domain.Invoice, 0)
	for rows.Next() {
		var inv domain.Invoice
		if err := rows.Scan(&inv.ID, &inv.CompCode); err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invoice rows: %w", err)
	}

	return invoices, nil
}

// GetWithCompany implements store.InvoiceStore.GetWithCompany.
// The inner join guarantees the company snapshot is read together with the
// invoice, so the nested company data can never be stale or dangling.
func (s *InvoiceStore) GetWithCompany(
	ctx context.Context,
	id int64,
) (*domain.Invoice, *domain.Company, error) {
	var (
		inv      domain.Invoice
		comp     domain.Company
		paidDate sql.NullTime
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT i.id, i.comp_code, i.amt, i.paid, i.add_date, i.paid_date,
		        c.code, c.name, c.description
		   FROM invoices AS i
		   JOIN companies AS c ON i.comp_code = c.code
		  WHERE i.id = $1`,
		id,
	).Scan(
		&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &paidDate,
		&comp.Code, &comp.Name, &comp.Description,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, store.ErrInvoiceNotFound
		}
		return nil, nil, fmt.Errorf("failed to get invoice: %w", MapError(err))
	}
	if paidDate.Valid {
		inv.PaidDate = &paidDate.Time
	}

	return &inv, &comp, nil
}

// Create implements store.InvoiceStore.Create.
// The database assigns id, paid (default false), add_date (default today)
// and paid_date (default null); the inserted row is returned verbatim.
func (s *InvoiceStore) Create(
	ctx context.Context,
	compCode string,
	amt *float64,
) (*domain.Invoice, error) {
	var (
		inv      domain.Invoice
		paidDate sql.NullTime
	)
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO invoices (comp_code, amt)
		 VALUES ($1, $2)
		 RETURNING id, comp_code, amt, paid, add_date, paid_date`,
		compCode, amt,
	).Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &paidDate)
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", MapError(err))
	}
	if paidDate.Valid {
		inv.PaidDate = &paidDate.Time
	}

	s.logger.Debug("invoice created",
		slog.Int64("id", inv.ID),
		slog.String("comp_code", inv.CompCode))
	return &inv, nil
}

// UpdateAmount implements store.InvoiceStore.UpdateAmount.
func (s *InvoiceStore) UpdateAmount(
	ctx context.Context,
	id int64,
	amt *float64,
) (*domain.Invoice, error) {
	var (
		inv      domain.Invoice
		paidDate sql.NullTime
	)
	err := s.db.QueryRowContext(ctx,
		`UPDATE invoices
		    SET amt = $1
		  WHERE id = $2
		 RETURNING id, comp_code, amt, paid, add_date, paid_date`,
		amt, id,
	).Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &paidDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to update invoice: %w", MapError(err))
	}
	if paidDate.Valid {
		inv.PaidDate = &paidDate.Time
	}

	return &inv, nil
}

// Delete implements store.InvoiceStore.Delete.
func (s *InvoiceStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM invoices WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete invoice: %w", MapError(err))
	}

	return CheckRowsAffected(result, store.ErrInvoiceNotFound)
}
