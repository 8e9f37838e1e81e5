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

// CompanyStore implements the store.CompanyStore interface using a PostgreSQL
// database as the storage backend.
type CompanyStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewCompanyStore creates a new PostgreSQL implementation of the CompanyStore
// interface. It accepts a database connection or transaction that is
// initialized and managed by the caller. If logger is nil, a default logger
// is used.
func NewCompanyStore(db store.DBTX, logger *slog.Logger) *CompanyStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CompanyStore{
		db:     db,
		logger: logger.With(slog.String("component", "company_store")),
	}
}

// Ensure CompanyStore implements store.CompanyStore.
var _ store.CompanyStore = (*CompanyStore)(nil)

// List implements store.CompanyStore.List.
func (s *CompanyStore) List(ctx context.Context) ([]domain.Company, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT code, name FROM companies ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	companies := make([]domain.Company, 0)
	for rows.Next() {
		var c domain.Company
		if err := rows.Scan(&c.Code, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan company row: %w", err)
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate company rows: %w", err)
	}

	return companies, nil
}

// Get implements store.CompanyStore.Get.
func (s *CompanyStore) Get(ctx context.Context, code string) (*domain.Company, error) {
	var c domain.Company
	err := s.db.QueryRowContext(ctx,
		`SELECT code, name, description FROM companies WHERE code = $1`,
		code,
	).Scan(&c.Code, &c.Name, &c.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", MapError(err))
	}

	return &c, nil
}

// InvoiceIDs implements store.CompanyStore.InvoiceIDs.
func (s *CompanyStore) InvoiceIDs(ctx context.Context, code string) ([]int64, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id FROM invoices WHERE comp_code = $1 ORDER BY id`,
		code,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoice ids: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan invoice id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invoice ids: %w", err)
	}

	return ids, nil
}

// Create implements store.CompanyStore.Create.
func (s *CompanyStore) Create(ctx context.Context, company *domain.Company) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO companies (code, name, description) VALUES ($1, $2, $3)`,
		company.Code, company.Name, company.Description,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: %v", store.ErrCompanyExists, err)
		}
		return fmt.Errorf("failed to create company: %w", MapError(err))
	}

	s.logger.Debug("company created", slog.String("code", company.Code))
	return nil
}

// Update implements store.CompanyStore.Update.
func (s *CompanyStore) Update(ctx context.Context, company *domain.Company) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE companies SET name = $1, description = $2 WHERE code = $3`,
		company.Name, company.Description, company.Code,
	)
	if err != nil {
		return fmt.Errorf("failed to update company: %w", MapError(err))
	}

	return CheckRowsAffected(result, store.ErrCompanyNotFound)
}

// Delete implements store.CompanyStore.Delete.
// The invoices table carries a plain foreign key on comp_code with no
// cascade, so deleting a company that invoices still reference is rejected
// by the database and reported as ErrCompanyInUse.
func (s *CompanyStore) Delete(ctx context.Context, code string) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM companies WHERE code = $1`,
		code,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: %v", store.ErrCompanyInUse, err)
		}
		return fmt.Errorf("failed to delete company: %w", MapError(err))
	}

	return CheckRowsAffected(result, store.ErrCompanyNotFound)
}
