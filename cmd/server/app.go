package main

import (
	"database/sql"
	"log/slog"

	"github.com/biztime/biztime-api/internal/config"
	"github.com/biztime/biztime-api/internal/platform/postgres"
	"github.com/biztime/biztime-api/internal/store"
)

// application holds the shared application dependencies so wiring happens in
// one place and handlers receive their collaborators explicitly.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	companyStore store.CompanyStore
	invoiceStore store.InvoiceStore
}

// newApplication wires the application dependencies around the given
// connection pool. The pool is constructed once at startup and injected into
// every store; there is no hidden global connection handle.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) *application {
	return &application{
		config:       cfg,
		logger:       logger,
		db:           db,
		companyStore: postgres.NewCompanyStore(db, logger),
		invoiceStore: postgres.NewInvoiceStore(db, logger),
	}
}
