// Package main implements the entry point for the BizTime API server, a
// small relational resource API over companies and their invoices.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"

	"github.com/biztime/biztime-api/internal/config"
	"github.com/biztime/biztime-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run database migrations (up|down|status) and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = db.Close() }()

	if *migrateCmd != "" {
		if err := runMigrations(db, *migrateCmd); err != nil {
			log.Fatalf("Migration %q failed: %v", *migrateCmd, err)
		}
		appLogger.Info("migrations complete", slog.String("command", *migrateCmd))
		return
	}

	app := newApplication(cfg, appLogger, db)
	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
