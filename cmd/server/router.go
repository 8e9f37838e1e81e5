package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/biztime/biztime-api/internal/api"
	apiMiddleware "github.com/biztime/biztime-api/internal/api/middleware"
	"github.com/biztime/biztime-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Requests to unmatched verb+path combinations (including
// wrong methods on known paths) yield the uniform 404 error envelope.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	exposeDetail := app.config.Server.ExposeErrorDetail
	companyHandler := api.NewCompanyHandler(app.companyStore, app.logger, exposeDetail)
	invoiceHandler := api.NewInvoiceHandler(app.invoiceStore, app.logger, exposeDetail)

	r.Route("/companies", func(r chi.Router) {
		r.Get("/", companyHandler.List)
		r.Post("/", companyHandler.Create)
		r.Get("/{code}", companyHandler.Get)
		r.Put("/{code}", companyHandler.Update)
		r.Delete("/{code}", companyHandler.Delete)
	})

	r.Route("/invoices", func(r chi.Router) {
		r.Get("/", invoiceHandler.List)
		r.Post("/", invoiceHandler.Create)
		r.Get("/{id}", invoiceHandler.Get)
		r.Put("/{id}", invoiceHandler.Update)
		r.Delete("/{id}", invoiceHandler.Delete)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	r.NotFound(notFoundHandler)
	r.MethodNotAllowed(notFoundHandler)

	return r
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, "Not Found")
}
