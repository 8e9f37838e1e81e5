// Package api provides the HTTP handlers for the BizTime API.
package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/biztime/biztime-api/internal/api/shared"
	"github.com/biztime/biztime-api/internal/domain"
	"github.com/biztime/biztime-api/internal/store"
)

// CreateCompanyRequest represents the request body for creating a company.
type CreateCompanyRequest struct {
	Code        string `json:"code" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// UpdateCompanyRequest represents the request body for updating a company.
// The code comes from the URL and is never mutated.
type UpdateCompanyRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// CompanyHandler handles company-related HTTP requests.
type CompanyHandler struct {
	companyStore      store.CompanyStore
	logger            *slog.Logger
	exposeErrorDetail bool
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(
	companyStore store.CompanyStore,
	logger *slog.Logger,
	exposeErrorDetail bool,
) *CompanyHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CompanyHandler{
		companyStore:      companyStore,
		logger:            logger.With(slog.String("component", "company_handler")),
		exposeErrorDetail: exposeErrorDetail,
	}
}

// List handles GET /companies requests.
// It returns all companies projected to {code, name}, ordered by name.
func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	companies, err := h.companyStore.List(r.Context())
	if err != nil {
		respondInternalError(w, r, err, h.exposeErrorDetail)
		return
	}

	summaries := make([]CompanySummary, 0, len(companies))
	for _, c := range companies {
		summaries = append(summaries, CompanySummary{Code: c.Code, Name: c.Name})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string][]CompanySummary{
		"companies": summaries,
	})
}

// Get handles GET /companies/{code} requests.
// The invoice-id list is read fresh on every request; it is a join, not a
// cached field.
func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	company, err := h.companyStore.Get(r.Context(), code)
	if err != nil {
		h.respondCompanyError(w, r, err, code)
		return
	}

	invoiceIDs, err := h.companyStore.InvoiceIDs(r.Context(), code)
	if err != nil {
		respondInternalError(w, r, err, h.exposeErrorDetail)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]CompanyDetail{
		"company": {
			Code:        company.Code,
			Name:        company.Name,
			Description: company.Description,
			Invoices:    invoiceIDs,
		},
	})
}

// Create handles POST /companies requests.
func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCompanyRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil || isBlank(req.Code, req.Name, req.Description) {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Code, name, and description are required")
		return
	}

	company := &domain.Company{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := h.companyStore.Create(r.Context(), company); err != nil {
		if errors.Is(err, store.ErrCompanyExists) {
			shared.RespondWithErrorAndLog(w, r, http.StatusConflict,
				fmt.Sprintf("Company with code '%s' already exists", req.Code), err)
			return
		}
		respondInternalError(w, r, err, h.exposeErrorDetail)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, map[string]CompanyData{
		"company": companyToData(company),
	})
}

// Update handles PUT /companies/{code} requests.
// Only name and description are mutable; the code is fixed at creation.
func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var req UpdateCompanyRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil || isBlank(req.Name, req.Description) {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Name and description are required")
		return
	}

	company := &domain.Company{
		Code:        code,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := h.companyStore.Update(r.Context(), company); err != nil {
		h.respondCompanyError(w, r, err, code)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]CompanyData{
		"company": companyToData(company),
	})
}

// Delete handles DELETE /companies/{code} requests.
// Deletion is blocked while invoices still reference the company; the
// foreign key carries no cascade.
func (h *CompanyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	if err := h.companyStore.Delete(r.Context(), code); err != nil {
		if errors.Is(err, store.ErrCompanyInUse) {
			shared.RespondWithErrorAndLog(w, r, http.StatusConflict,
				fmt.Sprintf("Company '%s' still has invoices", code), err)
			return
		}
		h.respondCompanyError(w, r, err, code)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, StatusResponse{Status: "deleted"})
}

// respondCompanyError renders a company lookup failure: the expected
// not-found case gets its precise message, anything else falls through to
// the unclassified 500 path.
func (h *CompanyHandler) respondCompanyError(
	w http.ResponseWriter,
	r *http.Request,
	err error,
	code string,
) {
	if errors.Is(err, store.ErrCompanyNotFound) {
		shared.RespondWithError(w, r, http.StatusNotFound,
			fmt.Sprintf("No such company: %s", code))
		return
	}
	respondInternalError(w, r, err, h.exposeErrorDetail)
}

// isBlank reports whether any of the given values is empty after trimming
// whitespace. The validator's required tag misses whitespace-only strings.
func isBlank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
