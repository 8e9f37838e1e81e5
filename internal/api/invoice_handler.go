package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/biztime/biztime-api/internal/api/shared"
	"github.com/biztime/biztime-api/internal/store"
)

// CreateInvoiceRequest represents the request body for creating an invoice.
// Presence is deliberately not validated here: the store's constraints
// (NOT NULL on amt, the foreign key on comp_code) are the source of truth,
// so a nil Amt is passed through and rejected by the database.
type CreateInvoiceRequest struct {
	CompCode string   `json:"comp_code"`
	Amt      *float64 `json:"amt"`
}

// UpdateInvoiceRequest represents the request body for updating an invoice.
// Amt is the only mutable invoice field.
type UpdateInvoiceRequest struct {
	Amt *float64 `json:"amt"`
}

// InvoiceHandler handles invoice-related HTTP requests.
type InvoiceHandler struct {
	invoiceStore      store.InvoiceStore
	logger            *slog.Logger
	exposeErrorDetail bool
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(
	invoiceStore store.InvoiceStore,
	logger *slog.Logger,
	exposeErrorDetail bool,
) *InvoiceHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &InvoiceHandler{
		invoiceStore:      invoiceStore,
		logger:            logger.With(slog.String("component", "invoice_handler")),
		exposeErrorDetail: exposeErrorDetail,
	}
}

// List handles GET /invoices requests.
// It returns all invoices projected to {id, comp_code}, ordered by id.
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.invoiceStore.List(r.Context())
	if err != nil {
		respondInternalError(w, r, err, h.exposeErrorDetail)
		return
	}

	summaries := make([]InvoiceSummary, 0, len(invoices))
	for _, inv := range invoices {
		summaries = append(summaries, InvoiceSummary{ID: inv.ID, CompCode: inv.CompCode})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string][]InvoiceSummary{
		"invoices": summaries,
	})
}

// Get handles GET /invoices/{id} requests.
// The response nests a full snapshot of the parent company read in the same
// join as the invoice.
func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		// A non-numeric id cannot name an existing invoice.
		h.respondNotFound(w, r, idParam)
		return
	}

	invoice, company, err := h.invoiceStore.GetWithCompany(r.Context(), id)
	if err != nil {
		h.respondInvoiceError(w, r, err, idParam)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]InvoiceDetail{
		"invoice": {
			ID:       invoice.ID,
			Amt:      invoice.Amt,
			Paid:     invoice.Paid,
			AddDate:  invoice.AddDate.Format(dateLayout),
			PaidDate: formatNullableDate(invoice.PaidDate),
			Company:  companyToData(company),
		},
	})
}

// Create handles POST /invoices requests.
// The foreign key on comp_code enforces that the company exists; an unknown
// code never produces a row.
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateInvoiceRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	invoice, err := h.invoiceStore.Create(r.Context(), req.CompCode, req.Amt)
	if err != nil {
		if errors.Is(err, store.ErrInvalidReference) {
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
				fmt.Sprintf("Unknown company code: '%s'", req.CompCode), err)
			return
		}
		respondInternalError(w, r, err, h.exposeErrorDetail)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, map[string]InvoiceData{
		"invoice": invoiceToData(invoice),
	})
}

// Update handles PUT /invoices/{id} requests.
// Applying the same amount twice yields the same row; id and comp_code never
// change.
func (h *InvoiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		h.respondNotFound(w, r, idParam)
		return
	}

	var req UpdateInvoiceRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	invoice, err := h.invoiceStore.UpdateAmount(r.Context(), id, req.Amt)
	if err != nil {
		h.respondInvoiceError(w, r, err, idParam)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]InvoiceData{
		"invoice": invoiceToData(invoice),
	})
}

// Delete handles DELETE /invoices/{id} requests.
func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		h.respondNotFound(w, r, idParam)
		return
	}

	if err := h.invoiceStore.Delete(r.Context(), id); err != nil {
		h.respondInvoiceError(w, r, err, idParam)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, StatusResponse{Status: "deleted"})
}

// respondInvoiceError renders an invoice lookup failure: the expected
// not-found case gets its precise message, anything else falls through to
// the unclassified 500 path.
func (h *InvoiceHandler) respondInvoiceError(
	w http.ResponseWriter,
	r *http.Request,
	err error,
	idParam string,
) {
	if errors.Is(err, store.ErrInvoiceNotFound) {
		h.respondNotFound(w, r, idParam)
		return
	}
	respondInternalError(w, r, err, h.exposeErrorDetail)
}

func (h *InvoiceHandler) respondNotFound(w http.ResponseWriter, r *http.Request, idParam string) {
	shared.RespondWithError(w, r, http.StatusNotFound,
		fmt.Sprintf("Invoice with ID '%s' not found", idParam))
}
