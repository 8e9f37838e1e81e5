package api

import (
	"time"

	"github.com/biztime/biztime-api/internal/domain"
)

// dateLayout is the wire format for invoice dates.
const dateLayout = "2006-01-02"

// CompanySummary is the list projection of a company.
type CompanySummary struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CompanyData is the full representation of a company without derived fields,
// used for create and update responses.
type CompanyData struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CompanyDetail is a company with its derived invoice-id list. Invoices is
// always present, empty when the company has no invoices.
type CompanyDetail struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Invoices    []int64 `json:"invoices"`
}

// InvoiceSummary is the list projection of an invoice.
type InvoiceSummary struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
}

// InvoiceData is the full representation of an invoice row.
type InvoiceData struct {
	ID       int64   `json:"id"`
	CompCode string  `json:"comp_code"`
	Amt      float64 `json:"amt"`
	Paid     bool    `json:"paid"`
	AddDate  string  `json:"add_date"`
	PaidDate *string `json:"paid_date"`
}

// InvoiceDetail is an invoice with a nested snapshot of its parent company.
type InvoiceDetail struct {
	ID       int64       `json:"id"`
	Amt      float64     `json:"amt"`
	Paid     bool        `json:"paid"`
	AddDate  string      `json:"add_date"`
	PaidDate *string     `json:"paid_date"`
	Company  CompanyData `json:"company"`
}

// StatusResponse acknowledges a successful delete.
type StatusResponse struct {
	Status string `json:"status"`
}

func companyToData(c *domain.Company) CompanyData {
	return CompanyData{
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
	}
}

func invoiceToData(inv *domain.Invoice) InvoiceData {
	return InvoiceData{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate.Format(dateLayout),
		PaidDate: formatNullableDate(inv.PaidDate),
	}
}

func formatNullableDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
