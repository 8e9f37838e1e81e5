package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/biztime/biztime-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"company_not_found", store.ErrCompanyNotFound, http.StatusNotFound},
		{"invoice_not_found", store.ErrInvoiceNotFound, http.StatusNotFound},
		{"generic_not_found", store.ErrNotFound, http.StatusNotFound},
		{"wrapped_not_found", fmt.Errorf("lookup: %w", store.ErrCompanyNotFound), http.StatusNotFound},
		{"company_exists", store.ErrCompanyExists, http.StatusConflict},
		{"company_in_use", store.ErrCompanyInUse, http.StatusConflict},
		{"invalid_reference", store.ErrInvalidReference, http.StatusBadRequest},
		{"unclassified", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestInternalErrorMessage(t *testing.T) {
	err := errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

	assert.Equal(t, "Internal Server Error", InternalErrorMessage(err, false))
	assert.Equal(t, err.Error(), InternalErrorMessage(err, true))
	assert.Equal(t, "Internal Server Error", InternalErrorMessage(nil, true))
}
