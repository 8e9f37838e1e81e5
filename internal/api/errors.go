package api

import (
	"errors"
	"net/http"

	"github.com/biztime/biztime-api/internal/api/shared"
	"github.com/biztime/biztime-api/internal/store"
)

// MapErrorToStatusCode maps store errors to HTTP status codes. Errors with no
// mapping are unclassified failures and default to 500.
func MapErrorToStatusCode(err error) int {
	switch {
	case store.IsNotFoundError(err):
		return http.StatusNotFound
	case store.IsDuplicateError(err):
		return http.StatusConflict
	case errors.Is(err, store.ErrInvalidReference):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// InternalErrorMessage returns the user-facing message for an unclassified
// failure. The raw error text is exposed only when exposeDetail is enabled
// (development); otherwise the client gets a generic message and the detail
// stays in the logs.
func InternalErrorMessage(err error, exposeDetail bool) string {
	if exposeDetail && err != nil {
		return err.Error()
	}
	return "Internal Server Error"
}

// respondInternalError renders an unclassified failure as a 500 envelope,
// logging the full error with the request's trace ID.
func respondInternalError(w http.ResponseWriter, r *http.Request, err error, exposeDetail bool) {
	shared.RespondWithErrorAndLog(
		w, r,
		http.StatusInternalServerError,
		InternalErrorMessage(err, exposeDetail),
		err,
	)
}
