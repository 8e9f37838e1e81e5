// Package shared provides request and response helpers used by all API
// handlers: JSON decoding, validation, trace-ID context, and the uniform
// error envelope.
package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// ErrorDetail carries the message and HTTP status of a failed request.
type ErrorDetail struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// ErrorResponse is the uniform envelope for all error responses:
// {"error":{"message":...,"status":...}}. Success payloads never carry an
// "error" key.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes the uniform JSON error envelope with the given
// status code and message.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := GetTraceID(r.Context())

	slog.Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, ErrorResponse{
		Error: ErrorDetail{Message: message, Status: status},
	})
}

// RespondWithErrorAndLog writes the uniform JSON error envelope and logs the
// underlying error. The client sees only userMessage; the full error detail
// goes to the logs with the request's trace ID.
//
// Log level strategy: 5xx at ERROR, 4xx at DEBUG.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", err.Error()),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, ErrorResponse{
		Error: ErrorDetail{Message: userMessage, Status: status},
	})
}
