// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the standard response utilities used across all endpoints:
// a structured error envelope, consistent JSON serialization, and helpers for
// common HTTP patterns. Success and failure shapes are uniform so clients can
// branch on stable fields instead of parsing messages.
//
// Conventions:
//   - All error responses return an ErrorResponse with a stable `code`.
//   - `fail()` centralizes error formatting and ensures 5xx responses are
//     logged with request context; store-level error detail never reaches the
//     caller, only the logs (correlated via X-Request-ID).
//   - `ok()` writes success responses in a consistent shape across handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seriestrack/go-reminder-backend/internal/http/middleware"
)

// ErrorResponse is the standard error envelope returned by all endpoints.
//
// Fields:
//   - RequestID: correlation ID echoed from the X-Request-ID header, used to
//     match server logs with client-side errors.
//   - Code: a stable, machine-readable string (see errors.go constants).
//   - Message: a human-readable error description, safe for display to users.
type ErrorResponse struct {
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable, machine-readable code (see errors.go constants)
	Code string `json:"code" example:"not_found"`
	// Human-readable message (safe to show to users)
	Message string `json:"message" example:"reminder not found"`
}

// fail aborts the request with a structured error and logs server-side errors.
//
// It constructs an ErrorResponse, writes it as JSON with the given HTTP status,
// and calls gin.Context.AbortWithStatusJSON to stop further processing.
//
// Server errors (>=500) are logged using the request-scoped logger from middleware.
func fail(c *gin.Context, status int, code, msg string) {
	reqID := c.Writer.Header().Get("X-Request-ID")
	resp := ErrorResponse{
		RequestID: reqID,
		Code:      code,
		Message:   msg,
	}

	// Log 5xx (server-side) with request-scoped logger
	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail().
//
// External packages (e.g., router setup) should call Fail to return
// consistent error envelopes without directly depending on unexported helpers.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// ok writes a success JSON response with the given status code.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}
