// Package models - API response types and error handling.
// This file defines all outgoing API response structures with consistent formatting.
//
// Response Design Principles:
// - Consistent JSON structure across all endpoints
// - Responses are built fresh per request and never cached or reused
// - RFC3339 timestamps for international compatibility
// - Machine-readable error codes alongside human-readable messages
package models

import (
	"time"
)

// HealthResponse is the payload for GET /health.
//
// Status is always "OK" while the process is serving requests; the endpoint
// exists to confirm the server is alive and accepting connections, not to
// aggregate component health. Timestamp is the wall-clock time at which the
// request was handled.
type HealthResponse struct {
	Status    string    `json:"status"`    // Constant "OK"
	Message   string    `json:"message"`   // Descriptive text from ProbeConfig
	Timestamp time.Time `json:"timestamp"` // Request handling time, RFC3339
}

// LoginProbeResponse is the payload for GET /api/auth/login.
//
// Despite the path, this endpoint performs no authentication: it is a
// connectivity probe confirming the auth route prefix is wired through
// whatever proxies sit in front of the service. Success is unconditionally
// true and no credentials are read or validated.
type LoginProbeResponse struct {
	Success   bool      `json:"success"`   // Always true
	Message   string    `json:"message"`   // Descriptive text from ProbeConfig
	Timestamp time.Time `json:"timestamp"` // Request handling time, RFC3339
}

// ErrorResponse provides structured error information with debugging context.
//
// Error Handling Design:
// - Consistent error structure across all endpoints
// - Machine-readable error codes for programmatic handling
// - Human-readable messages for user interfaces
// - Timestamps for debugging and audit trails
type ErrorResponse struct {
	Error     string    `json:"error"`                // Error type (always "error")
	Message   string    `json:"message"`              // Human-readable error description
	Code      string    `json:"code,omitempty"`       // Machine-readable error code
	Timestamp time.Time `json:"timestamp"`            // Error occurrence time
	RequestID string    `json:"request_id,omitempty"` // Unique request identifier
}

// HealthStatusOK is the only health status this service reports. If the
// process is up enough to run the handler, it is healthy; anything less and
// the request never completes.
const HealthStatusOK = "OK"

// Standard HTTP Error Codes
//
// Error Code Strategy:
// - Upper-case with underscores for consistency
// - Maps to standard HTTP status codes
// - Machine-readable for client error handling
const (
	ErrorCodeNotFound          = "NOT_FOUND"           // 404: Route doesn't exist
	ErrorCodeBadRequest        = "BAD_REQUEST"         // 400: Invalid request format
	ErrorCodeInvalidRequest    = "INVALID_REQUEST"     // 400/405: Invalid request data or method
	ErrorCodeInternalError     = "INTERNAL_ERROR"      // 500: Server-side error
	ErrorCodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED" // 429: Too many requests
)

func NewErrorResponse(message string, code string) *ErrorResponse {
	return &ErrorResponse{
		Error:     "error",
		Message:   message,
		Code:      code,
		Timestamp: time.Now().UTC(),
	}
}

// NewHealthResponse builds a health payload stamped with the current time.
func NewHealthResponse(message string) *HealthResponse {
	return &HealthResponse{
		Status:    HealthStatusOK,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

// NewLoginProbeResponse builds a login probe payload stamped with the current time.
func NewLoginProbeResponse(message string) *LoginProbeResponse {
	return &LoginProbeResponse{
		Success:   true,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}
