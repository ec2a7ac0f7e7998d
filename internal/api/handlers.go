package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"probe/internal/models"
)

// Handlers contains HTTP handlers for the probe API
type Handlers struct {
	probeConfig models.ProbeConfig
}

// NewHandlers creates a new handlers instance
func NewHandlers(probeConfig models.ProbeConfig) *Handlers {
	return &Handlers{
		probeConfig: probeConfig,
	}
}

// Health handles health check requests
// GET /health
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	response := models.NewHealthResponse(h.probeConfig.HealthMessage)
	h.writeJSONResponse(w, http.StatusOK, response)
}

// LoginProbe handles login endpoint reachability checks
// GET /api/auth/login
//
// This is a connectivity probe only. It never authenticates anything and
// never reads credentials; it exists so clients can confirm the route is
// reachable before attempting a real login elsewhere.
func (h *Handlers) LoginProbe(w http.ResponseWriter, r *http.Request) {
	response := models.NewLoginProbeResponse(h.probeConfig.LoginMessage)
	h.writeJSONResponse(w, http.StatusOK, response)
}

// writeJSONResponse writes a JSON response
func (h *Handlers) writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already written, so all we can do is log it.
		slog.Error("Error encoding JSON response", "error", err)
	}
}

// writeErrorResponse writes an error response
func (h *Handlers) writeErrorResponse(w http.ResponseWriter, statusCode int, errorCode, message string) {
	errorResp := models.NewErrorResponse(message, errorCode)
	h.writeJSONResponse(w, statusCode, errorResp)
}
