package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"probe/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProbeConfig() models.ProbeConfig {
	return models.ProbeConfig{
		HealthMessage: "Probe server is running",
		LoginMessage:  "Login endpoint is reachable",
	}
}

func TestNewHandlers(t *testing.T) {
	handlers := NewHandlers(testProbeConfig())

	assert.NotNil(t, handlers)
	assert.Equal(t, "Probe server is running", handlers.probeConfig.HealthMessage)
}

func TestHandlers_Health(t *testing.T) {
	handlers := NewHandlers(testProbeConfig())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	recorder := httptest.NewRecorder()

	handlers.Health(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var response models.HealthResponse
	err := json.Unmarshal(recorder.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, models.HealthStatusOK, response.Status)
	assert.Equal(t, "Probe server is running", response.Message)
	assert.WithinDuration(t, time.Now().UTC(), response.Timestamp, 5*time.Second)
}

func TestHandlers_Health_ExactFields(t *testing.T) {
	handlers := NewHandlers(testProbeConfig())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	recorder := httptest.NewRecorder()

	handlers.Health(recorder, req)

	var fields map[string]interface{}
	err := json.Unmarshal(recorder.Body.Bytes(), &fields)
	require.NoError(t, err)

	assert.Len(t, fields, 3)
	assert.Contains(t, fields, "status")
	assert.Contains(t, fields, "message")
	assert.Contains(t, fields, "timestamp")

	ts, err := time.Parse(time.RFC3339, fields["timestamp"].(string))
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), ts, 5*time.Second)
}

func TestHandlers_LoginProbe(t *testing.T) {
	handlers := NewHandlers(testProbeConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/auth/login", nil)
	recorder := httptest.NewRecorder()

	handlers.LoginProbe(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response models.LoginProbeResponse
	err := json.Unmarshal(recorder.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.True(t, response.Success)
	assert.Equal(t, "Login endpoint is reachable", response.Message)
	assert.WithinDuration(t, time.Now().UTC(), response.Timestamp, 5*time.Second)
}

func TestHandlers_LoginProbe_ExactFields(t *testing.T) {
	handlers := NewHandlers(testProbeConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/auth/login", nil)
	recorder := httptest.NewRecorder()

	handlers.LoginProbe(recorder, req)

	var fields map[string]interface{}
	err := json.Unmarshal(recorder.Body.Bytes(), &fields)
	require.NoError(t, err)

	assert.Len(t, fields, 3)
	assert.Contains(t, fields, "success")
	assert.Contains(t, fields, "message")
	assert.Contains(t, fields, "timestamp")

	ts, err := time.Parse(time.RFC3339, fields["timestamp"].(string))
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), ts, 5*time.Second)
}

func TestHandlers_CustomMessages(t *testing.T) {
	handlers := NewHandlers(models.ProbeConfig{
		HealthMessage: "custom health",
		LoginMessage:  "custom login",
	})

	recorder := httptest.NewRecorder()
	handlers.Health(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	var health models.HealthResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &health))
	assert.Equal(t, "custom health", health.Message)

	recorder = httptest.NewRecorder()
	handlers.LoginProbe(recorder, httptest.NewRequest(http.MethodGet, "/api/auth/login", nil))

	var login models.LoginProbeResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &login))
	assert.Equal(t, "custom login", login.Message)
}

func TestHandlers_WriteErrorResponse(t *testing.T) {
	handlers := NewHandlers(testProbeConfig())

	recorder := httptest.NewRecorder()
	handlers.writeErrorResponse(recorder, http.StatusBadRequest, models.ErrorCodeBadRequest, "something went wrong")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errorResp))
	assert.Equal(t, "something went wrong", errorResp.Message)
	assert.Equal(t, models.ErrorCodeBadRequest, errorResp.Code)
}
