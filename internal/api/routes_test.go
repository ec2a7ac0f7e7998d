package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"probe/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, opts ...RouteOption) http.Handler {
	t.Helper()
	config := models.NewDefaultConfig()
	handlers := NewHandlers(config.Probe)
	return SetupRoutes(handlers, config, opts...)
}

func TestSetupRoutes_Health(t *testing.T) {
	router := newTestRouter(t)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response models.HealthResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, models.HealthStatusOK, response.Status)
}

func TestSetupRoutes_LoginProbe(t *testing.T) {
	router := newTestRouter(t)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/auth/login", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response models.LoginProbeResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.True(t, response.Success)
}

func TestSetupRoutes_ResponseShapeIsStable(t *testing.T) {
	router := newTestRouter(t)

	// The probe endpoints carry no state; repeated calls must return
	// the same shape and status every time.
	for i := 0; i < 3; i++ {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, recorder.Code)

		var fields map[string]interface{}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &fields))
		assert.Len(t, fields, 3)
		assert.Equal(t, "OK", fields["status"])
	}
}

func TestSetupRoutes_CORSOnEveryResponse(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"health", http.MethodGet, "/health", http.StatusOK},
		{"login probe", http.MethodGet, "/api/auth/login", http.StatusOK},
		{"unknown path", http.MethodGet, "/nope", http.StatusNotFound},
		{"wrong method", http.MethodPost, "/health", http.StatusMethodNotAllowed},
		{"preflight", http.MethodOptions, "/health", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestSetupRoutes_UnknownPathReturns404JSON(t *testing.T) {
	router := newTestRouter(t)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var errorResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errorResp))
	assert.Equal(t, models.ErrorCodeNotFound, errorResp.Code)
}

func TestSetupRoutes_WrongMethodReturns405JSON(t *testing.T) {
	router := newTestRouter(t)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/api/auth/login", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)

	var errorResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errorResp))
	assert.Equal(t, models.ErrorCodeInvalidRequest, errorResp.Code)
}

func TestSetupRoutes_MalformedJSONBodyReturns400(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", strings.NewReader("{not json"))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errorResp))
	assert.Equal(t, models.ErrorCodeBadRequest, errorResp.Code)
	assert.Equal(t, "Invalid JSON body", errorResp.Message)
}

func TestSetupRoutes_ValidJSONBodyPassesThrough(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", strings.NewReader(`{"client":"smoke-test"}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestSetupRoutes_CORSDisabled(t *testing.T) {
	config := models.NewDefaultConfig()
	config.Server.CORS.Enabled = false
	handlers := NewHandlers(config.Probe)
	router := SetupRoutes(handlers, config)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestSetupRoutes_WithOTelMiddleware(t *testing.T) {
	router := newTestRouter(t, WithOTelMiddleware("test-service"))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/auth/login", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestSetupRoutes_WithRateLimiter(t *testing.T) {
	var passedThrough bool
	limiter := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			passedThrough = true
			next.ServeHTTP(w, r)
		})
	}

	router := newTestRouter(t, WithRateLimiter(limiter))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, passedThrough)
}
