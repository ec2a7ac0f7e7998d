package api

import (
	"encoding/json"
	"net/http"

	"probe/internal/models"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

// RouteOption configures optional route behavior.
type RouteOption func(*mux.Router)

// WithOTelMiddleware adds OpenTelemetry HTTP instrumentation middleware.
func WithOTelMiddleware(serviceName string) RouteOption {
	return func(r *mux.Router) {
		r.Use(otelmux.Middleware(serviceName,
			otelmux.WithFilter(func(r *http.Request) bool {
				return r.URL.Path != "/health" &&
					r.URL.Path != "/metrics"
			}),
		))
	}
}

// WithRateLimiter adds rate limiting middleware to the router.
func WithRateLimiter(middleware func(http.Handler) http.Handler) RouteOption {
	return func(r *mux.Router) {
		r.Use(middleware)
	}
}

// WithRequestMetrics adds request counting and latency middleware to the router.
func WithRequestMetrics(middleware func(http.Handler) http.Handler) RouteOption {
	return func(r *mux.Router) {
		r.Use(middleware)
	}
}

// SetupRoutes configures the HTTP routes for the probe server
func SetupRoutes(handlers *Handlers, config *models.Config, opts ...RouteOption) *mux.Router {
	router := mux.NewRouter()

	for _, opt := range opts {
		opt(router)
	}

	router.HandleFunc("/health", handlers.Health).Methods("GET")
	router.HandleFunc("/api/auth/login", handlers.LoginProbe).Methods("GET")

	var cors mux.MiddlewareFunc
	if config.Server.CORS.Enabled {
		cors = corsMiddleware(config.Server.CORS)
		router.Use(cors)
	}

	router.Use(jsonBodyMiddleware)
	router.Use(loggingMiddleware)
	router.Use(recoveryMiddleware)

	// Router middlewares only wrap matched routes, so the 404 and 405
	// handlers carry the CORS headers themselves. Probe clients expect
	// those headers on every response, error or not.
	notFound := http.HandlerFunc(notFoundHandler)
	methodNotAllowed := http.HandlerFunc(methodNotAllowedHandler)
	if cors != nil {
		router.NotFoundHandler = cors(notFound)
		router.MethodNotAllowedHandler = cors(methodNotAllowed)
	} else {
		router.NotFoundHandler = notFound
		router.MethodNotAllowedHandler = methodNotAllowed
	}

	return router
}

// notFoundHandler handles requests for unknown paths
func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	errorResp := models.NewErrorResponse("Not found", models.ErrorCodeNotFound)
	json.NewEncoder(w).Encode(errorResp)
}

// methodNotAllowedHandler handles requests with invalid HTTP methods
func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusMethodNotAllowed)
	errorResp := models.NewErrorResponse("Method not allowed", models.ErrorCodeInvalidRequest)
	json.NewEncoder(w).Encode(errorResp)
}
