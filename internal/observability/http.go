package observability

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// RequestMetrics is HTTP middleware that records per-route request counts and
// latency histograms through the OpenTelemetry meter. Trace spans are left to
// the otelmux middleware; this layer only measures.
type RequestMetrics struct {
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

// NewRequestMetrics creates the middleware's instruments on the global meter.
func NewRequestMetrics() (*RequestMetrics, error) {
	meter := otel.Meter("probe/http")

	requests, err := meter.Int64Counter(
		"http.server.requests",
		metric.WithDescription("Number of HTTP requests handled"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram(
		"http.server.duration",
		metric.WithDescription("Duration of HTTP request handling in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &RequestMetrics{
		requests: requests,
		duration: duration,
	}, nil
}

// Middleware wraps a handler, recording one counter increment and one
// histogram sample per request, labeled by method, route, and status code.
func (rm *RequestMetrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		elapsed := time.Since(start).Seconds()
		attrs := metric.WithAttributes(
			attribute.String("http.method", r.Method),
			attribute.String("http.route", routeTemplate(r)),
			attribute.Int("http.status_code", recorder.status),
		)

		rm.requests.Add(r.Context(), 1, attrs)
		rm.duration.Record(r.Context(), elapsed, attrs)
	})
}

// routeTemplate returns the matched mux route template, falling back to the
// raw path for unmatched requests. Unmatched paths are collapsed to a single
// label value to keep metric cardinality bounded.
func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tmpl, err := route.GetPathTemplate(); err == nil {
			return tmpl
		}
	}
	return "unmatched"
}

// statusRecorder captures the response status code for labeling.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}
