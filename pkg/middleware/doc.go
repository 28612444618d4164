// Package middleware provides HTTP middleware for the preview server.
//
// This package includes:
//   - OpenTelemetry tracing middleware
//   - Prometheus metrics middleware
//
// Both are plain func(http.Handler) http.Handler values and can be mounted
// on any chi router.
//
// # OpenTelemetry Middleware
//
// The tracing middleware starts a server span for every request. Once the
// router has matched, the span is renamed after the route pattern.
//
//	r := chi.NewRouter()
//	r.Use(middleware.Tracing())
//
// Configure with options:
//
//	middleware.Tracing(
//	    middleware.WithTracerName("docs-preview"),
//	    middleware.WithFilter(func(r *http.Request) bool {
//	        return r.URL.Path != "/metrics"
//	    }),
//	)
//
// The tracer comes from the global provider. Without a configured provider
// spans are no-ops.
//
// # Prometheus Metrics
//
// NewMetrics registers the collectors once; its Handler method is the
// middleware and the Record methods are called by the server.
//
//	reg := prometheus.NewRegistry()
//	m := middleware.NewMetrics(middleware.WithRegistry(reg))
//	r.Use(m.Handler)
//	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
//
// Metrics collected:
//   - htmlgen_requests_total: Counter of requests by route, method and status
//   - htmlgen_request_duration_seconds: Histogram of request duration by route
//   - htmlgen_renders_total: Counter of page renders by status
//   - htmlgen_render_errors_total: Counter of render errors by error code
//   - htmlgen_page_bytes: Histogram of rendered page sizes
//   - htmlgen_reloads_total: Counter of live reload broadcasts
//
// A nil *Metrics is valid and records nothing.
package middleware
