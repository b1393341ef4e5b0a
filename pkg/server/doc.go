// Package server provides a reusable HTTP server with middleware,
// health endpoints, Prometheus metrics, and graceful shutdown.
//
// The server is configured with functional options and environment
// variables, and serves the handlers it is given under a common
// middleware chain (metrics, API version negotiation, request IDs,
// panic recovery, rate limiting, request logging):
//
//	s := server.New(
//	    server.WithName("sigild"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/releases": provider.HandleReleases,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # System endpoints
//
// Beyond the configured handlers, the server always serves:
//   - GET /        - service identity and route listing
//   - GET /health  - liveness probe
//   - GET /ready   - readiness probe
//   - GET /metrics - Prometheus metrics
//
// System endpoints bypass rate limiting.
//
// # Configuration
//
// Environment variables override defaults:
//   - PORT: HTTP listen port (default 8080)
//   - SHUTDOWN_TIMEOUT_SECONDS: graceful shutdown budget, useful for
//     matching an orchestrator's eviction grace period
//
// Run blocks until the context is cancelled or SIGINT/SIGTERM arrives,
// then drains in-flight requests within the shutdown timeout. When
// running under systemd with Type=notify, readiness and shutdown are
// reported over the notify socket.
package server
