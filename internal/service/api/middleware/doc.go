// Package middleware provides the echo middlewares of the API server.
//
// Middlewares:
//
//   - PanicRecovery: turns handler panics into 500 responses
//   - HTTPLogger: structured request logging with masked secrets
//   - RateLimit: per-client token bucket answering 429 with Retry-After
//   - Logger: adapts the application logger to echo's logger interface
//
// Order:
//
// PanicRecovery must be the outermost middleware so that panics raised by
// the others are recovered too. HTTPLogger runs the error handler itself
// before logging, so the logged status is the one sent to the client,
// including 429 answers from RateLimit placed after it.
//
// Errors:
//
// Middlewares return *echo.HTTPError values; the global error handler
// renders them as {message, details} in the format of the route.
//
// Typical chain:
//
//	e := echo.New()
//	e.Use(middleware.PanicRecovery())
//	e.Use(middleware.HTTPLogger())
//	e.Use(middleware.RateLimit(20, 40))
package middleware
