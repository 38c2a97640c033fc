package constants

import "time"

const (
	// DefaultRequestTimeout bounds the handling of a single request.
	DefaultRequestTimeout = 60 * time.Second

	// DefaultShutdownTimeout bounds the graceful shutdown of the HTTP server.
	DefaultShutdownTimeout = 5 * time.Second
)
