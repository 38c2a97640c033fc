package constants

import "time"

const (
	// DefaultMaxBodySize limits request bodies. No endpoint reads one.
	DefaultMaxBodySize = "16K"

	// DefaultReadHeaderTimeout protects against slow header senders.
	DefaultReadHeaderTimeout = 10 * time.Second

	// DefaultHSTSMaxAge is sent with Strict-Transport-Security when TLS is on.
	DefaultHSTSMaxAge = 31536000
)

// SensitiveQueryParams are masked in request logs.
var SensitiveQueryParams = []string{
	"api_key",
	"app_key",
	"password",
	"secret",
	"token",
}
