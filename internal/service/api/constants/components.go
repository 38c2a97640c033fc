package constants

// Component names attached to log entries.
const (
	ComponentService      = "api.service"
	ComponentHandler      = "api.handler"
	ComponentErrorHandler = "api.error_handler"

	ComponentMiddlewareHTTPLogging   = "api.middleware.http_logging"
	ComponentMiddlewarePanicRecovery = "api.middleware.panic_recovery"
	ComponentMiddlewareRateLimit     = "api.middleware.rate_limit"
)
