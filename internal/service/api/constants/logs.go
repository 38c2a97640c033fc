package constants

// Log messages.
const (
	LogMsgServiceStarting       = "API service starting"
	LogMsgServiceStarted        = "API service started"
	LogMsgServiceAlreadyStarted = "API service already started"
	LogMsgServiceStopping       = "API service stopping"
	LogMsgServiceStopped        = "API service stopped"
	LogMsgServiceUnexpectedExit = "API service exited unexpectedly"

	LogMsgHTTPServerStarting      = "HTTP server starting"
	LogMsgHTTPServerStopped       = "HTTP server stopped"
	LogMsgHTTPServerShutdownError = "HTTP server shutdown failed"
	LogMsgHTTPServerFatalError    = "HTTP server failed"

	LogMsgHTTPRequest        = "HTTP request"
	LogMsgHTTP4xxClientError = "HTTP 4xx: client error"
	LogMsgHTTP5xxServerError = "HTTP 5xx: server error"
	LogMsgPanicRecovered     = "panic recovered"
	LogMsgRateLimitExceeded  = "rate limit exceeded"
)
