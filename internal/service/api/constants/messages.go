package constants

// Messages returned to clients.
const (
	// ErrMsgInternal is the message field of every error response.
	ErrMsgInternal = "Erreur interne"

	ErrMsgTooManyRequests = "Trop de requêtes, veuillez réessayer plus tard"
	ErrMsgPanicRecovered  = "Erreur inattendue lors du traitement de la requête"
)

// Panic messages for programming errors detected at construction time.
const (
	PanicMsgAppConfigRequired                 = "api: AppConfig is required"
	PanicMsgCatalogRequired                   = "api: catalog is required"
	PanicMsgRateLimitRequestsPerSecondInvalid = "rate limit: requestsPerSecond must be positive (got %d)"
	PanicMsgRateLimitBurstInvalid             = "rate limit: burst must be positive (got %d)"
)
