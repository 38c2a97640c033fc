package api

import (
	"net/http"
	"time"

	"github.com/darkkaiser/observability-api/internal/config"
	"github.com/darkkaiser/observability-api/internal/service/api/constants"
	"github.com/darkkaiser/observability-api/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/observability-api/internal/service/api/middleware"
	applog "github.com/darkkaiser/observability-api/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// HTTPServerConfig holds what NewHTTPServer needs from the configuration.
type HTTPServerConfig struct {
	Debug bool

	// EnableHSTS adds Strict-Transport-Security; only meaningful over TLS.
	EnableHSTS bool

	AllowOrigins []string

	RateLimit config.RateLimitConfig

	// RequestTimeout defaults to constants.DefaultRequestTimeout.
	RequestTimeout time.Duration
}

// NewHTTPServer returns an echo instance with the middleware chain applied
// and no routes. Order matters:
//
//  1. PanicRecovery, outermost so that panics anywhere below are caught
//  2. RequestID, so every later log line carries request_id
//  3. Server header removal
//  4. HTTPLogger, before the rate limiter so 429s are logged
//  5. RateLimit, when enabled
//  6. BodyLimit
//  7. ContextTimeout
//  8. CORS, GET only
//  9. Secure headers, with HSTS when enabled
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout

	e.Logger = appmiddleware.Logger{Logger: applog.StandardLogger()}
	e.HTTPErrorHandler = httputil.ErrorHandler

	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = constants.DefaultRequestTimeout
	}

	e.Use(appmiddleware.PanicRecovery())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderServer, "")
			return next(c)
		}
	})
	e.Use(appmiddleware.HTTPLogger())
	if cfg.RateLimit.Enabled {
		e.Use(appmiddleware.RateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
	}
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	e.Use(middleware.ContextTimeout(timeout))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead},
	}))

	secureConfig := middleware.DefaultSecureConfig
	if cfg.EnableHSTS {
		secureConfig.HSTSMaxAge = constants.DefaultHSTSMaxAge
	}
	e.Use(middleware.SecureWithConfig(secureConfig))

	return e
}
