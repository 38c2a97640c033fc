package api

import (
	"github.com/darkkaiser/observability-api/internal/service/api/handler/observability"
	"github.com/darkkaiser/observability-api/internal/service/api/handler/system"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// SetupRoutes registers every route of the service:
//   - /info, /info.yaml, /health, /health.yaml
//   - /version
//   - /swagger/* (API documentation)
func SetupRoutes(e *echo.Echo, oh *observability.Handler, sh *system.Handler) {
	registerObservabilityRoutes(e, oh)
	registerSystemRoutes(e, sh)
	registerSwaggerRoutes(e)
}

func registerObservabilityRoutes(e *echo.Echo, h *observability.Handler) {
	e.GET("/info", h.InfoHandler)
	e.GET("/info.yaml", h.InfoYAMLHandler)
	e.GET("/health", h.HealthHandler)
	e.GET("/health.yaml", h.HealthYAMLHandler)
}

func registerSystemRoutes(e *echo.Echo, h *system.Handler) {
	e.GET("/version", h.VersionHandler)
}

func registerSwaggerRoutes(e *echo.Echo) {
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(
		echoSwagger.URL("/swagger/doc.json"),
		echoSwagger.DeepLinking(true),
		echoSwagger.DocExpansion("list"),
	))
}
