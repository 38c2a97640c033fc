// Package observability serves the info and health endpoints in JSON and
// YAML.
package observability

import (
	"net/http"
	"time"

	"github.com/darkkaiser/observability-api/internal/service/api/constants"
	"github.com/darkkaiser/observability-api/internal/service/api/httputil"
	model "github.com/darkkaiser/observability-api/internal/service/api/model/observability"
	applog "github.com/darkkaiser/observability-api/pkg/log"
	"github.com/labstack/echo/v4"
)

// Catalog provides the payloads. *catalog.Catalog implements it.
type Catalog interface {
	Info(now time.Time) model.Info
	Health() model.Health
}

// Handler renders catalog payloads. The response format is chosen per
// route: the ".yaml" routes produce YAML, the others JSON.
type Handler struct {
	catalog Catalog
	now     func() time.Time
}

// New panics when catalog is nil. now defaults to time.Now.
func New(catalog Catalog, now func() time.Time) *Handler {
	if catalog == nil {
		panic(constants.PanicMsgCatalogRequired)
	}
	if now == nil {
		now = time.Now
	}

	return &Handler{
		catalog: catalog,
		now:     now,
	}
}

// InfoHandler godoc
// @Summary Informations de gouvernance du système
// @Description Identification du système d'information, environnement, classification maximale
// @Description des données, mentions, niveaux ARR et de service, directions et homologation.
// @Tags observabilité, gouvernance
// @Produce json
// @Success 200 {object} model.Envelope[model.InfoData]
// @Failure 500 {object} model.ErrorResponse
// @Router /info [get]
func (h *Handler) InfoHandler(c echo.Context) error {
	return h.render(c, httputil.FormatJSON, h.catalog.Info(h.now()))
}

// InfoYAMLHandler godoc
// @Summary Informations de gouvernance du système (YAML)
// @Description Même contenu que /info, sérialisé en YAML.
// @Tags observabilité, gouvernance
// @Produce application/x-yaml
// @Success 200 {object} model.Envelope[model.InfoData]
// @Failure 500 {object} model.ErrorResponse
// @Router /info.yaml [get]
func (h *Handler) InfoYAMLHandler(c echo.Context) error {
	return h.render(c, httputil.FormatYAML, h.catalog.Info(h.now()))
}

// HealthHandler godoc
// @Summary État de santé du système
// @Description Statut global du système et état des services dont il dépend.
// @Tags observabilité, statut, supervision
// @Produce json
// @Success 200 {object} model.Envelope[model.HealthData]
// @Failure 500 {object} model.ErrorResponse
// @Router /health [get]
func (h *Handler) HealthHandler(c echo.Context) error {
	return h.render(c, httputil.FormatJSON, h.catalog.Health())
}

// HealthYAMLHandler godoc
// @Summary État de santé du système (YAML)
// @Description Même contenu que /health, sérialisé en YAML.
// @Tags observabilité, statut, supervision
// @Produce application/x-yaml
// @Success 200 {object} model.Envelope[model.HealthData]
// @Failure 500 {object} model.ErrorResponse
// @Router /health.yaml [get]
func (h *Handler) HealthYAMLHandler(c echo.Context) error {
	return h.render(c, httputil.FormatYAML, h.catalog.Health())
}

func (h *Handler) render(c echo.Context, format httputil.Format, payload any) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  c.Path(),
		"format":    format.String(),
		"remote_ip": c.RealIP(),
	}).Debug("rendering payload")

	return httputil.Render(c, http.StatusOK, format, payload)
}
