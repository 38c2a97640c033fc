// Package system serves operational endpoints that are not part of the
// observability contract.
package system

import (
	"net/http"

	"github.com/darkkaiser/observability-api/internal/pkg/version"
	"github.com/darkkaiser/observability-api/internal/service/api/constants"
	applog "github.com/darkkaiser/observability-api/pkg/log"
	"github.com/labstack/echo/v4"
)

// Handler serves the build information.
type Handler struct {
	buildInfo version.Info
}

func New(buildInfo version.Info) *Handler {
	return &Handler{buildInfo: buildInfo}
}

// VersionHandler godoc
// @Summary Informations de build
// @Description Version, commit, date et numéro de build, version de Go et plateforme.
// @Tags système
// @Produce json
// @Success 200 {object} version.Info
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/version",
		"remote_ip": c.RealIP(),
	}).Debug("serving build information")

	return c.JSON(http.StatusOK, h.buildInfo)
}
