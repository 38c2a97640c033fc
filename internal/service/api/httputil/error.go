package httputil

import (
	"fmt"
	"net/http"

	"github.com/darkkaiser/observability-api/internal/service/api/constants"
	"github.com/darkkaiser/observability-api/internal/service/api/model/observability"
	applog "github.com/darkkaiser/observability-api/pkg/log"
	"github.com/labstack/echo/v4"
)

// ErrorHandler is the global echo error handler.
//
// Every failure is answered with an ErrorResponse whose message is always
// constants.ErrMsgInternal and whose details carry the textual description
// of the error. The body is YAML when FormatOf selects it, JSON otherwise.
func ErrorHandler(err error, c echo.Context) {
	code, details := describe(err)

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}
	if code >= http.StatusInternalServerError {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)
	} else if code >= http.StatusBadRequest {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
	}

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	body := observability.ErrorResponse{
		Message: constants.ErrMsgInternal,
		Details: details,
	}
	if err := Render(c, code, FormatOf(c.Request()), body); err != nil {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, applog.Fields{
			"path":  c.Request().URL.Path,
			"error": err,
		}).Error("failed to write error response")
	}
}

// describe returns the status code and details of err. echo errors keep
// their code and message; anything else is a 500 whose cause is only logged.
func describe(err error) (int, string) {
	if he, ok := err.(*echo.HTTPError); ok {
		details := http.StatusText(he.Code)
		switch m := he.Message.(type) {
		case string:
			if m != "" {
				details = m
			}
		case error:
			details = m.Error()
		case nil:
		default:
			details = fmt.Sprint(m)
		}
		return he.Code, details
	}

	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}
