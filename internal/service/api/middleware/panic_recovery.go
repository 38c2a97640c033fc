package middleware

import (
	"net/http"
	"runtime"

	"github.com/darkkaiser/observability-api/internal/service/api/constants"
	applog "github.com/darkkaiser/observability-api/pkg/log"
	"github.com/labstack/echo/v4"
)

// stackBufferSize bounds the goroutine stack logged with a panic; longer
// stacks are truncated.
const stackBufferSize = 4 << 10

// PanicRecovery recovers handler panics, logs them with their stack and
// hands a 500 to the error handler. The panic value never reaches the client.
//
// Logged fields:
//   - error: the panic value wrapped as an Internal AppError
//   - stack: the stack of the panicking goroutine
//   - path, method, and request_id when RequestID ran before the panic
//
// http.ErrAbortHandler is re-panicked: net/http uses it to abort a response
// silently and expects to recover it itself.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (returnErr error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				stack := make([]byte, stackBufferSize)
				length := runtime.Stack(stack, false)

				fields := applog.Fields{
					"error":  NewErrPanicRecovered(r),
					"stack":  string(stack[:length]),
					"path":   c.Request().URL.Path,
					"method": c.Request().Method,
				}
				if requestID := c.Response().Header().Get(echo.HeaderXRequestID); requestID != "" {
					fields["request_id"] = requestID
				}
				applog.WithComponentAndFields(constants.ComponentMiddlewarePanicRecovery, fields).Error(constants.LogMsgPanicRecovered)

				returnErr = echo.NewHTTPError(http.StatusInternalServerError, constants.ErrMsgPanicRecovered)
			}()

			return next(c)
		}
	}
}
