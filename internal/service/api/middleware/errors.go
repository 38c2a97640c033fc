package middleware

import (
	"net/http"

	apperrors "github.com/darkkaiser/observability-api/internal/pkg/errors"
	"github.com/darkkaiser/observability-api/internal/service/api/constants"
	"github.com/labstack/echo/v4"
)

// ErrRateLimitExceeded is returned to clients over their request budget.
// It renders as 429 with constants.ErrMsgTooManyRequests as details.
var ErrRateLimitExceeded = echo.NewHTTPError(http.StatusTooManyRequests, constants.ErrMsgTooManyRequests)

// NewErrPanicRecovered wraps a recovered panic value in an Internal
// AppError for logging. An error value is kept as the cause; any other value
// is formatted into the message.
func NewErrPanicRecovered(r any) error {
	if err, ok := r.(error); ok {
		return apperrors.Wrap(err, apperrors.Internal, "panic")
	}
	return apperrors.Newf(apperrors.Internal, "panic: %v", r)
}
