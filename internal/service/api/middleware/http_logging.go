package middleware

import (
	"net/url"
	"strconv"
	"time"

	"github.com/darkkaiser/observability-api/internal/service/api/constants"
	applog "github.com/darkkaiser/observability-api/pkg/log"
	"github.com/darkkaiser/observability-api/pkg/strutil"
	"github.com/labstack/echo/v4"
)

// HTTPLogger logs one Info entry per request once the response is written.
// Values of constants.SensitiveQueryParams are masked in the logged URI.
//
// Logged fields:
//   - request: method, path, uri, host, protocol, remote_ip, user_agent,
//     referer, bytes_in
//   - response: status, bytes_out, request_id
//   - timing: latency (microseconds) and latency_human
//
// An error returned by the next handler is passed to c.Error before the
// entry is written, and HTTPLogger itself returns nil; the error handler
// must therefore not run a second time further up the chain.
func HTTPLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			// The error handler writes the response, so run it before logging.
			if err := next(c); err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			latency := time.Since(start)

			path := req.URL.Path
			if path == "" {
				path = "/"
			}
			bytesIn := req.Header.Get(echo.HeaderContentLength)
			if bytesIn == "" {
				bytesIn = "0"
			}

			applog.WithComponentAndFields(constants.ComponentMiddlewareHTTPLogging, applog.Fields{
				"method":        req.Method,
				"path":          path,
				"uri":           maskSensitiveQueryParams(req.RequestURI),
				"host":          req.Host,
				"protocol":      req.Proto,
				"remote_ip":     c.RealIP(),
				"user_agent":    req.UserAgent(),
				"referer":       req.Referer(),
				"status":        res.Status,
				"bytes_in":      bytesIn,
				"bytes_out":     strconv.FormatInt(res.Size, 10),
				"latency":       strconv.FormatInt(latency.Microseconds(), 10),
				"latency_human": latency.String(),
				"request_id":    res.Header().Get(echo.HeaderXRequestID),
			}).Info(constants.LogMsgHTTPRequest)

			return nil
		}
	}
}

// maskSensitiveQueryParams masks the value of every sensitive query
// parameter of uri with strutil.MaskSensitiveData.
//
// uri is returned unchanged when it cannot be parsed or carries no
// sensitive parameter; otherwise the query is re-encoded, which sorts it
// by key.
func maskSensitiveQueryParams(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return uri
	}

	q := u.Query()
	masked := false
	for _, param := range constants.SensitiveQueryParams {
		if q.Has(param) {
			q.Set(param, strutil.MaskSensitiveData(q.Get(param)))
			masked = true
		}
	}
	if !masked {
		return uri
	}

	u.RawQuery = q.Encode()
	return u.String()
}
