package middleware

import (
	"fmt"
	"sync"

	"github.com/darkkaiser/observability-api/internal/service/api/constants"
	applog "github.com/darkkaiser/observability-api/pkg/log"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	// maxIPRateLimiters caps the number of tracked clients. Past the cap an
	// arbitrary entry is evicted.
	maxIPRateLimiters = 10000

	// retryAfter is the RFC 9110 header telling a throttled client when to
	// try again.
	retryAfter = "Retry-After"

	// retryAfterSeconds is the fixed delay suggested to throttled clients.
	retryAfterSeconds = "1"
)

// ipRateLimiter keeps one token bucket per client IP.
//
// Concurrency:
//   - lookups take the read lock; creating a bucket takes the write lock
//     and checks again, so two requests from a new client share one bucket
//
// Memory:
//   - at most maxIPRateLimiters buckets are kept
//   - past the cap one entry is evicted, chosen by map iteration order; the
//     evicted client starts again with a full bucket
type ipRateLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit // tokens added per second
	burst    int        // bucket size
}

// newIPRateLimiter returns an empty limiter.
//
// Parameters:
//   - requestsPerSecond: sustained rate allowed per client (e.g. 20)
//   - burst: requests allowed at once from a full bucket (e.g. 40)
func newIPRateLimiter(requestsPerSecond, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

// getLimiter returns the bucket of ip, creating it on first use.
func (i *ipRateLimiter) getLimiter(ip string) *rate.Limiter {
	i.mu.RLock()
	limiter, exists := i.limiters[ip]
	i.mu.RUnlock()
	if exists {
		return limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	if limiter, exists = i.limiters[ip]; exists {
		return limiter
	}

	if len(i.limiters) >= maxIPRateLimiters {
		for oldIP := range i.limiters {
			delete(i.limiters, oldIP)
			break
		}
	}

	limiter = rate.NewLimiter(i.rate, i.burst)
	i.limiters[ip] = limiter

	return limiter
}

// RateLimit rejects clients exceeding requestsPerSecond (with the given
// burst) with 429 and a Retry-After header. It panics on non-positive
// arguments.
//
// Clients are identified by c.RealIP(), which honors X-Forwarded-For and
// X-Real-IP; behind a proxy the echo IPExtractor decides which one is used.
// Every rejection is logged at Warn with remote_ip, path and method.
func RateLimit(requestsPerSecond, burst int) echo.MiddlewareFunc {
	if requestsPerSecond <= 0 {
		panic(fmt.Sprintf(constants.PanicMsgRateLimitRequestsPerSecondInvalid, requestsPerSecond))
	}
	if burst <= 0 {
		panic(fmt.Sprintf(constants.PanicMsgRateLimitBurstInvalid, burst))
	}

	limiter := newIPRateLimiter(requestsPerSecond, burst)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			if !limiter.getLimiter(ip).Allow() {
				applog.WithComponentAndFields(constants.ComponentMiddlewareRateLimit, applog.Fields{
					"remote_ip": ip,
					"path":      c.Request().URL.Path,
					"method":    c.Request().Method,
				}).Warn(constants.LogMsgRateLimitExceeded)

				c.Response().Header().Set(retryAfter, retryAfterSeconds)
				return ErrRateLimitExceeded
			}

			return next(c)
		}
	}
}
