package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/creatorbridge/api/pkg/models"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RateLimiter holds per-IP token buckets.
type RateLimiter struct {
	visitors map[string]*rate.Limiter
	mu       sync.Mutex
	r        rate.Limit
	b        int
}

// NewRateLimiter creates a rate limiter allowing requestsPerMinute
// sustained requests with the given burst.
func NewRateLimiter(requestsPerMinute, burst int) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*rate.Limiter),
		r:        rate.Limit(float64(requestsPerMinute) / 60.0),
		b:        burst,
	}

	go rl.cleanupVisitors()

	return rl
}

func (rl *RateLimiter) limiterFor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, exists := rl.visitors[ip]
	if !exists {
		limiter = rate.NewLimiter(rl.r, rl.b)
		rl.visitors[ip] = limiter
	}

	return limiter
}

// cleanupVisitors drops buckets that have refilled completely, which
// means the IP has been idle long enough to forget.
func (rl *RateLimiter) cleanupVisitors() {
	for {
		time.Sleep(3 * time.Minute)

		rl.mu.Lock()
		for ip, limiter := range rl.visitors {
			if limiter.Tokens() >= float64(rl.b) {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// RateLimitMiddleware creates an Echo middleware for rate limiting
func (rl *RateLimiter) RateLimitMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !rl.limiterFor(c.RealIP()).Allow() {
				return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
					Error:   "rate_limit_exceeded",
					Message: "Too many requests. Please slow down.",
				})
			}
			return next(c)
		}
	}
}
