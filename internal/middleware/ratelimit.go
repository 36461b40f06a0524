package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"multimodal-chat/pkg/response"
)

// RateLimit limits requests per client IP with a token bucket.
// Disabled when the configured per-minute budget is zero.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	if mw.rateLimitPerMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	var mu sync.Mutex
	limiters := make(map[string]*rate.Limiter)
	limit := rate.Every(time.Minute / time.Duration(mw.rateLimitPerMin))

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		limiter, ok := limiters[ip]
		if !ok {
			limiter = rate.NewLimiter(limit, mw.rateLimitPerMin)
			limiters[ip] = limiter
		}
		mu.Unlock()

		if !limiter.Allow() {
			mw.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", ip)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "rate limit exceeded",
			})
			return
		}

		c.Next()
	}
}
