package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/colletro/colletro-backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// KeyedRateLimiter manages token-bucket limiters per caller. The key is the
// authenticated user id when present, otherwise the client IP.
type KeyedRateLimiter struct {
	entries map[string]*rateLimiterEntry
	mu      sync.RWMutex
	r       rate.Limit
	burst   int
}

type rateLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewKeyedRateLimiter creates a new rate limiter
// r = requests per second, burst = max burst size
func NewKeyedRateLimiter(r rate.Limit, burst int) *KeyedRateLimiter {
	rl := &KeyedRateLimiter{
		entries: make(map[string]*rateLimiterEntry),
		r:       r,
		burst:   burst,
	}

	// Cleanup old entries every minute
	go rl.cleanup()

	return rl
}

func (rl *KeyedRateLimiter) cleanup() {
	for {
		time.Sleep(time.Minute)
		rl.mu.Lock()
		for key, entry := range rl.entries {
			if time.Since(entry.lastSeen) > 3*time.Minute {
				delete(rl.entries, key)
			}
		}
		rl.mu.Unlock()
	}
}

// GetLimiter returns the limiter for the given key
func (rl *KeyedRateLimiter) GetLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, exists := rl.entries[key]
	if !exists {
		limiter := rate.NewLimiter(rl.r, rl.burst)
		rl.entries[key] = &rateLimiterEntry{
			limiter:  limiter,
			lastSeen: time.Now(),
		}
		return limiter
	}

	entry.lastSeen = time.Now()
	return entry.limiter
}

// Pre-configured rate limiters for different endpoint classes
var (
	// Auth endpoints: 20 requests per minute
	AuthLimiter = NewKeyedRateLimiter(rate.Limit(20.0/60.0), 10)

	// Import endpoints: 6 per minute (parsing whole files is expensive)
	ImportLimiter = NewKeyedRateLimiter(rate.Limit(6.0/60.0), 3)

	// General API: 600 requests per minute (10/sec)
	GeneralLimiter = NewKeyedRateLimiter(rate.Limit(10.0), 50)
)

// RateLimitMiddleware creates a rate limiting middleware with a custom limiter
func RateLimitMiddleware(limiter *KeyedRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if userID, exists := c.Get("userId"); exists {
			key = userID.(string)
		}

		l := limiter.GetLimiter(key)
		if !l.Allow() {
			logger.Warn().
				Str("key", key).
				Str("path", c.Request.URL.Path).
				Msg("Rate limit exceeded")

			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":   "Too many requests",
				"message": "Rate limit exceeded. Please slow down.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// AuthRateLimit is a convenience wrapper for auth endpoints
func AuthRateLimit() gin.HandlerFunc {
	return RateLimitMiddleware(AuthLimiter)
}

// ImportRateLimit is for import endpoints
func ImportRateLimit() gin.HandlerFunc {
	return RateLimitMiddleware(ImportLimiter)
}

// GeneralRateLimit is for general API endpoints
func GeneralRateLimit() gin.HandlerFunc {
	return RateLimitMiddleware(GeneralLimiter)
}
