package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestKeyedRateLimiter_BurstThenBlock(t *testing.T) {
	rl := NewKeyedRateLimiter(rate.Limit(1), 3)
	limiter := rl.GetLimiter("user-1")

	assert.True(t, limiter.Allow())
	assert.True(t, limiter.Allow())
	assert.True(t, limiter.Allow())
	assert.False(t, limiter.Allow())
}

func TestKeyedRateLimiter_KeysAreIndependent(t *testing.T) {
	rl := NewKeyedRateLimiter(rate.Limit(1), 1)

	assert.True(t, rl.GetLimiter("user-a").Allow())
	assert.False(t, rl.GetLimiter("user-a").Allow())
	// A different caller still has a full bucket
	assert.True(t, rl.GetLimiter("user-b").Allow())
}

func TestRateLimitMiddleware_KeyedByUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := NewKeyedRateLimiter(rate.Limit(1), 1)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userId", c.GetHeader("X-Test-User"))
	})
	r.Use(RateLimitMiddleware(rl))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	call := func(user string) int {
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set("X-Test-User", user)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, call("alice"))
	assert.Equal(t, http.StatusTooManyRequests, call("alice"))
	// Bob shares the IP but not the bucket
	assert.Equal(t, http.StatusOK, call("bob"))
}
