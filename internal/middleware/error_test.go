package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/colletro/colletro-backend/pkg/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func errorRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandlerMiddleware())
	r.GET("/boom", handler)
	return r
}

func TestErrorHandler_RendersAppErrorStatus(t *testing.T) {
	r := errorRouter(func(c *gin.Context) {
		c.Error(errors.BadRequest("malformed payload"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/boom", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "malformed payload")
}

func TestErrorHandler_RateLimitError(t *testing.T) {
	r := errorRouter(func(c *gin.Context) {
		c.Error(errors.ErrRateLimit)
		c.Abort()
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/boom", nil))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestErrorHandler_UnknownErrorIs500(t *testing.T) {
	r := errorRouter(func(c *gin.Context) {
		c.Error(fmt.Errorf("database exploded"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// Internal detail never leaks to the caller
	assert.NotContains(t, w.Body.String(), "database exploded")
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	r := errorRouter(func(c *gin.Context) {
		panic("unexpected")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
