//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"studio-booking/internal/handler/middleware"
	"studio-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogConfig() config.LogConfig {
	return config.LogConfig{
		Level:          "info",
		TimeZone:       "UTC",
		TimeZoneOffset: 0,
		TimeFormat:     "2006-01-02 15:04:05",
	}
}

func TestLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("sets a request id and passes the request through", func(t *testing.T) {
		engine := gin.New()
		engine.Use(middleware.LoggingMiddleware(nil, newLogConfig()))

		var requestID string
		engine.GET("/ping", func(c *gin.Context) {
			requestID = c.GetString("request_id")
			c.Status(http.StatusNoContent)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusNoContent, w.Code)
		assert.NotEmpty(t, requestID)
	})

	t.Run("request ids are unique per request", func(t *testing.T) {
		engine := gin.New()
		engine.Use(middleware.LoggingMiddleware(nil, newLogConfig()))

		seen := make(map[string]struct{})
		engine.GET("/ping", func(c *gin.Context) {
			seen[c.GetString("request_id")] = struct{}{}
			c.Status(http.StatusOK)
		})

		for range 3 {
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
			require.Equal(t, http.StatusOK, w.Code)
		}

		assert.Len(t, seen, 3)
	})
}
