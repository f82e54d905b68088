//go:build unit

package middleware_test

import (
	"net/http"
	"strings"
	"testing"

	"venue-boxoffice/internal/handler/middleware"
	"venue-boxoffice/internal/pkg/config"
	"venue-boxoffice/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := middleware.NewLogger(config.NewTestConfig().Log)
	r := gin.New()
	r.Use(logger.Recovery(), logger.LoggingMiddleware(), logger.ErrorHandler())
	r.GET("/groups/:id", middleware.RequireGroupID(), func(c *gin.Context) {
		id, ok := middleware.GetGroupID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": id.String(), "request_id": middleware.GetRequestID(c)})
	})
	r.GET("/panic", func(*gin.Context) { panic("boom") })
	return r
}

func TestRequireGroupID(t *testing.T) {
	r := newRouter(t)

	t.Run("valid id is stored on the context", func(t *testing.T) {
		id := uuid.New()
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/groups/"+id.String(), nil)

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, id.String(), body["id"])
	})

	t.Run("malformed id is rejected", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/groups/123", nil)
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid id")
	})
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	r := newRouter(t)
	path := "/groups/" + uuid.NewString()

	t.Run("incoming id is echoed", func(t *testing.T) {
		rec := httptest.PerformRequestWithHeaders(t, r, http.MethodGet, path, nil, map[string]string{"X-Request-ID": "req-42"})

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))
		assert.Equal(t, "req-42", body["request_id"])
	})

	t.Run("missing or oversized id is replaced", func(t *testing.T) {
		for _, incoming := range []string{"", strings.Repeat("x", 65)} {
			rec := httptest.PerformRequestWithHeaders(t, r, http.MethodGet, path, nil, map[string]string{"X-Request-ID": incoming})

			got := rec.Header().Get("X-Request-ID")
			assert.NotEmpty(t, got)
			assert.NotEqual(t, incoming, got)
		}
	})
}

func TestRecovery(t *testing.T) {
	r := newRouter(t)

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/panic", nil)
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}
