package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/bagdasarian/project-tracker/internal/config"
	"github.com/bagdasarian/project-tracker/internal/handler"
)

func newTestRouter(t *testing.T) http.Handler {
	reg := prometheus.NewRegistry()
	limiter := handler.NewMemoryRateLimiter()
	t.Cleanup(limiter.Close)

	h := handler.NewHandler(nil, nil, nil, nil, nil, nil, zap.NewNop())
	return NewRouter(h, Deps{
		Metrics:        handler.NewMetrics(reg),
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		Limiter:        limiter,
		RateLimit:      config.RateLimitConfig{Limit: 5, Window: time.Minute},
		Logger:         zap.NewNop(),
	})
}

func TestRouter_PublicRoutes(t *testing.T) {
	router := newTestRouter(t)

	t.Run("health без авторизации", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("Content-Type"))
	})

	t.Run("метрики без авторизации", func(t *testing.T) {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "project_tracker_api_http_requests_total")
	})
}

func TestRouter_ProtectedRoutes(t *testing.T) {
	router := newTestRouter(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/users/me"},
		{http.MethodGet, "/api/users"},
		{http.MethodPut, "/api/users/u1/role"},
		{http.MethodGet, "/api/projects"},
		{http.MethodPost, "/api/projects"},
		{http.MethodGet, "/api/projects/p1"},
		{http.MethodDelete, "/api/projects/p1"},
		{http.MethodPost, "/api/projects/p1/members"},
		{http.MethodGet, "/api/projects/p1/stats"},
		{http.MethodGet, "/api/projects/p1/tasks"},
		{http.MethodPut, "/api/projects/p1/tasks/t1"},
		{http.MethodPost, "/api/ai/generate-description"},
		{http.MethodPost, "/api/ai/generate-weekly-report"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(route.method, route.path, nil))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/teams", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
