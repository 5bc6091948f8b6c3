package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/job-board-api/internal/config"
)

func newTestContext(method, target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/api/users/:id")
	return c
}

func TestCacheKeyStrategies(t *testing.T) {
	cfg := config.CacheConfig{Prefix: "cache"}
	get := newTestContext(http.MethodGet, "/api/users/u1?page=2")

	keys := map[string]string{}
	for _, strategy := range []string{"route", "method_route", "method_route_query", "route_query"} {
		cfg.KeyStrategy = strategy
		keys[strategy] = cacheKey(cfg, get)
	}

	// Every strategy hashes a different request shape.
	seen := map[string]bool{}
	for strategy, k := range keys {
		assert.Contains(t, k, "cache:", "strategy %s", strategy)
		assert.False(t, seen[k], "strategy %s collided", strategy)
		seen[k] = true
	}
}

func TestCacheKeyStableAcrossCalls(t *testing.T) {
	cfg := config.CacheConfig{Prefix: "cache", KeyStrategy: "route_query"}
	a := cacheKey(cfg, newTestContext(http.MethodGet, "/api/users/u1?page=2"))
	b := cacheKey(cfg, newTestContext(http.MethodGet, "/api/users/u9?page=2"))
	// Keyed on the route pattern, not the concrete path parameter.
	assert.Equal(t, a, b)
}

func TestNewRedisCacheNilClientIsPassThrough(t *testing.T) {
	mw := NewRedisCache(config.CacheConfig{Enabled: true}, nil)

	e := echo.New()
	e.GET("/x", func(c echo.Context) error {
		return c.String(http.StatusOK, "fresh")
	}, mw)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fresh", rec.Body.String())
	assert.Empty(t, rec.Header().Get("X-Cache"))
}

func TestResponseRecorderTruncatesAtLimit(t *testing.T) {
	rec := httptest.NewRecorder()
	rr := &responseRecorder{ResponseWriter: rec, status: http.StatusOK, limit: 4}

	n, err := rr.Write([]byte("abcdef"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, "abcd", rr.buf.String())
	assert.Equal(t, int64(6), rr.size)
	// The client still got the whole body.
	assert.Equal(t, "abcdef", rec.Body.String())
}
