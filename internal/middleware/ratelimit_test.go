package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/job-board-api/internal/config"
)

func TestRateKeyStrategies(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("X-Real-Ip", "10.0.0.9")
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/api/users")
	c.Set(principalKey, Principal{SubjectID: "u1"})

	cfg := config.RateLimitConfig{Prefix: "rl"}

	cfg.KeyStrategy = "ip"
	assert.Equal(t, "rl:ip:10.0.0.9", rateKey(cfg, c))

	cfg.KeyStrategy = "user"
	assert.Equal(t, "rl:user:u1", rateKey(cfg, c))

	cfg.KeyStrategy = "user_route"
	assert.Equal(t, "rl:user:u1:route:GET /api/users", rateKey(cfg, c))

	cfg.KeyStrategy = "ip_user_route"
	assert.Equal(t, "rl:ip:10.0.0.9:user:u1:route:GET /api/users", rateKey(cfg, c))
}

func TestRateKeyAnonymous(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("X-Real-Ip", "10.0.0.9")
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/api/users")

	cfg := config.RateLimitConfig{Prefix: "rl", KeyStrategy: "user"}
	assert.Equal(t, "rl:user:anon", rateKey(cfg, c))
}

func TestNewTokenBucketNilClientIsPassThrough(t *testing.T) {
	mw := NewTokenBucket(config.RateLimitConfig{Enabled: true}, nil)

	e := echo.New()
	e.GET("/x", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, mw)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}

func TestAsInt64(t *testing.T) {
	assert.Equal(t, int64(3), asInt64(int64(3)))
	assert.Equal(t, int64(3), asInt64(3))
	assert.Equal(t, int64(3), asInt64(3.7))
	assert.Equal(t, int64(3), asInt64("3"))
	assert.Equal(t, int64(0), asInt64("not a number"))
	assert.Equal(t, int64(0), asInt64(nil))
}
