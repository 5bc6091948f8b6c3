package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/job-board-api/internal/apperr"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{apperr.BadRequest("x"), http.StatusBadRequest},
		{apperr.Unauthenticated("x"), http.StatusUnauthorized},
		{apperr.Forbidden("x"), http.StatusForbidden},
		{apperr.NotFound("x"), http.StatusNotFound},
		{apperr.Conflict("x"), http.StatusConflict},
		{apperr.Internal(errors.New("boom")), http.StatusInternalServerError},
		{errors.New("untyped"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, httpStatus(tc.err))
	}
}

func TestFailHidesInternalCause(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	err := fail(c, apperr.Internal(errors.New("password hash leaked into logs only")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")
	assert.NotContains(t, rec.Body.String(), "leaked")
}

func TestFailEchoesClientMessage(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	err := fail(c, apperr.Conflict("a user with this email already exists"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "already exists")
}

func TestHealth(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/healthz", nil), rec)

	require.NoError(t, Health(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
