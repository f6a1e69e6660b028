package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"userapi/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newLoggedEcho(t *testing.T, debug bool, skip ...string) (*echo.Echo, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewLoggerMiddleware(logger, cfg, skip...).Handle)
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/v1/users/:id", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "missing")
	})

	return e, &buf
}

func serve(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	return rec
}

func TestLoggerMiddleware_LogsFinalStatus(t *testing.T) {
	e, buf := newLoggedEcho(t, true)

	rec := serve(e, "/v1/users/7")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	out := buf.String()
	assert.Contains(t, out, `"msg":"HTTP Request"`)
	assert.Contains(t, out, `"level":"WARN"`)
	assert.Contains(t, out, `"status":404`)
	assert.Contains(t, out, `"route":"/v1/users/:id"`)
	assert.Contains(t, out, `"user_id":"7"`)
}

func TestLoggerMiddleware_Disabled(t *testing.T) {
	e, buf := newLoggedEcho(t, false)

	assert.Equal(t, http.StatusNotFound, serve(e, "/v1/users/7").Code)
	assert.Zero(t, buf.Len())
}

func TestLoggerMiddleware_SkipPaths(t *testing.T) {
	e, buf := newLoggedEcho(t, true, "/health")

	assert.Equal(t, http.StatusOK, serve(e, "/health").Code)
	assert.Zero(t, buf.Len())
}
