package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "userapi/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeRequestID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "plain", in: "abc-123", want: "abc-123"},
		{name: "max length", in: strings.Repeat("a", maxRequestIDLength), want: strings.Repeat("a", maxRequestIDLength)},
		{name: "too long", in: strings.Repeat("a", maxRequestIDLength+1), want: ""},
		{name: "space", in: "abc 123", want: ""},
		{name: "newline", in: "abc\n123", want: ""},
		{name: "non ascii", in: "réq", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeRequestID(tt.in))
		})
	}
}

func runRequestID(t *testing.T, header string) (*httptest.ResponseRecorder, string, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var fromEcho, fromCtx string
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := m.Process(func(c echo.Context) error {
		fromEcho = deliverycontext.GetRequestID(c)
		fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		assert.NotNil(t, deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil))

		return nil
	})(c)
	require.NoError(t, err)

	return rec, fromEcho, fromCtx
}

func TestRequestIDMiddleware_PropagatesClientID(t *testing.T) {
	rec, fromEcho, fromCtx := runRequestID(t, "client-id")

	assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "client-id", fromEcho)
	assert.Equal(t, "client-id", fromCtx)
}

func TestRequestIDMiddleware_GeneratesWhenMissingOrUnsafe(t *testing.T) {
	for _, header := range []string{"", "bad id"} {
		rec, fromEcho, fromCtx := runRequestID(t, header)

		id := rec.Header().Get(deliverycontext.HeaderXRequestID)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, fromEcho)
		assert.Equal(t, id, fromCtx)
	}
}
