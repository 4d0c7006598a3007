package middleware

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCtxHandlerAddsRequestAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(&ctxHandler{slog.NewTextHandler(&buf, nil)})

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-abc")
	ctx = context.WithValue(ctx, UserIDKey, int64(42))
	logger.InfoContext(ctx, "something happened")

	out := buf.String()
	assert.Contains(t, out, "request_id=req-abc")
	assert.Contains(t, out, "user_id=42")
}

func TestCtxHandlerWithoutContextValues(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(&ctxHandler{slog.NewTextHandler(&buf, nil)})

	logger.InfoContext(context.Background(), "something happened")

	out := buf.String()
	assert.NotContains(t, out, "request_id")
	assert.NotContains(t, out, "user_id")
}

// The request ID set by the requestid middleware must be visible in the
// user context handlers hand down to services.
func TestContextMiddlewarePropagatesRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(requestid.New())
	app.Use(ContextMiddleware())
	app.Get("/test", func(c *fiber.Ctx) error {
		rid, _ := c.UserContext().Value(RequestIDKey).(string)
		return c.SendString(rid)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/test", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NotEmpty(t, body)
	assert.Equal(t, resp.Header.Get(fiber.HeaderXRequestID), string(body))
}
