package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"mirrortime/internal/config"
	"mirrortime/internal/llm"
	"mirrortime/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// chatStub is a canned ChatClient for handler tests.
type chatStub struct {
	reply string
	err   error
}

func (c *chatStub) ChatCompletion(_ context.Context, _ []llm.Message) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	return c.reply, nil
}

// newTestApp builds a Fiber app wired to an in-memory store.
func newTestApp(chat llm.ChatClient) (*fiber.App, *repository.MemoryStore) {
	store := repository.NewMemoryStore()
	s := NewServerWithDeps(
		&config.Config{Port: "0", JWTSecret: "test_secret"},
		store.Users(), store.History(), nil, chat,
	)

	app := fiber.New()
	s.SetupRoutes(app)
	return app, store
}

// doJSON performs a JSON request against the app and decodes the response body.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any, out any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	if out != nil {
		defer resp.Body.Close()
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		if len(raw) > 0 {
			require.NoError(t, json.Unmarshal(raw, out), "body: %s", raw)
		}
	}
	return resp
}
