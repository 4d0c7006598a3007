package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	app, _ := newTestApp(&chatStub{reply: "A gentle nudge from the universe."})

	var body map[string]string
	resp := doJSON(t, app, http.MethodPost, "/api/analyze", map[string]string{
		"time":    "11:11",
		"message": "I keep seeing this everywhere",
	}, &body)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "A gentle nudge from the universe.", body["analysis"])
}

func TestAnalyzeMissingTime(t *testing.T) {
	app, _ := newTestApp(&chatStub{reply: "unused"})

	var errBody map[string]any
	resp := doJSON(t, app, http.MethodPost, "/api/analyze", map[string]string{
		"message": "hello",
	}, &errBody)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", errBody["code"])
}

func TestAnalyzeInvalidTime(t *testing.T) {
	app, _ := newTestApp(&chatStub{reply: "unused"})

	resp := doJSON(t, app, http.MethodPost, "/api/analyze", map[string]string{
		"time": "25:99",
	}, nil)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAnalyzeUpstreamFailure(t *testing.T) {
	app, _ := newTestApp(&chatStub{err: errors.New("connection refused")})

	resp := doJSON(t, app, http.MethodPost, "/api/analyze", map[string]string{
		"time": "22:22",
	}, nil)

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestAnalyzeNotConfigured(t *testing.T) {
	app, _ := newTestApp(nil)

	resp := doJSON(t, app, http.MethodPost, "/api/analyze", map[string]string{
		"time": "22:22",
	}, nil)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
