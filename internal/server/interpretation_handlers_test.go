package server

import (
	"net/http"
	"testing"

	"mirrortime/internal/interpretation"
	"mirrortime/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetInterpretation(t *testing.T) {
	app, _ := newTestApp(nil)

	var body interpretation.Interpretation
	resp := doJSON(t, app, http.MethodGet, "/api/interpretations/11%3A11", nil, &body)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, models.TypeMirrorHour, body.Type)
	assert.NotEmpty(t, body.Spiritual.Title)
	assert.NotEmpty(t, body.Angel.Name)
}

func TestGetInterpretationFrench(t *testing.T) {
	app, _ := newTestApp(nil)

	var body interpretation.Interpretation
	resp := doJSON(t, app, http.MethodGet, "/api/interpretations/22%3A22?lang=fr", nil, &body)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, models.TypeMirrorHour, body.Type)
	assert.NotEmpty(t, body.Spiritual.Title)
}

func TestGetInterpretationFallback(t *testing.T) {
	app, _ := newTestApp(nil)

	// Not in the curated set; the generic template still answers.
	var body interpretation.Interpretation
	resp := doJSON(t, app, http.MethodGet, "/api/interpretations/09%3A17", nil, &body)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body.Spiritual.Description, "09:17")
	assert.Contains(t, body.Numerology.RootNumber, "8")
}

func TestGetInterpretationInvalidTime(t *testing.T) {
	app, _ := newTestApp(nil)

	var errBody map[string]any
	resp := doJSON(t, app, http.MethodGet, "/api/interpretations/99%3A99", nil, &errBody)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", errBody["code"])
}

func TestHealthEndpoints(t *testing.T) {
	app, _ := newTestApp(nil)

	var body map[string]any
	resp := doJSON(t, app, http.MethodGet, "/health/live", nil, &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "up", body["status"])

	body = nil
	resp = doJSON(t, app, http.MethodGet, "/health/ready", nil, &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", body["status"])
}
