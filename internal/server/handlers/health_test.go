package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/cardkeeper/pkg/api"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func decodeHealth(t *testing.T, w *httptest.ResponseRecorder) (api.Response, api.HealthResponse) {
	t.Helper()

	var health api.HealthResponse
	resp := api.Response{Data: &health}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp, health
}

func TestHealthHandler_Health(t *testing.T) {
	handler := NewHealthHandler(setupTestLogger(), pingerFunc(func(context.Context) error { return nil }),
		"1.2.3", "tesseract", true)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()

	handler.Health(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	resp, health := decodeHealth(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "1.2.3", health.Version)
	assert.Equal(t, "ok", health.Database)
	assert.Equal(t, "tesseract", health.OCR)
	assert.True(t, health.Auth)
}

func TestHealthHandler_Health_DatabaseDown(t *testing.T) {
	handler := NewHealthHandler(setupTestLogger(),
		pingerFunc(func(context.Context) error { return errors.New("disk I/O error") }), "dev", "", false)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()

	handler.Health(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	resp, health := decodeHealth(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "database unavailable", resp.Error)
	assert.Equal(t, "degraded", health.Status)
	assert.Equal(t, "disabled", health.OCR)
}
