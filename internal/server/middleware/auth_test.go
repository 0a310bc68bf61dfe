package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/cardkeeper/internal/server/handlers"
	"github.com/iudanet/cardkeeper/pkg/api"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

func testJWTConfig() handlers.JWTConfig {
	return handlers.JWTConfig{
		Secret:         []byte("test-secret-key"),
		AccessTokenTTL: 15 * time.Minute,
	}
}

// subjectHandler проверяет имя владельца токена в контексте
func subjectHandler(t *testing.T, expected string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subject, ok := handlers.GetSubject(r.Context())
		require.True(t, ok, "subject should be in context")
		assert.Equal(t, expected, subject)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}

func mustNotCall(t *testing.T) http.HandlerFunc {
	return func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not be called")
	}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	var resp api.Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.False(t, resp.Success)
	return resp.Error
}

func TestAuthMiddleware_Success(t *testing.T) {
	cfg := testJWTConfig()

	token, _, err := handlers.GenerateAccessToken(cfg, "alice")
	require.NoError(t, err)

	wrapped := AuthMiddleware(setupTestLogger(), cfg)(subjectHandler(t, "alice"))

	req := httptest.NewRequest(http.MethodPost, "/api/business-cards", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	wrapped.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	cfg := testJWTConfig()

	expired, _, err := handlers.GenerateAccessToken(handlers.JWTConfig{
		Secret:         cfg.Secret,
		AccessTokenTTL: -time.Minute,
	}, "alice")
	require.NoError(t, err)

	otherSecret, _, err := handlers.GenerateAccessToken(handlers.JWTConfig{
		Secret:         []byte("secret-key-2"),
		AccessTokenTTL: time.Minute,
	}, "alice")
	require.NoError(t, err)

	tests := []struct {
		name      string
		header    string
		wantError string
	}{
		{"missing header", "", "unauthorized: missing token"},
		{"no bearer prefix", "token123", "unauthorized: invalid token format"},
		{"wrong scheme", "Basic token123", "unauthorized: invalid token format"},
		{"only bearer", "Bearer ", "unauthorized: invalid token format"},
		{"malformed token", "Bearer invalid.token.here", "unauthorized: invalid token"},
		{"expired token", "Bearer " + expired, "unauthorized: invalid token"},
		{"wrong secret", "Bearer " + otherSecret, "unauthorized: invalid token"},
	}

	wrapped := AuthMiddleware(setupTestLogger(), cfg)(mustNotCall(t))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/business-cards", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			wrapped.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, tt.wantError, decodeError(t, w))
		})
	}
}
