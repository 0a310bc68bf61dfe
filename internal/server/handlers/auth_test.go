package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/cardkeeper/pkg/api"
)

const testAPIKey = "correct horse battery staple"

func testJWTConfig() JWTConfig {
	return JWTConfig{
		Secret:         []byte("test-secret-key-for-cards"),
		AccessTokenTTL: time.Hour,
	}
}

func newTestAuthHandler(t *testing.T) *AuthHandler {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testAPIKey), bcrypt.MinCost)
	require.NoError(t, err)
	return NewAuthHandler(setupTestLogger(), string(hash), testJWTConfig())
}

func TestAuthHandler_Token(t *testing.T) {
	handler := newTestAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/token",
		jsonBody(t, api.TokenRequest{Name: " alice ", APIKey: testAPIKey}))
	w := httptest.NewRecorder()

	handler.Token(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var token api.TokenResponse
	resp := decodeResponse(t, w, &token)
	assert.True(t, resp.Success)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, int64(3600), token.ExpiresIn)

	claims, err := ValidateAccessToken(testJWTConfig(), token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Name)
	assert.Equal(t, "alice", claims.Subject)
}

func TestAuthHandler_Token_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{"wrong key", `{"name":"alice","api_key":"wrong"}`, http.StatusUnauthorized},
		{"missing key", `{"name":"alice"}`, http.StatusBadRequest},
		{"missing name", `{"api_key":"` + testAPIKey + `"}`, http.StatusBadRequest},
		{"long name", `{"name":"` + strings.Repeat("a", maxTokenNameLen+1) + `","api_key":"x"}`, http.StatusBadRequest},
		{"malformed", `{`, http.StatusBadRequest},
	}

	handler := newTestAuthHandler(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/token", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.Token(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			resp := decodeResponse(t, w, nil)
			assert.False(t, resp.Success)
			assert.NotContains(t, w.Body.String(), "access_token")
		})
	}
}

func TestValidateAccessToken(t *testing.T) {
	cfg := testJWTConfig()

	valid, _, err := GenerateAccessToken(cfg, "alice")
	require.NoError(t, err)

	expired, _, err := GenerateAccessToken(JWTConfig{Secret: cfg.Secret, AccessTokenTTL: -time.Minute}, "alice")
	require.NoError(t, err)

	otherSecret, _, err := GenerateAccessToken(JWTConfig{Secret: []byte("other"), AccessTokenTTL: time.Hour}, "alice")
	require.NoError(t, err)

	foreignIssuer, err := jwt.NewWithClaims(jwt.SigningMethodHS256, CustomClaims{
		Name: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(cfg.Secret)
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, CustomClaims{
		Name: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(cfg.Secret)
	require.NoError(t, err)

	noName, err := jwt.NewWithClaims(jwt.SigningMethodHS256, CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(cfg.Secret)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{"valid", valid, false},
		{"expired", expired, true},
		{"wrong secret", otherSecret, true},
		{"foreign issuer", foreignIssuer, true},
		{"no name", noName, true},
		{"other hmac method", hs512, true},
		{"garbage", "not.a.token", true},
		{"unsigned", unsignedToken(t), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ValidateAccessToken(cfg, tt.token)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "alice", claims.Name)
		})
	}
}

func unsignedToken(t *testing.T) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, CustomClaims{
		Name:             "alice",
		RegisteredClaims: jwt.RegisteredClaims{Issuer: tokenIssuer},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	return token
}
