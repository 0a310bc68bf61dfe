package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/cardkeeper/pkg/api"
)

// maxTokenNameLen ограничение на имя, которое попадает в registered_by
const maxTokenNameLen = 100

// AuthHandler выдает access token в обмен на API ключ
type AuthHandler struct {
	apiKeyHash []byte
	jwtConfig  JWTConfig
	responder
}

// NewAuthHandler создает новый handler авторизации.
// apiKeyHash это bcrypt хеш API ключа
func NewAuthHandler(logger *slog.Logger, apiKeyHash string, jwtConfig JWTConfig) *AuthHandler {
	return &AuthHandler{
		responder:  responder{logger: logger},
		apiKeyHash: []byte(apiKeyHash),
		jwtConfig:  jwtConfig,
	}
}

// Token обрабатывает POST /api/auth/token
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.TokenRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode token request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		h.sendError(w, "name is required", http.StatusBadRequest)
		return
	}
	if utf8.RuneCountInString(name) > maxTokenNameLen {
		h.sendError(w, "name is too long", http.StatusBadRequest)
		return
	}
	if req.APIKey == "" {
		h.sendError(w, "api_key is required", http.StatusBadRequest)
		return
	}

	if err := bcrypt.CompareHashAndPassword(h.apiKeyHash, []byte(req.APIKey)); err != nil {
		h.logger.WarnContext(ctx, "token request rejected", slog.String("name", name))
		h.sendError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	accessToken, expiresIn, err := GenerateAccessToken(h.jwtConfig, name)
	if err != nil {
		h.sendInternalError(w, r, "failed to generate access token", err)
		return
	}

	h.logger.InfoContext(ctx, "access token issued", slog.String("name", name))

	h.sendData(w, api.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, http.StatusOK)
}
