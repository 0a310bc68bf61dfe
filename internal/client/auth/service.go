// Package auth хранит access token клиента между запусками.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/cardkeeper/internal/client/storage"
	"github.com/iudanet/cardkeeper/pkg/api"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated, run 'cardkeeper login' first")
	ErrSessionExpired   = errors.New("session expired, run 'cardkeeper login' again")
	// ErrOtherServer сессия получена на другом сервере
	ErrOtherServer = errors.New("session belongs to another server")
)

//go:generate moq -out token_client_mock.go . TokenClient

// TokenClient часть API клиента, нужная для входа
type TokenClient interface {
	BaseURL() string
	Token(ctx context.Context, req api.TokenRequest) (*api.TokenResponse, error)
}

// AuthService реализует Service поверх API клиента и хранилища сессии
type AuthService struct {
	client TokenClient
	store  storage.SessionStorage
	now    func() time.Time
}

var _ Service = (*AuthService)(nil)

// NewAuthService создает новый сервис авторизации
func NewAuthService(client TokenClient, store storage.SessionStorage) *AuthService {
	return &AuthService{
		client: client,
		store:  store,
		now:    time.Now,
	}
}

// Login выполняет обмен API ключа на токен
func (s *AuthService) Login(ctx context.Context, name, apiKey string) (*storage.Session, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("name is required")
	}
	if apiKey == "" {
		return nil, errors.New("api key is required")
	}

	resp, err := s.client.Token(ctx, api.TokenRequest{Name: name, APIKey: apiKey})
	if err != nil {
		return nil, err
	}

	session := &storage.Session{
		ServerURL:   s.client.BaseURL(),
		Name:        name,
		AccessToken: resp.AccessToken,
	}
	if resp.ExpiresIn > 0 {
		session.ExpiresAt = s.now().Add(time.Duration(resp.ExpiresIn) * time.Second).Unix()
	}

	if err := s.store.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return session, nil
}

// Logout удаляет сессию; отсутствие сессии не ошибка
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.store.DeleteSession(ctx); err != nil && !errors.Is(err, storage.ErrSessionNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Session возвращает сохраненную сессию
func (s *AuthService) Session(ctx context.Context) (*storage.Session, error) {
	return s.store.GetSession(ctx)
}

// Token возвращает токен, пригодный для запросов к текущему серверу
func (s *AuthService) Token(ctx context.Context) (string, error) {
	session, err := s.store.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return "", ErrNotAuthenticated
		}
		return "", fmt.Errorf("failed to get session: %w", err)
	}

	if session.ServerURL != "" && session.ServerURL != s.client.BaseURL() {
		return "", fmt.Errorf("%w %s", ErrOtherServer, session.ServerURL)
	}
	if session.Expired(s.now()) {
		return "", ErrSessionExpired
	}

	return session.AccessToken, nil
}
