package auth

import (
	"context"

	"github.com/iudanet/cardkeeper/internal/client/storage"
)

//go:generate moq -out service_mock.go . Service

// Service управляет сессией клиента: обмен API ключа на токен и его хранение
type Service interface {
	// Login обменивает API ключ на access token и сохраняет сессию
	Login(ctx context.Context, name, apiKey string) (*storage.Session, error)

	// Logout удаляет локальную сессию
	Logout(ctx context.Context) error

	// Session возвращает сохраненную сессию или storage.ErrSessionNotFound
	Session(ctx context.Context) (*storage.Session, error)

	// Token возвращает действующий access token текущего сервера.
	// ErrNotAuthenticated если входа не было, ErrSessionExpired если токен истек
	Token(ctx context.Context) (string, error)
}
