package storage

import (
	"context"
	"time"
)

//go:generate moq -out session_mock.go . SessionStorage

// SessionStorage хранит сессию клиента между запусками
type SessionStorage interface {
	// SaveSession заменяет текущую сессию
	SaveSession(ctx context.Context, session *Session) error

	// GetSession возвращает ErrSessionNotFound, если вход не выполнялся
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession удаляет сессию (logout)
	DeleteSession(ctx context.Context) error
}

// Session access token, полученный командой login
type Session struct {
	ServerURL   string `json:"server_url"`
	Name        string `json:"name"` // Name попадает в registered_by карточек
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"` // unix seconds
}

// Expired сообщает, истек ли токен к моменту now
func (s *Session) Expired(now time.Time) bool {
	return s.ExpiresAt > 0 && !now.Before(time.Unix(s.ExpiresAt, 0))
}
