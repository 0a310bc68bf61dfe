package storage

import "context"

//go:generate moq -out settings_mock.go . SettingsStorage

// Ключи настроек
const (
	SettingServerURL = "server_url"
)

// SettingsStorage хранит настройки клиента
type SettingsStorage interface {
	SaveSetting(ctx context.Context, key, value string) error

	// GetSetting возвращает пустую строку, если настройка не задана
	GetSetting(ctx context.Context, key string) (string, error)
}
