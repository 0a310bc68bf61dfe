package config

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "cardkeeper.db", cfg.DBPath)
	assert.Equal(t, "uploads", cfg.UploadsDir)
	assert.False(t, cfg.InlineImages)
	assert.True(t, cfg.OCREnabled)
	assert.Equal(t, []string{"jpn", "eng"}, cfg.OCRLanguages)
	assert.Empty(t, cfg.OCRWhitelist)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, LogFormatText, cfg.LogFormat)
	assert.Equal(t, 30, cfg.RateLimit)
	assert.Equal(t, time.Minute, cfg.RateWindow)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.False(t, cfg.AuthEnabled())
	assert.False(t, cfg.Seed)
	assert.False(t, cfg.ShowVersion)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("CARDKEEPER_ADDR", "127.0.0.1:9000")
	t.Setenv("CARDKEEPER_DB", "/tmp/cards.db")
	t.Setenv("CARDKEEPER_INLINE_IMAGES", "true")
	t.Setenv("CARDKEEPER_OCR", "off")
	t.Setenv("CARDKEEPER_OCR_WHITELIST", "0123456789-+")
	t.Setenv("CARDKEEPER_LOG_LEVEL", "debug")
	t.Setenv("CARDKEEPER_LOG_FORMAT", "json")
	t.Setenv("CARDKEEPER_RATE_LIMIT", "5")
	t.Setenv("CARDKEEPER_JWT_SECRET", "secret")
	t.Setenv("CARDKEEPER_API_KEY_HASH", "$2a$10$hash")

	cfg, err := Load(nil, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, "/tmp/cards.db", cfg.DBPath)
	assert.True(t, cfg.InlineImages)
	assert.False(t, cfg.OCREnabled)
	assert.Equal(t, "0123456789-+", cfg.OCRWhitelist)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, LogFormatJSON, cfg.LogFormat)
	assert.Equal(t, 5, cfg.RateLimit)
	assert.True(t, cfg.AuthEnabled())
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("CARDKEEPER_ADDR", ":9000")
	t.Setenv("CARDKEEPER_OCR", "on")

	cfg, err := Load([]string{"-addr", ":7000", "-ocr=off", "-ocr-langs", "eng", "-seed", "-version"}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Addr)
	assert.False(t, cfg.OCREnabled)
	assert.Equal(t, []string{"eng"}, cfg.OCRLanguages)
	assert.True(t, cfg.Seed)
	assert.True(t, cfg.ShowVersion)
}

func TestLoad_InvalidEnvFallsBack(t *testing.T) {
	t.Setenv("CARDKEEPER_RATE_LIMIT", "many")
	t.Setenv("CARDKEEPER_TOKEN_TTL", "forever")

	cfg, err := Load(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.RateLimit)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		errMsg string
	}{
		{
			name:   "invalid log level",
			args:   []string{"-log-level", "loud"},
			errMsg: "invalid log level",
		},
		{
			name:   "unknown log format",
			args:   []string{"-log-format", "xml"},
			errMsg: "unknown log format",
		},
		{
			name:   "secret without api key hash",
			args:   []string{"-jwt-secret", "s"},
			errMsg: "api key hash is required",
		},
		{
			name:   "negative rate limit",
			args:   []string{"-rate-limit", "-1"},
			errMsg: "rate limit must not be negative",
		},
		{
			name:   "zero rate window",
			args:   []string{"-rate-window", "0s", "-rate-limit", "0"},
			errMsg: "rate window must be positive",
		},
		{
			name:   "negative rate window",
			args:   []string{"-rate-window", "-1m"},
			errMsg: "rate window must be positive",
		},
		{
			name:   "no languages",
			args:   []string{"-ocr-langs", "+"},
			errMsg: "at least one OCR language",
		},
		{
			name:   "empty uploads dir",
			args:   []string{"-uploads", ""},
			errMsg: "uploads directory is required",
		},
		{
			name:   "unknown flag",
			args:   []string{"-nope"},
			errMsg: "flag provided but not defined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args, io.Discard)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoad_RateWindowFromEnv(t *testing.T) {
	t.Setenv("CARDKEEPER_RATE_WINDOW", "0s")

	_, err := Load(nil, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate window must be positive")
}

func TestLoad_InlineWithoutUploadsDir(t *testing.T) {
	cfg, err := Load([]string{"-inline-images", "-uploads", ""}, io.Discard)
	require.NoError(t, err)
	assert.True(t, cfg.InlineImages)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")))

	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("CARDKEEPER_DOTENV_TEST=from-file\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("CARDKEEPER_DOTENV_TEST") })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv("CARDKEEPER_DOTENV_TEST"))
	assert.Equal(t, "from-file", envString("DOTENV_TEST", "fallback"))
}

func TestParseLanguages(t *testing.T) {
	assert.Equal(t, []string{"jpn", "eng"}, ParseLanguages("jpn+eng"))
	assert.Equal(t, []string{"jpn", "eng"}, ParseLanguages("jpn, eng"))
	assert.Empty(t, ParseLanguages(""))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	cfg := &Config{LogFormat: LogFormatJSON, LogLevel: slog.LevelWarn}
	logger := cfg.NewLogger(&buf)

	logger.Info("hidden")
	logger.Warn("shown", slog.Int("n", 1))

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"n":1`)
}
