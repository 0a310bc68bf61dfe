// Package config собирает настройки сервера из флагов, переменных окружения
// и файла .env. Приоритет: флаг, затем окружение, затем значение по умолчанию.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// EnvPrefix префикс всех переменных окружения сервера
const EnvPrefix = "CARDKEEPER_"

// Форматы логов
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config настройки сервера
type Config struct {
	Addr            string
	DBPath          string
	UploadsDir      string
	JWTSecret       string
	APIKeyHash      string
	LogFormat       string
	OCRWhitelist    string
	OCRLanguages    []string
	TokenTTL        time.Duration
	ShutdownTimeout time.Duration
	RateWindow      time.Duration
	RateLimit       int
	LogLevel        slog.Level
	InlineImages    bool
	OCREnabled      bool
	Seed            bool
	ShowVersion     bool
}

// LoadDotEnv загружает переменные из файла .env, если он существует.
// Уже заданные переменные окружения не перезаписываются
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Load разбирает args (без имени программы) с fallback на переменные окружения
func Load(args []string, output io.Writer) (*Config, error) {
	cfg := &Config{}

	fsFlags := flag.NewFlagSet("cardkeeper-server", flag.ContinueOnError)
	fsFlags.SetOutput(output)

	var (
		logLevel  string
		languages string
	)

	fsFlags.StringVar(&cfg.Addr, "addr", envString("ADDR", ":8080"), "HTTP listen address")
	fsFlags.StringVar(&cfg.DBPath, "db", envString("DB", "cardkeeper.db"), "SQLite database path")
	fsFlags.StringVar(&cfg.UploadsDir, "uploads", envString("UPLOADS", "uploads"), "Directory for uploaded images")
	cfg.InlineImages = envBool("INLINE_IMAGES", false)
	fsFlags.Var(switchValue{&cfg.InlineImages}, "inline-images",
		"Store image bytes in the database instead of the uploads directory")
	fsFlags.StringVar(&cfg.JWTSecret, "jwt-secret", envString("JWT_SECRET", ""),
		"Secret for signing access tokens; empty disables authentication")
	fsFlags.StringVar(&cfg.APIKeyHash, "api-key-hash", envString("API_KEY_HASH", ""),
		"bcrypt hash of the API key exchanged for tokens")
	fsFlags.DurationVar(&cfg.TokenTTL, "token-ttl", envDuration("TOKEN_TTL", 24*time.Hour), "Access token lifetime")
	cfg.OCREnabled = envBool("OCR", true)
	fsFlags.Var(switchValue{&cfg.OCREnabled}, "ocr", "Enable Tesseract OCR for /api/scan (on/off)")
	fsFlags.StringVar(&languages, "ocr-langs", envString("OCR_LANGS", "jpn+eng"), "Tesseract languages joined with +")
	fsFlags.StringVar(&cfg.OCRWhitelist, "ocr-whitelist", envString("OCR_WHITELIST", ""),
		"Characters Tesseract may recognize; empty allows all")
	fsFlags.StringVar(&logLevel, "log-level", envString("LOG_LEVEL", "info"), "Log level: debug, info, warn, error")
	fsFlags.StringVar(&cfg.LogFormat, "log-format", envString("LOG_FORMAT", LogFormatText), "Log format: text or json")
	fsFlags.IntVar(&cfg.RateLimit, "rate-limit", envInt("RATE_LIMIT", 30),
		"Scan and upload requests per IP per window; 0 disables the limit")
	fsFlags.DurationVar(&cfg.RateWindow, "rate-window", envDuration("RATE_WINDOW", time.Minute), "Rate limit window")
	fsFlags.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", envDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		"Graceful shutdown timeout")
	cfg.Seed = envBool("SEED", false)
	fsFlags.Var(switchValue{&cfg.Seed}, "seed", "Insert sample data into an empty database")
	fsFlags.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")

	if err := fsFlags.Parse(args); err != nil {
		return nil, err
	}

	level, err := ParseLevel(logLevel)
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level
	cfg.OCRLanguages = ParseLanguages(languages)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New("listen address is required")
	}
	if c.DBPath == "" {
		return errors.New("database path is required")
	}
	if !c.InlineImages && c.UploadsDir == "" {
		return errors.New("uploads directory is required unless images are stored inline")
	}
	if c.LogFormat != LogFormatText && c.LogFormat != LogFormatJSON {
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if c.RateLimit < 0 {
		return errors.New("rate limit must not be negative")
	}
	if c.RateWindow <= 0 {
		return errors.New("rate window must be positive")
	}
	if c.JWTSecret != "" && c.APIKeyHash == "" {
		return errors.New("api key hash is required when authentication is enabled")
	}
	if c.OCREnabled && len(c.OCRLanguages) == 0 {
		return errors.New("at least one OCR language is required")
	}
	return nil
}

// AuthEnabled сообщает, требуется ли токен для изменяющих запросов
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

// NewLogger создает slog логгер согласно LogLevel и LogFormat
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// ParseLevel разбирает уровень логирования
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// ParseLanguages разбирает список языков вида "jpn+eng" или "jpn,eng"
func ParseLanguages(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == '+' || r == ',' || r == ' ' })
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(EnvPrefix + key); ok && v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(EnvPrefix + key)
	if !ok {
		return fallback
	}
	b, err := parseSwitch(v)
	if err != nil {
		return fallback
	}
	return b
}

// parseSwitch понимает on/off и yes/no в дополнение к strconv.ParseBool
func parseSwitch(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "off", "no":
		return false, nil
	case "on", "yes":
		return true, nil
	}
	return strconv.ParseBool(strings.TrimSpace(v))
}

// switchValue булев флаг, принимающий -ocr=off
type switchValue struct {
	p *bool
}

func (s switchValue) String() string {
	if s.p == nil {
		return "false"
	}
	return strconv.FormatBool(*s.p)
}

func (s switchValue) Set(v string) error {
	b, err := parseSwitch(v)
	if err != nil {
		return err
	}
	*s.p = b
	return nil
}

func (s switchValue) IsBoolFlag() bool { return true }

func envInt(key string, fallback int) int {
	v, ok := os.LookupEnv(EnvPrefix + key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(EnvPrefix + key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return d
}
