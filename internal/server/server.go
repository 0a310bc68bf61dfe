// Package server собирает HTTP API визиток: маршруты, middleware и веб-страницу.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/cardkeeper/internal/server/handlers"
	"github.com/iudanet/cardkeeper/internal/server/middleware"
	"github.com/iudanet/cardkeeper/internal/server/storage"
	"github.com/iudanet/cardkeeper/internal/server/web"
)

// Options зависимости и настройки сервера
type Options struct {
	Logger     *slog.Logger
	DB         handlers.Pinger
	Cards      storage.CardStorage
	Categories storage.CategoryStorage
	Images     handlers.ImageService
	// Scanner nil выключает POST /api/scan
	Scanner handlers.Scanner
	// JWT nil выключает авторизацию: все маршруты публичны
	JWT        *handlers.JWTConfig
	Version    string
	OCREngine  string
	APIKeyHash string
	RateWindow time.Duration
	RateLimit  int
}

// Server HTTP сервер визиток
type Server struct {
	handler http.Handler
	limiter *middleware.RateLimiter
	logger  *slog.Logger
}

// New создает сервер и регистрирует маршруты
func New(opts Options) *Server {
	s := &Server{
		logger:  opts.Logger,
		limiter: middleware.NewRateLimiter(opts.RateLimit, opts.RateWindow, opts.Logger),
	}

	mux := http.NewServeMux()

	health := handlers.NewHealthHandler(opts.Logger, opts.DB, opts.Version, opts.OCREngine, opts.JWT != nil)
	cards := handlers.NewCardHandler(opts.Logger, opts.Cards)
	categories := handlers.NewCategoryHandler(opts.Logger, opts.Categories)
	images := handlers.NewImageHandler(opts.Logger, opts.Images)
	scan := handlers.NewScanHandler(opts.Logger, opts.Scanner)

	// protect закрывает изменяющие маршруты токеном, если авторизация включена
	protect := func(h http.HandlerFunc) http.Handler { return h }
	if opts.JWT != nil {
		auth := middleware.AuthMiddleware(opts.Logger, *opts.JWT)
		protect = func(h http.HandlerFunc) http.Handler { return auth(h) }

		token := handlers.NewAuthHandler(opts.Logger, opts.APIKeyHash, *opts.JWT)
		mux.Handle("POST /api/auth/token", s.limiter.Middleware(http.HandlerFunc(token.Token)))
	}
	limited := func(h http.Handler) http.Handler { return s.limiter.Middleware(h) }

	mux.HandleFunc("GET /api/health", health.Health)

	mux.HandleFunc("GET /api/business-cards", cards.List)
	mux.HandleFunc("GET /api/business-cards/{id}", cards.Get)
	mux.Handle("POST /api/business-cards", protect(cards.Create))
	mux.Handle("PUT /api/business-cards/{id}", protect(cards.Update))
	mux.Handle("DELETE /api/business-cards/{id}", protect(cards.Delete))

	mux.HandleFunc("GET /api/categories", categories.List)
	mux.HandleFunc("GET /api/categories/{id}", categories.Get)
	mux.Handle("POST /api/categories", protect(categories.Create))
	mux.Handle("PUT /api/categories/{id}", protect(categories.Update))
	mux.Handle("DELETE /api/categories/{id}", protect(categories.Delete))

	mux.Handle("POST /api/images/upload", limited(protect(images.Upload)))
	mux.HandleFunc("GET /api/images", images.List)
	mux.HandleFunc("GET /api/images/{filename}", images.Get)
	mux.Handle("DELETE /api/images/{filename}", protect(images.Delete))

	// Распознавание ничего не сохраняет и доступно без токена
	mux.Handle("POST /api/scan", limited(http.HandlerFunc(scan.Scan)))
	mux.HandleFunc("POST /api/scan/parse", scan.Parse)

	web.Register(mux)

	// logging -> recovery: паника попадает в лог запроса как 500
	var h http.Handler = mux
	h = middleware.RecoveryMiddleware(opts.Logger)(h)
	h = middleware.CORSMiddleware(h)
	h = middleware.LoggingWithSkip(opts.Logger, []string{"/api/health", "/static/"})(h)
	s.handler = h

	return s
}

// Handler возвращает корневой http.Handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run слушает addr до отмены ctx, затем корректно завершает соединения
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	defer s.limiter.Stop()

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		// распознавание нескольких кандидатов может занять заметное время
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  60 * time.Second,
		ErrorLog:     slog.NewLogLogger(s.logger.Handler(), slog.LevelWarn),
	}

	errC := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", slog.String("addr", addr))
		errC <- srv.ListenAndServe()
	}()

	select {
	case err := <-errC:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to listen: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}
