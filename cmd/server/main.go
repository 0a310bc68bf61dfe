package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/cardkeeper/internal/config"
	"github.com/iudanet/cardkeeper/internal/ocr/tesseract"
	"github.com/iudanet/cardkeeper/internal/scan"
	"github.com/iudanet/cardkeeper/internal/server"
	"github.com/iudanet/cardkeeper/internal/server/blob"
	"github.com/iudanet/cardkeeper/internal/server/handlers"
	"github.com/iudanet/cardkeeper/internal/server/images"
	"github.com/iudanet/cardkeeper/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg, err := config.Load(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if cfg.ShowVersion {
		printVersion()
		os.Exit(0)
	}

	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped with error", slog.Any("error", err))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	store, err := sqlite.New(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close storage", slog.Any("error", err))
		}
	}()

	if cfg.Seed {
		seeded, err := store.Seed(ctx)
		if err != nil {
			return err
		}
		logger.Info("sample data", slog.Bool("inserted", seeded))
	}

	// Без каталога загрузок изображения хранятся в базе
	var blobs blob.Store
	if !cfg.InlineImages {
		fileStore, err := blob.NewFileStore(cfg.UploadsDir)
		if err != nil {
			return fmt.Errorf("failed to open uploads directory: %w", err)
		}
		blobs = fileStore
	}

	imageService := images.NewService(store, store, blobs, logger)
	if registered, err := imageService.Reconcile(ctx); err != nil {
		logger.Warn("image reconcile failed", slog.Any("error", err))
	} else if registered > 0 {
		logger.Info("registered stored images without records", slog.Int("count", registered))
	}

	opts := server.Options{
		Logger:     logger,
		DB:         store,
		Cards:      store,
		Categories: store,
		Images:     imageService,
		Version:    Version,
		APIKeyHash: cfg.APIKeyHash,
		RateLimit:  cfg.RateLimit,
		RateWindow: cfg.RateWindow,
	}

	if cfg.OCREnabled {
		engine := tesseract.New(cfg.OCRLanguages...)
		opts.Scanner = scan.NewPipeline(engine, logger,
			scan.WithLanguages(cfg.OCRLanguages...),
			scan.WithWhitelist(cfg.OCRWhitelist),
		)
		opts.OCREngine = engine.Name()
	}

	if cfg.AuthEnabled() {
		opts.JWT = &handlers.JWTConfig{
			Secret:         []byte(cfg.JWTSecret),
			AccessTokenTTL: cfg.TokenTTL,
		}
	} else {
		logger.Warn("authentication disabled: all routes are public")
	}

	logger.Info("starting cardkeeper server",
		slog.String("version", Version),
		slog.String("addr", cfg.Addr),
		slog.String("db", cfg.DBPath),
		slog.Bool("inline_images", cfg.InlineImages),
		slog.Any("ocr_langs", cfg.OCRLanguages),
		slog.Bool("ocr", cfg.OCREnabled))

	return server.New(opts).Run(ctx, cfg.Addr, cfg.ShutdownTimeout)
}

func printVersion() {
	fmt.Printf("cardkeeper server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
