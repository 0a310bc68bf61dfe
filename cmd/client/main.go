package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/iudanet/cardkeeper/internal/client/api"
	"github.com/iudanet/cardkeeper/internal/client/auth"
	"github.com/iudanet/cardkeeper/internal/client/cli"
	"github.com/iudanet/cardkeeper/internal/client/iocli"
	"github.com/iudanet/cardkeeper/internal/client/storage"
	"github.com/iudanet/cardkeeper/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const (
	defaultServerURL = "http://localhost:8080"
	envServerURL     = "CARDKEEPER_SERVER"
	defaultDBName    = ".cardkeeper.db"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "", "Server URL (default "+defaultServerURL+")")
	dbPath := flag.String("db", defaultDBPath(), "Path to local session database")
	flag.Usage = func() { cli.PrintUsage(os.Stderr) }

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage(os.Stderr)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *dbPath, *serverURL, args[0], args[1:]); err != nil {
		stop()
		if errors.Is(err, cli.ErrUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
			cli.PrintUsage(os.Stderr)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, dbPath, serverFlag, command string, args []string) error {
	boltStorage, err := boltdb.New(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			slog.Error("failed to close database", slog.Any("error", err))
		}
	}()

	serverURL, err := resolveServerURL(ctx, boltStorage, serverFlag, os.Getenv(envServerURL))
	if err != nil {
		return err
	}

	apiClient := api.NewClient(serverURL)
	authService := auth.NewAuthService(apiClient, boltStorage)

	return cli.New(iocli.NewStdio(), apiClient, authService).Run(ctx, command, args)
}

// resolveServerURL: флаг, затем переменная окружения, затем сохраненное значение.
// Адрес из флага запоминается для следующих запусков
func resolveServerURL(ctx context.Context, settings storage.SettingsStorage, flagValue, envValue string) (string, error) {
	if flagValue = strings.TrimSpace(flagValue); flagValue != "" {
		if err := settings.SaveSetting(ctx, storage.SettingServerURL, flagValue); err != nil {
			return "", fmt.Errorf("failed to save server url: %w", err)
		}
		return flagValue, nil
	}

	if envValue = strings.TrimSpace(envValue); envValue != "" {
		return envValue, nil
	}

	saved, err := settings.GetSetting(ctx, storage.SettingServerURL)
	if err != nil {
		return "", fmt.Errorf("failed to read server url: %w", err)
	}
	if saved != "" {
		return saved, nil
	}

	return defaultServerURL, nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultDBName
	}
	return filepath.Join(home, defaultDBName)
}

func printVersion() {
	fmt.Printf("cardkeeper client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
