package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/cardkeeper/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()
	c.io.Printf("Server: %s\n", c.api.BaseURL())

	// Недоступный сервер не ошибка команды
	health, err := c.api.Health(ctx)
	if err != nil {
		c.io.Printf("Server status: unavailable (%v)\n", err)
	} else {
		c.io.Printf("Server status: %s (version %s)\n", health.Status, health.Version)
		c.io.Printf("Database: %s\n", health.Database)
		c.io.Printf("OCR: %s\n", health.OCR)
		if health.Auth {
			c.io.Println("Authentication: required for changes")
		} else {
			c.io.Println("Authentication: disabled")
		}
	}
	c.io.Println()

	session, err := c.auth.Session(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			c.io.Println("Session: not logged in")
			c.io.Println("Run 'cardkeeper login' to authenticate.")
			return nil
		}
		return fmt.Errorf("failed to get session: %w", err)
	}

	c.io.Printf("Session: %s\n", session.Name)
	if session.ServerURL != "" && session.ServerURL != c.api.BaseURL() {
		c.io.Printf("⚠️  Session belongs to %s\n", session.ServerURL)
	}
	if session.ExpiresAt == 0 {
		return nil
	}

	expiresAt := time.Unix(session.ExpiresAt, 0)
	c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
	if remaining := time.Until(expiresAt); remaining > 0 {
		c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
	} else {
		c.io.Println("⚠️  Token has expired. Please login again.")
	}

	return nil
}
