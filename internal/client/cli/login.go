package cli

import (
	"context"
	"fmt"
	"os"
	"time"
)

// envAPIKey позволяет выполнить login без интерактивного ввода ключа
const envAPIKey = "CARDKEEPER_API_KEY"

func (c *Cli) runLogin(ctx context.Context, args []string) error {
	fs := c.newFlagSet("login")
	name := fs.String("name", "", "Name recorded as registered_by on new cards")
	if _, err := parseArgs(fs, args); err != nil {
		return err
	}

	c.io.Println("=== Login ===")
	c.io.Printf("Server: %s\n", c.api.BaseURL())
	c.io.Println()

	if *name == "" {
		var err error
		if *name, err = c.io.ReadInput("Name: "); err != nil {
			return fmt.Errorf("failed to read name: %w", err)
		}
	}

	apiKey := os.Getenv(envAPIKey)
	if apiKey == "" {
		var err error
		if apiKey, err = c.io.ReadPassword("API key: "); err != nil {
			return fmt.Errorf("failed to read api key: %w", err)
		}
	}

	session, err := c.auth.Login(ctx, *name, apiKey)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Name: %s\n", session.Name)
	if session.ExpiresAt > 0 {
		c.io.Printf("Token expires: %s\n", time.Unix(session.ExpiresAt, 0).Format(time.RFC3339))
	}

	return nil
}
