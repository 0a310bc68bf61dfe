package cli

import (
	"context"
	"fmt"
	"net/http"

	client "github.com/iudanet/cardkeeper/internal/client/api"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	fs := c.newFlagSet("delete")
	yes := fs.Bool("yes", false, "Delete without confirmation")
	positional, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w: cardkeeper delete <id> [--yes]", ErrUsage)
	}
	id, err := parseID(positional[0])
	if err != nil {
		return err
	}

	if err := c.authorize(ctx); err != nil {
		return err
	}

	card, err := c.api.GetCard(ctx, id)
	if err != nil {
		if client.IsStatus(err, http.StatusNotFound) {
			return fmt.Errorf("card %d not found", id)
		}
		return fmt.Errorf("failed to get card: %w", err)
	}

	if !*yes {
		c.io.Println("About to delete:")
		c.io.Printf("  Name:    %s\n", card.Name)
		c.io.Printf("  Company: %s\n", card.Company)
		c.io.Println()

		ok, err := c.confirm("Are you sure you want to delete this card? (yes/no): ")
		if err != nil {
			return err
		}
		if !ok {
			c.io.Println("Deletion cancelled.")
			return nil
		}
	}

	if err := c.api.DeleteCard(ctx, id); err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}

	c.io.Printf("✓ Card %d deleted.\n", id)
	return nil
}
