package cli

import (
	"context"
	"fmt"
	"net/http"
	"time"

	client "github.com/iudanet/cardkeeper/internal/client/api"
)

func (c *Cli) runGet(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: cardkeeper get <id>", ErrUsage)
	}
	id, err := parseID(args[0])
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

	c.io.Println("=== Business Card ===")
	c.io.Println()
	for _, row := range []struct {
		label string
		value string
	}{
		{"ID", fmt.Sprint(card.ID)},
		{"Name", card.Name},
		{"Name (kana)", card.NameKana},
		{"Company", card.Company},
		{"Department", card.Department},
		{"Position", card.Position},
		{"Email", card.Email},
		{"Phone", card.Phone},
		{"Mobile", card.Mobile},
		{"Fax", card.Fax},
		{"Postal code", card.PostalCode},
		{"Address", card.Address},
		{"Website", card.Website},
		{"Categories", categoryNames(card.Categories)},
		{"Image", c.imageURL(card.ImageURL)},
		{"Notes", card.Notes},
		{"Registered by", card.RegisteredBy},
	} {
		if row.value != "" {
			c.io.Printf("%-14s %s\n", row.label+":", row.value)
		}
	}
	if !card.CreatedAt.IsZero() {
		c.io.Printf("%-14s %s\n", "Created:", card.CreatedAt.Local().Format(time.DateTime))
	}
	if !card.UpdatedAt.IsZero() {
		c.io.Printf("%-14s %s\n", "Updated:", card.UpdatedAt.Local().Format(time.DateTime))
	}

	return nil
}
