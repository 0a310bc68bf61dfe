package cli

import (
	"context"
	"fmt"
	"net/http"

	"github.com/iudanet/cardkeeper/internal/cardparse"
	client "github.com/iudanet/cardkeeper/internal/client/api"
	"github.com/iudanet/cardkeeper/internal/models"
	"github.com/iudanet/cardkeeper/internal/validation"
	"github.com/iudanet/cardkeeper/pkg/api"
)

func (c *Cli) runEdit(ctx context.Context, args []string) error {
	fs := c.newFlagSet("edit")
	categoryID := fs.Int64("category-id", 0, "Set the primary category")
	clearCategory := fs.Bool("clear-category", false, "Remove the primary category")
	positional, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(positional) != 1 || (*categoryID != 0 && *clearCategory) {
		return fmt.Errorf("%w: cardkeeper edit <id> [--category-id N | --clear-category]", ErrUsage)
	}
	id, err := parseID(positional[0])
	if err != nil {
		return err
	}

	if err := c.authorize(ctx); err != nil {
		return err
	}

	current, err := c.api.GetCard(ctx, id)
	if err != nil {
		if client.IsStatus(err, http.StatusNotFound) {
			return fmt.Errorf("card %d not found", id)
		}
		return fmt.Errorf("failed to get card: %w", err)
	}

	c.io.Printf("=== Edit Card %d ===\n", id)
	c.io.Printf("Press Enter to keep the current value, '%s' to clear it.\n", clearValue)

	before := current.Card
	validation.NormalizeCard(&before)
	after := before

	for _, field := range cardparse.AllFields {
		value, err := c.readField(fieldLabels[field], *cardField(&before, field))
		if err != nil {
			return err
		}
		*cardField(&after, field) = value
	}
	if after.Notes, err = c.readField("Notes", before.Notes); err != nil {
		return err
	}

	validation.NormalizeCard(&after)
	if err := validation.ValidateCard(&after); err != nil {
		return err
	}

	req, changed := changedFields(&before, &after)
	switch {
	case *clearCategory && before.CategoryID != nil:
		req.ClearCategory = true
		changed = true
	case *categoryID > 0 && (before.CategoryID == nil || *before.CategoryID != *categoryID):
		req.CategoryID = categoryID
		changed = true
	}

	if !changed {
		c.io.Println("No changes.")
		return nil
	}

	updated, err := c.api.UpdateCard(ctx, id, req)
	if err != nil {
		return fmt.Errorf("failed to update card: %w", err)
	}

	c.io.Println()
	c.io.Printf("✓ Card %d updated: %s (%s)\n", updated.ID, updated.Name, updated.Company)
	return nil
}

// changedFields запрос только с отличающимися полями; пустая строка очищает поле
func changedFields(before, after *models.Card) (*api.CardRequest, bool) {
	req := &api.CardRequest{}
	changed := false

	set := func(dst **string, old, value string) {
		if old == value {
			return
		}
		*dst = &value
		changed = true
	}

	set(&req.Name, before.Name, after.Name)
	set(&req.NameKana, before.NameKana, after.NameKana)
	set(&req.Company, before.Company, after.Company)
	set(&req.Department, before.Department, after.Department)
	set(&req.Position, before.Position, after.Position)
	set(&req.Email, before.Email, after.Email)
	set(&req.Phone, before.Phone, after.Phone)
	set(&req.Mobile, before.Mobile, after.Mobile)
	set(&req.Fax, before.Fax, after.Fax)
	set(&req.PostalCode, before.PostalCode, after.PostalCode)
	set(&req.Address, before.Address, after.Address)
	set(&req.Website, before.Website, after.Website)
	set(&req.Notes, before.Notes, after.Notes)

	return req, changed
}
