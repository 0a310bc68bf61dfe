package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	client "github.com/iudanet/cardkeeper/internal/client/api"
	"github.com/iudanet/cardkeeper/internal/models"
)

func (c *Cli) runList(ctx context.Context, args []string) error {
	var q client.CardQuery

	fs := c.newFlagSet("list")
	fs.StringVar(&q.Query, "q", "", "Search name, company, email and kana")
	fs.StringVar(&q.Category, "category", "", "Category name")
	fs.Int64Var(&q.CategoryID, "category-id", 0, "Category ID")
	fs.IntVar(&q.Page, "page", 1, "Page number")
	fs.IntVar(&q.Limit, "limit", 0, "Cards per page (server default 20, max 100)")
	if _, err := parseArgs(fs, args); err != nil {
		return err
	}

	if err := c.authorize(ctx); err != nil {
		return err
	}

	cards, page, err := c.api.ListCards(ctx, q)
	if err != nil {
		return fmt.Errorf("failed to list cards: %w", err)
	}

	if len(cards) == 0 {
		c.io.Println("No cards found.")
		return nil
	}

	tw := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tNAME\tCOMPANY\tPOSITION\tEMAIL\tPHONE\tCATEGORIES")
	for _, card := range cards {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			card.ID, card.Name, card.Company, card.Position, card.Email, card.Phone,
			categoryNames(card.Categories))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if page != nil {
		c.io.Println()
		c.io.Printf("Page %d of %d (%d cards)\n", page.Page, max(page.TotalPages, 1), page.Total)
	}

	return nil
}

func categoryNames(categories []models.Category) string {
	names := make([]string, 0, len(categories))
	for _, cat := range categories {
		names = append(names, cat.Name)
	}
	return strings.Join(names, ", ")
}
