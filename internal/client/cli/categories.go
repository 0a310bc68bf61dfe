package cli

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"text/tabwriter"

	client "github.com/iudanet/cardkeeper/internal/client/api"
	"github.com/iudanet/cardkeeper/internal/models"
	"github.com/iudanet/cardkeeper/internal/validation"
	"github.com/iudanet/cardkeeper/pkg/api"
)

func (c *Cli) runCategories(ctx context.Context) error {
	categories, err := c.api.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}

	if len(categories) == 0 {
		c.io.Println("No categories found.")
		return nil
	}

	tw := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tNAME\tCOLOR\tCARDS\tDESCRIPTION")
	for _, cat := range categories {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n", cat.ID, cat.Name, cat.Color, cat.CardCount, cat.Description)
	}
	return tw.Flush()
}

func (c *Cli) runCategoryAdd(ctx context.Context, args []string) error {
	fs := c.newFlagSet("category-add")
	name := fs.String("name", "", "Category name")
	color := fs.String("color", "", "Color #RRGGBB (default "+models.DefaultCategoryColor+")")
	description := fs.String("description", "", "Description")
	if _, err := parseArgs(fs, args); err != nil {
		return err
	}

	if *name == "" {
		var err error
		if *name, err = c.io.ReadInput("Name: "); err != nil {
			return fmt.Errorf("failed to read name: %w", err)
		}
	}

	category := &models.Category{
		Name:        strings.TrimSpace(*name),
		Color:       strings.TrimSpace(*color),
		Description: strings.TrimSpace(*description),
	}
	if err := validation.ValidateCategory(category); err != nil {
		return err
	}

	if err := c.authorize(ctx); err != nil {
		return err
	}

	req := api.CategoryRequest{Name: &category.Name}
	if category.Color != "" {
		req.Color = &category.Color
	}
	if category.Description != "" {
		req.Description = &category.Description
	}

	created, err := c.api.CreateCategory(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	c.io.Printf("✓ Category %q created (ID %d, color %s).\n", created.Name, created.ID, created.Color)
	return nil
}

func (c *Cli) runCategoryDelete(ctx context.Context, args []string) error {
	fs := c.newFlagSet("category-delete")
	yes := fs.Bool("yes", false, "Delete without confirmation")
	positional, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w: cardkeeper category-delete <id> [--yes]", ErrUsage)
	}
	id, err := parseID(positional[0])
	if err != nil {
		return err
	}

	if err := c.authorize(ctx); err != nil {
		return err
	}

	if !*yes {
		ok, err := c.confirm(fmt.Sprintf("Delete category %d? (yes/no): ", id))
		if err != nil {
			return err
		}
		if !ok {
			c.io.Println("Deletion cancelled.")
			return nil
		}
	}

	if err := c.api.DeleteCategory(ctx, id); err != nil {
		switch {
		case client.IsStatus(err, http.StatusConflict):
			return fmt.Errorf("category %d is in use by business cards", id)
		case client.IsStatus(err, http.StatusNotFound):
			return fmt.Errorf("category %d not found", id)
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}

	c.io.Printf("✓ Category %d deleted.\n", id)
	return nil
}
