package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/iudanet/cardkeeper/internal/cardparse"
	"github.com/iudanet/cardkeeper/internal/models"
	"github.com/iudanet/cardkeeper/internal/validation"
	"github.com/iudanet/cardkeeper/pkg/api"
)

// clearValue ввод, очищающий подставленное значение
const clearValue = "-"

var fieldLabels = map[cardparse.Field]string{
	cardparse.FieldName:       "Name",
	cardparse.FieldNameKana:   "Name (kana)",
	cardparse.FieldCompany:    "Company",
	cardparse.FieldDepartment: "Department",
	cardparse.FieldPosition:   "Position",
	cardparse.FieldEmail:      "Email",
	cardparse.FieldPhone:      "Phone",
	cardparse.FieldMobile:     "Mobile",
	cardparse.FieldFax:        "Fax",
	cardparse.FieldPostalCode: "Postal code",
	cardparse.FieldAddress:    "Address",
	cardparse.FieldWebsite:    "Website",
}

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	fs := c.newFlagSet("add")
	scanPath := fs.String("scan", "", "Prefill fields from a business card photo; the photo is attached to the card")
	imagePath := fs.String("image", "", "Attach this image instead of the scanned photo")
	categoryID := fs.Int64("category-id", 0, "Primary category ID")
	if _, err := parseArgs(fs, args); err != nil {
		return err
	}

	if err := c.authorize(ctx); err != nil {
		return err
	}

	c.io.Println("=== Add Business Card ===")

	var prefill cardparse.Fields
	if *scanPath != "" {
		report, err := c.scan(ctx, *scanPath)
		if err != nil {
			return err
		}
		c.printReport(report)
		prefill = report.Fields
		if *imagePath == "" {
			*imagePath = *scanPath
		}
	}

	c.io.Println()
	if *scanPath != "" {
		c.io.Printf("Press Enter to keep a suggested value, '%s' to clear it.\n", clearValue)
	}

	card := &models.Card{}
	for _, field := range cardparse.AllFields {
		value, err := c.readField(fieldLabels[field], prefill.Get(field))
		if err != nil {
			return err
		}
		*cardField(card, field) = value
	}

	notes, err := c.io.ReadInput("Notes (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read notes: %w", err)
	}
	card.Notes = notes

	if *categoryID == 0 {
		if *categoryID, err = c.readCategory(ctx); err != nil {
			return err
		}
	}
	if *categoryID > 0 {
		card.CategoryID = categoryID
	}

	validation.NormalizeCard(card)
	if err := validation.ValidateCard(card); err != nil {
		return err
	}

	created, err := c.api.CreateCard(ctx, api.CardRequestFrom(card))
	if err != nil {
		return fmt.Errorf("failed to create card: %w", err)
	}

	c.io.Println()
	c.io.Printf("✓ Card %d created: %s (%s)\n", created.ID, created.Name, created.Company)

	if *imagePath != "" {
		resp, err := c.uploadImage(ctx, created.ID, *imagePath)
		if err != nil {
			return fmt.Errorf("card %d created without image: %w", created.ID, err)
		}
		c.io.Printf("✓ Image attached: %s\n", c.imageURL(resp.ImageURL))
	}

	return nil
}

// readField запрашивает значение поля с подсказкой
func (c *Cli) readField(label, suggested string) (string, error) {
	prompt := label + ": "
	if suggested != "" {
		prompt = fmt.Sprintf("%s [%s]: ", label, suggested)
	}

	value, err := c.io.ReadInput(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
	}

	switch value {
	case "":
		return suggested, nil
	case clearValue:
		return "", nil
	}
	return value, nil
}

// readCategory показывает категории и запрашивает ID; 0 без категории
func (c *Cli) readCategory(ctx context.Context) (int64, error) {
	categories, err := c.api.ListCategories(ctx)
	if err != nil || len(categories) == 0 {
		return 0, nil
	}

	c.io.Println("Categories:")
	for _, cat := range categories {
		c.io.Printf("  %d  %s\n", cat.ID, cat.Name)
	}

	for {
		input, err := c.io.ReadInput("Category ID (empty for none): ")
		if err != nil {
			return 0, fmt.Errorf("failed to read category: %w", err)
		}
		if input == "" {
			return 0, nil
		}

		id, err := strconv.ParseInt(input, 10, 64)
		if err == nil {
			for _, cat := range categories {
				if cat.ID == id {
					return id, nil
				}
			}
		}
		c.io.Printf("Unknown category %q\n", input)
	}
}

func cardField(card *models.Card, field cardparse.Field) *string {
	switch field {
	case cardparse.FieldName:
		return &card.Name
	case cardparse.FieldNameKana:
		return &card.NameKana
	case cardparse.FieldCompany:
		return &card.Company
	case cardparse.FieldDepartment:
		return &card.Department
	case cardparse.FieldPosition:
		return &card.Position
	case cardparse.FieldEmail:
		return &card.Email
	case cardparse.FieldPhone:
		return &card.Phone
	case cardparse.FieldMobile:
		return &card.Mobile
	case cardparse.FieldFax:
		return &card.Fax
	case cardparse.FieldPostalCode:
		return &card.PostalCode
	case cardparse.FieldAddress:
		return &card.Address
	case cardparse.FieldWebsite:
		return &card.Website
	}
	return new(string)
}
