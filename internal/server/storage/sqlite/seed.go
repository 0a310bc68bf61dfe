package sqlite

import (
	"context"
	"fmt"

	"github.com/iudanet/cardkeeper/internal/models"
)

// Seed inserts sample categories and cards into an empty database.
// Returns false when the database already holds cards.
func (s *Storage) Seed(ctx context.Context) (bool, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM business_cards`).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count cards: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	categories := []*models.Category{
		{Name: "取引先", Color: "#10B981", Description: "Clients"},
		{Name: "協力会社", Color: "#F59E0B", Description: "Partners"},
		{Name: "社内", Color: models.DefaultCategoryColor},
	}
	for _, category := range categories {
		if err := s.CreateCategory(ctx, category); err != nil {
			return false, fmt.Errorf("failed to seed category %q: %w", category.Name, err)
		}
	}

	cards := []*models.Card{
		{
			Name:       "山田 太郎",
			NameKana:   "やまだ たろう",
			Company:    "株式会社サンプル",
			Department: "営業部",
			Position:   "部長",
			Email:      "yamada@sample.co.jp",
			Phone:      "03-1234-5678",
			PostalCode: "100-0001",
			Address:    "東京都千代田区千代田1-1",
			CategoryID: &categories[0].ID,
		},
		{
			Name:       "John Smith",
			Company:    "Example Corporation",
			Department: "Engineering Department",
			Position:   "CTO",
			Email:      "john.smith@example.com",
			Phone:      "+1 415-555-0100",
			Website:    "https://example.com",
			CategoryID: &categories[1].ID,
			Categories: []models.Category{{ID: categories[0].ID}},
		},
	}
	for _, card := range cards {
		card.RegisteredBy = "seed"
		if err := s.CreateCard(ctx, card); err != nil {
			return false, fmt.Errorf("failed to seed card %q: %w", card.Name, err)
		}
	}

	return true, nil
}
