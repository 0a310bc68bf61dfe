package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/cardkeeper/internal/models"
	"github.com/iudanet/cardkeeper/internal/server/storage"
)

func TestCardStorage_CreateCard(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	categoryID := createTestCategory(t, ctx, s, "取引先")

	tests := []struct {
		card             *models.Card
		name             string
		wantRegisteredBy string
		wantCategories   int
	}{
		{
			name: "minimal card",
			card: &models.Card{
				Name:    "山田 太郎",
				Company: "株式会社サンプル",
			},
			wantRegisteredBy: models.DefaultRegisteredBy,
			wantCategories:   0,
		},
		{
			name: "card with primary category",
			card: &models.Card{
				Name:         "John Smith",
				Company:      "Example Corp",
				Email:        "john@example.com",
				Phone:        "03-1234-5678",
				CategoryID:   &categoryID,
				RegisteredBy: "alice",
			},
			wantRegisteredBy: "alice",
			wantCategories:   1,
		},
		{
			name: "primary category duplicated in link set",
			card: &models.Card{
				Name:       "佐藤 花子",
				Company:    "合同会社テスト",
				CategoryID: &categoryID,
				Categories: []models.Category{{ID: categoryID}},
			},
			wantRegisteredBy: models.DefaultRegisteredBy,
			wantCategories:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.CreateCard(ctx, tt.card)
			require.NoError(t, err)
			assert.NotZero(t, tt.card.ID)
			assert.False(t, tt.card.CreatedAt.IsZero())

			got, err := s.GetCard(ctx, tt.card.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.card.Name, got.Name)
			assert.Equal(t, tt.card.Company, got.Company)
			assert.Equal(t, tt.card.Email, got.Email)
			assert.Equal(t, tt.card.Phone, got.Phone)
			assert.Equal(t, tt.card.CategoryID, got.CategoryID)
			assert.Equal(t, tt.wantRegisteredBy, got.RegisteredBy)
			assert.Len(t, got.Categories, tt.wantCategories)
		})
	}
}

func TestCardStorage_CreateCard_UnknownCategory(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	missing := int64(999)
	card := &models.Card{Name: "Name", Company: "Company", CategoryID: &missing}

	err := s.CreateCard(ctx, card)
	assert.ErrorIs(t, err, storage.ErrCategoryNotFound)

	_, total, err := s.ListCards(ctx, models.CardFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total, "card must not be inserted when category is missing")
}

func TestCardStorage_GetCard_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	card, err := s.GetCard(ctx, 42)
	assert.ErrorIs(t, err, storage.ErrCardNotFound)
	assert.Nil(t, card)
}

func TestCardStorage_UpdateCard(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	first := createTestCategory(t, ctx, s, "first")
	second := createTestCategory(t, ctx, s, "second")

	card := &models.Card{
		Name:       "Before",
		Company:    "Old Inc",
		Notes:      "keep me",
		CategoryID: &first,
	}
	require.NoError(t, s.CreateCard(ctx, card))

	s.now = func() time.Time { return card.CreatedAt.Add(time.Minute) }

	card.Name = "After"
	card.CategoryID = &second
	card.Categories = nil
	require.NoError(t, s.UpdateCard(ctx, card))

	got, err := s.GetCard(ctx, card.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", got.Name)
	assert.Equal(t, "Old Inc", got.Company)
	assert.Equal(t, "keep me", got.Notes)
	require.NotNil(t, got.CategoryID)
	assert.Equal(t, second, *got.CategoryID)
	require.Len(t, got.Categories, 1)
	assert.Equal(t, "second", got.Categories[0].Name)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))
}

func TestCardStorage_UpdateCard_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	err := s.UpdateCard(ctx, &models.Card{ID: 7, Name: "x", Company: "y"})
	assert.ErrorIs(t, err, storage.ErrCardNotFound)
}

func TestCardStorage_DeleteCard(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	categoryID := createTestCategory(t, ctx, s, "partners")
	card := &models.Card{Name: "To Delete", Company: "Gone Ltd", CategoryID: &categoryID}
	require.NoError(t, s.CreateCard(ctx, card))

	require.NoError(t, s.DeleteCard(ctx, card.ID))

	_, err := s.GetCard(ctx, card.ID)
	assert.ErrorIs(t, err, storage.ErrCardNotFound)

	var links int
	err = s.DB().QueryRowContext(ctx, `SELECT COUNT(*) FROM card_categories WHERE card_id = ?`, card.ID).Scan(&links)
	require.NoError(t, err)
	assert.Zero(t, links)

	// категория освобождается после удаления карточки
	assert.NoError(t, s.DeleteCategory(ctx, categoryID))
}

func TestCardStorage_DeleteCard_DetachesImages(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	deleted := &models.Card{Name: "To Delete", Company: "Gone Ltd"}
	require.NoError(t, s.CreateCard(ctx, deleted))
	kept := &models.Card{Name: "Stays", Company: "Here Ltd"}
	require.NoError(t, s.CreateCard(ctx, kept))

	tests := []struct {
		cardID   *int64
		wantCard *int64
		filename string
	}{
		{filename: "business-card-1-aaaaaa.png", cardID: &deleted.ID, wantCard: nil},
		{filename: "business-card-2-bbbbbb.png", cardID: &kept.ID, wantCard: &kept.ID},
		{filename: "business-card-3-cccccc.png", cardID: nil, wantCard: nil},
	}
	for _, tt := range tests {
		require.NoError(t, s.SaveImage(ctx, &models.Image{
			Filename:    tt.filename,
			ContentType: "image/png",
			Storage:     models.ImageStorageObject,
			Size:        10,
			CardID:      tt.cardID,
		}))
	}

	require.NoError(t, s.DeleteCard(ctx, deleted.ID))

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			img, err := s.GetImage(ctx, tt.filename)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCard, img.CardID)
		})
	}
}

func TestCardStorage_DeleteCard_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	err := s.DeleteCard(ctx, 100)
	assert.ErrorIs(t, err, storage.ErrCardNotFound)
}

func TestCardStorage_ListCards(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	clients := createTestCategory(t, ctx, s, "clients")
	vendors := createTestCategory(t, ctx, s, "vendors")

	base := time.Unix(1_700_000_000, 0)
	cards := []*models.Card{
		{Name: "山田 太郎", NameKana: "やまだ たろう", Company: "株式会社サンプル", CategoryID: &clients},
		{Name: "John Smith", Company: "Example Corp", Email: "john@example.com", CategoryID: &vendors},
		{Name: "Jane Doe", Company: "Example Corp", Email: "jane@doe.dev"},
		{Name: "100% Real", Company: "Percent_Co"},
	}
	for i, card := range cards {
		s.now = func() time.Time { return base.Add(time.Duration(i) * time.Second) }
		require.NoError(t, s.CreateCard(ctx, card))
	}

	tests := []struct {
		name      string
		filter    models.CardFilter
		wantNames []string
		wantTotal int64
	}{
		{
			name:      "all newest first",
			filter:    models.CardFilter{},
			wantNames: []string{"100% Real", "Jane Doe", "John Smith", "山田 太郎"},
			wantTotal: 4,
		},
		{
			name:      "query matches company",
			filter:    models.CardFilter{Query: "example"},
			wantNames: []string{"Jane Doe", "John Smith"},
			wantTotal: 2,
		},
		{
			name:      "query matches kana",
			filter:    models.CardFilter{Query: "やまだ"},
			wantNames: []string{"山田 太郎"},
			wantTotal: 1,
		},
		{
			name:      "query matches email",
			filter:    models.CardFilter{Query: "doe.dev"},
			wantNames: []string{"Jane Doe"},
			wantTotal: 1,
		},
		{
			name:      "percent is literal",
			filter:    models.CardFilter{Query: "%"},
			wantNames: []string{"100% Real"},
			wantTotal: 1,
		},
		{
			name:      "underscore is literal",
			filter:    models.CardFilter{Company: "t_C"},
			wantNames: []string{"100% Real"},
			wantTotal: 1,
		},
		{
			name:      "by name",
			filter:    models.CardFilter{Name: "john"},
			wantNames: []string{"John Smith"},
			wantTotal: 1,
		},
		{
			name:      "by category id",
			filter:    models.CardFilter{CategoryID: &clients},
			wantNames: []string{"山田 太郎"},
			wantTotal: 1,
		},
		{
			name:      "by category name",
			filter:    models.CardFilter{CategoryName: "vendors"},
			wantNames: []string{"John Smith"},
			wantTotal: 1,
		},
		{
			name:      "pagination keeps total",
			filter:    models.CardFilter{Limit: 2, Offset: 2},
			wantNames: []string{"John Smith", "山田 太郎"},
			wantTotal: 4,
		},
		{
			name:      "no match",
			filter:    models.CardFilter{Query: "nothing here"},
			wantNames: []string{},
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total, err := s.ListCards(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, total)

			names := make([]string, 0, len(got))
			for _, c := range got {
				names = append(names, c.Name)
				assert.NotNil(t, c.Categories)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestCardStorage_ImageReferences(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	a := &models.Card{Name: "A", Company: "A Co"}
	b := &models.Card{Name: "B", Company: "B Co"}
	require.NoError(t, s.CreateCard(ctx, a))
	require.NoError(t, s.CreateCard(ctx, b))

	const filename = "business-card-1700000000000-abc123.png"
	require.NoError(t, s.SetCardImage(ctx, a.ID, filename))
	require.NoError(t, s.SetCardImage(ctx, b.ID, filename))

	got, err := s.GetCard(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, filename, got.ImageFilename)

	assert.ErrorIs(t, s.SetCardImage(ctx, 999, filename), storage.ErrCardNotFound)

	cleared, err := s.ClearImageReferences(ctx, filename)
	require.NoError(t, err)
	assert.Equal(t, int64(2), cleared)

	got, err = s.GetCard(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, got.ImageFilename)
}

// Helper functions

func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	// Используем in-memory database для тестов
	storage, err := New(ctx, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = storage.Close()
	}

	return storage, cleanup
}

func createTestCategory(t *testing.T, ctx context.Context, s *Storage, name string) int64 {
	category := &models.Category{
		Name:  name,
		Color: models.DefaultCategoryColor,
	}

	err := s.CreateCategory(ctx, category)
	require.NoError(t, err)

	return category.ID
}
