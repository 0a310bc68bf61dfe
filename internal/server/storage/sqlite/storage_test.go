package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/cardkeeper/internal/models"
)

func TestStorage_Ping(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	assert.NoError(t, s.Ping(context.Background()))
}

func TestStorage_Seed(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	seeded, err := s.Seed(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)

	cards, total, err := s.ListCards(ctx, models.CardFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, cards, 2)

	categories, err := s.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 3)

	// повторный запуск ничего не добавляет
	seeded, err = s.Seed(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)
}

func TestStorage_ForeignKeysEnabled(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.db.ExecContext(ctx, `INSERT INTO card_categories (card_id, category_id) VALUES (1, 1)`)
	assert.Error(t, err)
}
