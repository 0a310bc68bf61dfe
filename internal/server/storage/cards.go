package storage

import (
	"context"

	"github.com/iudanet/cardkeeper/internal/models"
)

//go:generate moq -out cards_mock.go . CardStorage

// CardStorage defines interface for business card persistence
type CardStorage interface {
	// CreateCard inserts a new card and fills ID, CreatedAt and UpdatedAt.
	// Category links are created for CategoryID and every entry of Categories.
	CreateCard(ctx context.Context, card *models.Card) error

	// GetCard retrieves a card with its categories
	// Returns ErrCardNotFound if card doesn't exist
	GetCard(ctx context.Context, id int64) (*models.Card, error)

	// UpdateCard replaces editable fields of an existing card (last write wins)
	// Returns ErrCardNotFound if card doesn't exist
	UpdateCard(ctx context.Context, card *models.Card) error

	// DeleteCard removes the card and its category links
	// Returns ErrCardNotFound if card doesn't exist
	DeleteCard(ctx context.Context, id int64) error

	// ListCards returns a page of cards matching the filter and the total match count
	ListCards(ctx context.Context, filter models.CardFilter) ([]*models.Card, int64, error)

	// SetCardImage points the card at an uploaded image
	// Returns ErrCardNotFound if card doesn't exist
	SetCardImage(ctx context.Context, cardID int64, filename string) error

	// ClearImageReferences unsets image_filename on every card that references filename
	// Returns number of updated cards
	ClearImageReferences(ctx context.Context, filename string) (int64, error)
}
