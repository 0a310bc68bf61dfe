package storage

import (
	"context"

	"github.com/iudanet/cardkeeper/internal/models"
)

//go:generate moq -out categories_mock.go . CategoryStorage

// CategoryStorage defines interface for category persistence
type CategoryStorage interface {
	// CreateCategory creates a new category
	// Returns ErrCategoryExists if name is already taken
	CreateCategory(ctx context.Context, category *models.Category) error

	// GetCategory retrieves category by ID with its card count
	// Returns ErrCategoryNotFound if category doesn't exist
	GetCategory(ctx context.Context, id int64) (*models.Category, error)

	// UpdateCategory updates name, color and description
	// Returns ErrCategoryNotFound or ErrCategoryExists
	UpdateCategory(ctx context.Context, category *models.Category) error

	// DeleteCategory deletes category by ID
	// Returns ErrCategoryInUse if any card references it, ErrCategoryNotFound if it doesn't exist
	DeleteCategory(ctx context.Context, id int64) error

	// ListCategories returns all categories ordered by name
	ListCategories(ctx context.Context) ([]*models.Category, error)
}
