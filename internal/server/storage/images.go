package storage

import (
	"context"

	"github.com/iudanet/cardkeeper/internal/models"
)

//go:generate moq -out images_mock.go . ImageStorage

// ImageStorage defines interface for image records.
// Records for object-stored images carry metadata only; inline images also carry Data.
type ImageStorage interface {
	// SaveImage stores an image record, replacing a record with the same filename
	SaveImage(ctx context.Context, image *models.Image) error

	// GetImage retrieves image record by filename (with Data for inline images)
	// Returns ErrImageNotFound if image doesn't exist
	GetImage(ctx context.Context, filename string) (*models.Image, error)

	// DeleteImage deletes image record by filename
	// Returns ErrImageNotFound if image doesn't exist
	DeleteImage(ctx context.Context, filename string) error

	// ListImages returns up to limit most recent image records without Data
	ListImages(ctx context.Context, limit int) ([]*models.Image, error)
}
