package sqlite

import (
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/iudanet/cardkeeper/internal/models"
	"github.com/iudanet/cardkeeper/internal/server/storage"
)

// SaveImage stores an image record; inline data is kept base64-encoded
func (s *Storage) SaveImage(ctx context.Context, image *models.Image) error {
	if image.UploadedAt.IsZero() {
		image.UploadedAt = unixToTime(s.now().Unix())
	}

	var data sql.NullString
	if image.Storage == models.ImageStorageInline {
		data = sql.NullString{String: base64.StdEncoding.EncodeToString(image.Data), Valid: true}
	}

	query := `
		INSERT INTO images (filename, content_type, size, original_name, storage, etag, data, card_id, uploaded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(filename) DO UPDATE SET
			content_type = excluded.content_type,
			size = excluded.size,
			original_name = excluded.original_name,
			storage = excluded.storage,
			etag = excluded.etag,
			data = excluded.data,
			card_id = excluded.card_id,
			uploaded_at = excluded.uploaded_at
	`

	_, err := s.db.ExecContext(ctx, query,
		image.Filename,
		image.ContentType,
		image.Size,
		image.OriginalName,
		string(image.Storage),
		image.ETag,
		data,
		nullInt64(image.CardID),
		image.UploadedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}

	return nil
}

// GetImage retrieves image record by filename
func (s *Storage) GetImage(ctx context.Context, filename string) (*models.Image, error) {
	query := `
		SELECT filename, content_type, size, original_name, storage, etag, data, card_id, uploaded_at
		FROM images
		WHERE filename = ?
	`

	image := &models.Image{}
	var storageKind string
	var data sql.NullString
	var cardID sql.NullInt64
	var uploadedAt int64

	err := s.db.QueryRowContext(ctx, query, filename).Scan(
		&image.Filename,
		&image.ContentType,
		&image.Size,
		&image.OriginalName,
		&storageKind,
		&image.ETag,
		&data,
		&cardID,
		&uploadedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrImageNotFound
		}
		return nil, fmt.Errorf("failed to get image: %w", err)
	}

	image.Storage = models.ImageStorage(storageKind)
	image.CardID = int64Ptr(cardID)
	image.UploadedAt = unixToTime(uploadedAt)

	if data.Valid {
		decoded, err := base64.StdEncoding.DecodeString(data.String)
		if err != nil {
			return nil, fmt.Errorf("failed to decode inline image: %w", err)
		}
		image.Data = decoded
	}

	return image, nil
}

// DeleteImage deletes image record by filename
func (s *Storage) DeleteImage(ctx context.Context, filename string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM images WHERE filename = ?`, filename)
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrImageNotFound
	}

	return nil
}

// ListImages returns up to limit most recent image records without data
func (s *Storage) ListImages(ctx context.Context, limit int) ([]*models.Image, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `
		SELECT filename, content_type, size, original_name, storage, etag, card_id, uploaded_at
		FROM images
		ORDER BY uploaded_at DESC, filename DESC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query images: %w", err)
	}
	defer func() { _ = rows.Close() }()

	images := make([]*models.Image, 0)
	for rows.Next() {
		image := &models.Image{}
		var storageKind string
		var cardID sql.NullInt64
		var uploadedAt int64

		if err := rows.Scan(
			&image.Filename,
			&image.ContentType,
			&image.Size,
			&image.OriginalName,
			&storageKind,
			&image.ETag,
			&cardID,
			&uploadedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan image: %w", err)
		}

		image.Storage = models.ImageStorage(storageKind)
		image.CardID = int64Ptr(cardID)
		image.UploadedAt = unixToTime(uploadedAt)
		images = append(images, image)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return images, nil
}
