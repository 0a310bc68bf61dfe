package images

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/cardkeeper/internal/models"
	"github.com/iudanet/cardkeeper/internal/server/blob"
	"github.com/iudanet/cardkeeper/internal/server/storage"
)

const (
	// MaxUploadSize максимальный размер загружаемого изображения
	MaxUploadSize = 5 << 20

	// DefaultListLimit сколько изображений возвращает List по умолчанию
	DefaultListLimit = 100

	// CacheControl заголовок для отдачи изображений: имена файлов уникальны
	CacheControl = "public, max-age=31536000"

	filenamePrefix = "business-card-"
)

var (
	// ErrTooLarge indicates that the upload exceeds MaxUploadSize
	ErrTooLarge = errors.New("image is too large")

	// ErrUnsupportedType indicates a content type outside the allowed list
	ErrUnsupportedType = errors.New("unsupported image type")

	// ErrEmpty indicates an upload without content
	ErrEmpty = errors.New("image is empty")
)

// extensions maps allowed content types to file extensions
var extensions = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// Upload is an incoming image
type Upload struct {
	Body         io.Reader
	CardID       *int64
	OriginalName string
	ContentType  string
}

// Content is an opened image; the caller must close Body
type Content struct {
	Body  io.ReadCloser
	Image *models.Image
}

// Service stores image bytes in the object store, or inline in the
// relational store when no object store is configured
type Service struct {
	records storage.ImageStorage
	cards   storage.CardStorage
	blobs   blob.Store
	logger  *slog.Logger
	now     func() time.Time
	suffix  func() string
}

// NewService creates a new image service. blobs may be nil.
func NewService(records storage.ImageStorage, cards storage.CardStorage, blobs blob.Store, logger *slog.Logger) *Service {
	return &Service{
		records: records,
		cards:   cards,
		blobs:   blobs,
		logger:  logger,
		now:     time.Now,
		suffix:  randomSuffix,
	}
}

// Inline reports whether image bytes are kept in the relational store
func (s *Service) Inline() bool {
	return s.blobs == nil
}

// Upload validates and stores an image, optionally attaching it to a card
func (s *Service) Upload(ctx context.Context, up Upload) (*models.Image, error) {
	data, err := io.ReadAll(io.LimitReader(up.Body, MaxUploadSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	if len(data) > MaxUploadSize {
		return nil, ErrTooLarge
	}

	contentType, err := ResolveContentType(up.ContentType, data)
	if err != nil {
		return nil, err
	}

	if up.CardID != nil {
		if _, err := s.cards.GetCard(ctx, *up.CardID); err != nil {
			return nil, err
		}
	}

	originalName := ""
	if up.OriginalName != "" {
		originalName = filepath.Base(up.OriginalName)
	}

	image := &models.Image{
		Filename:     s.generateFilename(contentType, originalName),
		ContentType:  contentType,
		OriginalName: originalName,
		Size:         int64(len(data)),
		CardID:       up.CardID,
		UploadedAt:   s.now(),
	}

	if s.blobs != nil {
		meta, err := s.blobs.Put(ctx, image.Filename, bytes.NewReader(data), blob.Metadata{
			ContentType:  contentType,
			OriginalName: image.OriginalName,
			CardID:       up.CardID,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to store image object: %w", err)
		}
		image.Storage = models.ImageStorageObject
		image.ETag = meta.ETag
	} else {
		image.Storage = models.ImageStorageInline
		image.ETag = blob.ETag(data)
		image.Data = data
	}

	if err := s.records.SaveImage(ctx, image); err != nil {
		s.removeObject(ctx, image)
		return nil, fmt.Errorf("failed to save image record: %w", err)
	}

	if up.CardID != nil {
		if err := s.cards.SetCardImage(ctx, *up.CardID, image.Filename); err != nil {
			s.discard(ctx, image)
			return nil, fmt.Errorf("failed to attach image to card: %w", err)
		}
	}

	s.logger.Info("image uploaded",
		slog.String("filename", image.Filename),
		slog.String("storage", string(image.Storage)),
		slog.Int64("size", image.Size),
	)

	image.Data = nil
	return image, nil
}

// Open returns the image bytes
func (s *Service) Open(ctx context.Context, filename string) (*Content, error) {
	image, err := s.records.GetImage(ctx, filename)
	if err != nil {
		return nil, err
	}

	if image.Storage == models.ImageStorageInline {
		body := io.NopCloser(bytes.NewReader(image.Data))
		image.Data = nil
		return &Content{Image: image, Body: body}, nil
	}

	if s.blobs == nil {
		return nil, fmt.Errorf("image %s is in the object store, which is not configured", filename)
	}

	obj, err := s.blobs.Get(ctx, filename)
	if err != nil {
		if errors.Is(err, blob.ErrObjectNotFound) {
			return nil, storage.ErrImageNotFound
		}
		return nil, fmt.Errorf("failed to open image object: %w", err)
	}

	return &Content{Image: image, Body: obj.Body}, nil
}

// Delete removes the image and clears references to it from cards
func (s *Service) Delete(ctx context.Context, filename string) error {
	image, err := s.records.GetImage(ctx, filename)
	if err != nil {
		return err
	}

	if image.Storage == models.ImageStorageObject {
		s.removeObject(ctx, image)
	}

	if err := s.records.DeleteImage(ctx, filename); err != nil {
		return err
	}

	cleared, err := s.cards.ClearImageReferences(ctx, filename)
	if err != nil {
		return fmt.Errorf("failed to clear card references: %w", err)
	}

	s.logger.Info("image deleted",
		slog.String("filename", filename),
		slog.Int64("cards_updated", cleared),
	)

	return nil
}

// List returns the most recent images
func (s *Service) List(ctx context.Context, limit int) ([]*models.Image, error) {
	if limit <= 0 || limit > DefaultListLimit {
		limit = DefaultListLimit
	}
	return s.records.ListImages(ctx, limit)
}

// Reconcile registers objects found in the object store that have no record,
// e.g. after the uploads directory was copied from another instance.
// Returns number of registered images.
func (s *Service) Reconcile(ctx context.Context) (int, error) {
	if s.blobs == nil {
		return 0, nil
	}

	objects, err := s.blobs.List(ctx, 0)
	if err != nil {
		return 0, fmt.Errorf("failed to list objects: %w", err)
	}

	registered := 0
	for _, obj := range objects {
		_, err := s.records.GetImage(ctx, obj.Key)
		if err == nil {
			continue
		}
		if !errors.Is(err, storage.ErrImageNotFound) {
			return registered, err
		}

		image := &models.Image{
			Filename:     obj.Key,
			ContentType:  obj.ContentType,
			OriginalName: obj.OriginalName,
			Storage:      models.ImageStorageObject,
			ETag:         obj.ETag,
			Size:         obj.Size,
			UploadedAt:   obj.ModifiedAt,
		}
		if err := s.records.SaveImage(ctx, image); err != nil {
			return registered, fmt.Errorf("failed to register object %s: %w", obj.Key, err)
		}
		registered++
	}

	if registered > 0 {
		s.logger.Info("registered orphan image objects", slog.Int("count", registered))
	}

	return registered, nil
}

// discard откатывает загрузку: удаляет запись и объект
func (s *Service) discard(ctx context.Context, image *models.Image) {
	if err := s.records.DeleteImage(ctx, image.Filename); err != nil {
		s.logger.Warn("failed to delete image record",
			slog.String("filename", image.Filename),
			slog.Any("error", err),
		)
	}
	s.removeObject(ctx, image)
}

func (s *Service) removeObject(ctx context.Context, image *models.Image) {
	if s.blobs == nil || image.Storage != models.ImageStorageObject {
		return
	}
	if err := s.blobs.Delete(ctx, image.Filename); err != nil && !errors.Is(err, blob.ErrObjectNotFound) {
		s.logger.Warn("failed to delete image object",
			slog.String("filename", image.Filename),
			slog.Any("error", err),
		)
	}
}

// generateFilename builds business-card-<unix millis>-<6 chars>.<ext>
func (s *Service) generateFilename(contentType, originalName string) string {
	ext := extensions[contentType]
	if contentType == "image/jpeg" || contentType == "image/jpg" {
		if strings.EqualFold(filepath.Ext(originalName), ".jpeg") {
			ext = "jpeg"
		}
	}
	return fmt.Sprintf("%s%d-%s.%s", filenamePrefix, s.now().UnixMilli(), s.suffix(), ext)
}

// ResolveContentType returns the allowed content type of an upload.
// Missing or generic declared types are sniffed from the data.
func ResolveContentType(declared string, data []byte) (string, error) {
	contentType := strings.ToLower(strings.TrimSpace(declared))
	if parsed, _, err := mime.ParseMediaType(contentType); err == nil {
		contentType = parsed
	}

	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}

	if _, ok := extensions[contentType]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}

	return contentType, nil
}

// IsImageFilename reports whether name looks like a generated image filename
func IsImageFilename(name string) bool {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return false
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	switch ext {
	case "jpg", "jpeg", "png", "webp":
		return true
	}
	return false
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
}
