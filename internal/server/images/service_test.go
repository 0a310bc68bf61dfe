package images

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/cardkeeper/internal/models"
	"github.com/iudanet/cardkeeper/internal/server/blob"
	"github.com/iudanet/cardkeeper/internal/server/storage"
	"github.com/iudanet/cardkeeper/internal/server/storage/sqlite"
)

var filenamePattern = regexp.MustCompile(`^business-card-\d+-[a-z0-9]{6}\.(jpg|jpeg|png|webp)$`)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

func setupTestService(t *testing.T, withBlobs bool) (*Service, *sqlite.Storage, *blob.FileStore) {
	db, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var blobs blob.Store
	var files *blob.FileStore
	if withBlobs {
		files, err = blob.NewFileStore(filepath.Join(t.TempDir(), "uploads"))
		require.NoError(t, err)
		blobs = files
	}

	return NewService(db, db, blobs, setupTestLogger()), db, files
}

func testPNG(t *testing.T) []byte {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.Black)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestService_Upload(t *testing.T) {
	for _, withBlobs := range []bool{false, true} {
		name := "inline"
		if withBlobs {
			name = "object"
		}

		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			svc, db, _ := setupTestService(t, withBlobs)
			assert.Equal(t, !withBlobs, svc.Inline())

			data := testPNG(t)
			img, err := svc.Upload(ctx, Upload{
				Body:         bytes.NewReader(data),
				OriginalName: "/tmp/photos/card.png",
				ContentType:  "image/png",
			})
			require.NoError(t, err)

			assert.Regexp(t, filenamePattern, img.Filename)
			assert.Equal(t, "card.png", img.OriginalName)
			assert.Equal(t, int64(len(data)), img.Size)
			assert.Equal(t, blob.ETag(data), img.ETag)
			assert.Nil(t, img.Data)
			if withBlobs {
				assert.Equal(t, models.ImageStorageObject, img.Storage)
			} else {
				assert.Equal(t, models.ImageStorageInline, img.Storage)
			}

			content, err := svc.Open(ctx, img.Filename)
			require.NoError(t, err)
			defer content.Body.Close()

			got, err := io.ReadAll(content.Body)
			require.NoError(t, err)
			assert.Equal(t, data, got)
			assert.Equal(t, "image/png", content.Image.ContentType)

			list, err := svc.List(ctx, 0)
			require.NoError(t, err)
			require.Len(t, list, 1)
			assert.Equal(t, img.Filename, list[0].Filename)

			_, total, err := db.ListCards(ctx, models.CardFilter{})
			require.NoError(t, err)
			assert.Zero(t, total)
		})
	}
}

func TestService_Upload_Validation(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupTestService(t, false)

	missingCard := int64(404)

	tests := []struct {
		wantErr error
		upload  Upload
		name    string
	}{
		{
			name:    "empty body",
			upload:  Upload{Body: bytes.NewReader(nil), ContentType: "image/png"},
			wantErr: ErrEmpty,
		},
		{
			name:    "too large",
			upload:  Upload{Body: bytes.NewReader(make([]byte, MaxUploadSize+1)), ContentType: "image/png"},
			wantErr: ErrTooLarge,
		},
		{
			name:    "gif is not allowed",
			upload:  Upload{Body: strings.NewReader("GIF89a...."), ContentType: "image/gif"},
			wantErr: ErrUnsupportedType,
		},
		{
			name:    "text sniffed from octet-stream",
			upload:  Upload{Body: strings.NewReader("hello world"), ContentType: "application/octet-stream"},
			wantErr: ErrUnsupportedType,
		},
		{
			name:    "unknown card",
			upload:  Upload{Body: bytes.NewReader(testPNG(t)), ContentType: "image/png", CardID: &missingCard},
			wantErr: storage.ErrCardNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Upload(ctx, tt.upload)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	list, err := svc.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestService_Upload_ExactLimit(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupTestService(t, false)

	data := make([]byte, MaxUploadSize)
	copy(data, testPNG(t))

	img, err := svc.Upload(ctx, Upload{Body: bytes.NewReader(data), ContentType: "image/png"})
	require.NoError(t, err)
	assert.Equal(t, int64(MaxUploadSize), img.Size)
}

func TestService_Upload_AttachesCard(t *testing.T) {
	ctx := context.Background()
	svc, db, _ := setupTestService(t, true)

	card := &models.Card{Name: "Owner", Company: "Owner Co"}
	require.NoError(t, db.CreateCard(ctx, card))

	img, err := svc.Upload(ctx, Upload{
		Body:         bytes.NewReader(testPNG(t)),
		OriginalName: "photo.JPEG",
		CardID:       &card.ID,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(img.Filename, ".png"), "content type wins over the original extension")

	got, err := db.GetCard(ctx, card.ID)
	require.NoError(t, err)
	assert.Equal(t, img.Filename, got.ImageFilename)
}

func TestService_GenerateFilename(t *testing.T) {
	svc, _, _ := setupTestService(t, false)
	svc.now = func() time.Time { return time.UnixMilli(1_700_000_000_123) }
	svc.suffix = func() string { return "a1b2c3" }

	tests := []struct {
		contentType  string
		originalName string
		want         string
	}{
		{"image/png", "x.png", "business-card-1700000000123-a1b2c3.png"},
		{"image/jpeg", "x.jpg", "business-card-1700000000123-a1b2c3.jpg"},
		{"image/jpeg", "x.JPEG", "business-card-1700000000123-a1b2c3.jpeg"},
		{"image/jpg", "", "business-card-1700000000123-a1b2c3.jpg"},
		{"image/webp", "x.webp", "business-card-1700000000123-a1b2c3.webp"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.generateFilename(tt.contentType, tt.originalName))
		})
	}

	assert.Regexp(t, `^[a-z0-9]{6}$`, randomSuffix())
}

func TestService_Delete(t *testing.T) {
	for _, withBlobs := range []bool{false, true} {
		t.Run(map[bool]string{false: "inline", true: "object"}[withBlobs], func(t *testing.T) {
			ctx := context.Background()
			svc, db, files := setupTestService(t, withBlobs)

			card := &models.Card{Name: "Owner", Company: "Owner Co"}
			require.NoError(t, db.CreateCard(ctx, card))

			img, err := svc.Upload(ctx, Upload{
				Body:        bytes.NewReader(testPNG(t)),
				ContentType: "image/png",
				CardID:      &card.ID,
			})
			require.NoError(t, err)

			require.NoError(t, svc.Delete(ctx, img.Filename))

			_, err = svc.Open(ctx, img.Filename)
			assert.ErrorIs(t, err, storage.ErrImageNotFound)
			assert.ErrorIs(t, svc.Delete(ctx, img.Filename), storage.ErrImageNotFound)

			got, err := db.GetCard(ctx, card.ID)
			require.NoError(t, err)
			assert.Empty(t, got.ImageFilename)

			if files != nil {
				_, err := files.Get(ctx, img.Filename)
				assert.ErrorIs(t, err, blob.ErrObjectNotFound)
			}
		})
	}
}

func TestService_Upload_RecordFailureRemovesObject(t *testing.T) {
	ctx := context.Background()

	files, err := blob.NewFileStore(t.TempDir())
	require.NoError(t, err)

	records := &storage.ImageStorageMock{
		SaveImageFunc: func(ctx context.Context, image *models.Image) error {
			return errors.New("disk full")
		},
	}
	cards := &storage.CardStorageMock{}

	svc := NewService(records, cards, files, setupTestLogger())

	_, err = svc.Upload(ctx, Upload{Body: bytes.NewReader(testPNG(t)), ContentType: "image/png"})
	require.Error(t, err)
	assert.Len(t, records.SaveImageCalls(), 1)

	objects, err := files.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, objects)
}

func TestService_Upload_AttachFailureDiscardsImage(t *testing.T) {
	for _, withBlobs := range []bool{false, true} {
		t.Run(map[bool]string{false: "inline", true: "object"}[withBlobs], func(t *testing.T) {
			ctx := context.Background()
			db, err := sqlite.New(ctx, ":memory:")
			require.NoError(t, err)
			t.Cleanup(func() { _ = db.Close() })

			var blobs blob.Store
			var files *blob.FileStore
			if withBlobs {
				files, err = blob.NewFileStore(t.TempDir())
				require.NoError(t, err)
				blobs = files
			}

			cards := &storage.CardStorageMock{
				GetCardFunc: func(ctx context.Context, id int64) (*models.Card, error) {
					return &models.Card{ID: id, Name: "Owner"}, nil
				},
				SetCardImageFunc: func(ctx context.Context, cardID int64, filename string) error {
					return errors.New("database is locked")
				},
			}
			svc := NewService(db, cards, blobs, setupTestLogger())

			cardID := int64(7)
			_, err = svc.Upload(ctx, Upload{
				Body:        bytes.NewReader(testPNG(t)),
				ContentType: "image/png",
				CardID:      &cardID,
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to attach image to card")
			require.Len(t, cards.SetCardImageCalls(), 1)

			filename := cards.SetCardImageCalls()[0].Filename
			_, err = db.GetImage(ctx, filename)
			assert.ErrorIs(t, err, storage.ErrImageNotFound)

			listed, err := svc.List(ctx, 0)
			require.NoError(t, err)
			assert.Empty(t, listed)

			if files != nil {
				objects, err := files.List(ctx, 0)
				require.NoError(t, err)
				assert.Empty(t, objects)
			}
		})
	}
}

func TestService_Reconcile(t *testing.T) {
	ctx := context.Background()
	svc, _, files := setupTestService(t, true)

	_, err := files.Put(ctx, "business-card-1-aaaaaa.png", bytes.NewReader(testPNG(t)), blob.Metadata{
		ContentType: "image/png",
	})
	require.NoError(t, err)

	_, err = svc.Upload(ctx, Upload{Body: bytes.NewReader(testPNG(t)), ContentType: "image/png"})
	require.NoError(t, err)

	registered, err := svc.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, registered)

	list, err := svc.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	registered, err = svc.Reconcile(ctx)
	require.NoError(t, err)
	assert.Zero(t, registered)

	content, err := svc.Open(ctx, "business-card-1-aaaaaa.png")
	require.NoError(t, err)
	_ = content.Body.Close()
}

func TestResolveContentType(t *testing.T) {
	pngData := testPNG(t)

	tests := []struct {
		name     string
		declared string
		want     string
		data     []byte
		wantErr  bool
	}{
		{name: "declared png", declared: "image/png", data: pngData, want: "image/png"},
		{name: "declared with params", declared: "Image/JPEG; charset=binary", data: pngData, want: "image/jpeg"},
		{name: "legacy jpg alias", declared: "image/jpg", data: pngData, want: "image/jpg"},
		{name: "sniffed when missing", declared: "", data: pngData, want: "image/png"},
		{name: "sniffed when generic", declared: "application/octet-stream", data: pngData, want: "image/png"},
		{name: "rejected pdf", declared: "application/pdf", data: pngData, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveContentType(tt.declared, tt.data)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsImageFilename(t *testing.T) {
	assert.True(t, IsImageFilename("business-card-1-abcdef.png"))
	assert.True(t, IsImageFilename("photo.JPEG"))
	assert.False(t, IsImageFilename(""))
	assert.False(t, IsImageFilename("../etc/passwd"))
	assert.False(t, IsImageFilename(".png"))
	assert.False(t, IsImageFilename("notes.txt"))
}
