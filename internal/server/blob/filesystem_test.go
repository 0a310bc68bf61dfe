package blob

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *FileStore {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)
	return store
}

func TestFileStore_PutGet(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	content := []byte("fake png bytes")
	cardID := int64(12)

	meta, err := store.Put(ctx, "business-card-1-abcdef.png", bytes.NewReader(content), Metadata{
		ContentType:  "image/png",
		OriginalName: "scan.png",
		CardID:       &cardID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), meta.Size)
	assert.Equal(t, ETag(content), meta.ETag)
	assert.Len(t, meta.ETag, 64)
	assert.False(t, meta.ModifiedAt.IsZero())

	obj, err := store.Get(ctx, "business-card-1-abcdef.png")
	require.NoError(t, err)
	defer obj.Body.Close()

	got, err := io.ReadAll(obj.Body)
	require.NoError(t, err)
	assert.Equal(t, content, got)
	assert.Equal(t, "image/png", obj.ContentType)
	assert.Equal(t, "scan.png", obj.OriginalName)
	require.NotNil(t, obj.CardID)
	assert.Equal(t, cardID, *obj.CardID)

	// временных файлов не остается
	entries, err := os.ReadDir(store.Root())
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestFileStore_PutReplaces(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	_, err := store.Put(ctx, "a.jpg", bytes.NewReader([]byte("one")), Metadata{ContentType: "image/jpeg"})
	require.NoError(t, err)
	meta, err := store.Put(ctx, "a.jpg", bytes.NewReader([]byte("three")), Metadata{ContentType: "image/jpeg"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), meta.Size)

	obj, err := store.Get(ctx, "a.jpg")
	require.NoError(t, err)
	defer obj.Body.Close()

	got, err := io.ReadAll(obj.Body)
	require.NoError(t, err)
	assert.Equal(t, "three", string(got))
}

func TestFileStore_InvalidKeys(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	keys := []string{
		"",
		"../escape.png",
		"nested/key.png",
		`win\key.png`,
		".hidden",
		"x.png.meta.json",
		"..",
	}

	for _, key := range keys {
		t.Run(key, func(t *testing.T) {
			_, err := store.Put(ctx, key, bytes.NewReader([]byte("x")), Metadata{})
			assert.ErrorIs(t, err, ErrInvalidKey)

			_, err = store.Get(ctx, key)
			assert.ErrorIs(t, err, ErrInvalidKey)

			assert.ErrorIs(t, store.Delete(ctx, key), ErrInvalidKey)
		})
	}
}

func TestFileStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	_, err := store.Put(ctx, "gone.webp", bytes.NewReader([]byte("RIFF")), Metadata{ContentType: "image/webp"})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "gone.webp"))

	_, err = store.Get(ctx, "gone.webp")
	assert.ErrorIs(t, err, ErrObjectNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "gone.webp"), ErrObjectNotFound)

	entries, err := os.ReadDir(store.Root())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFileStore_List(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, key := range []string{"first.png", "second.png", "third.png"} {
		store.now = func() time.Time { return base.Add(time.Duration(i) * time.Hour) }
		_, err := store.Put(ctx, key, bytes.NewReader([]byte(key)), Metadata{ContentType: "image/png"})
		require.NoError(t, err)
	}

	// посторонний файл без сайдкара не попадает в список
	require.NoError(t, os.WriteFile(filepath.Join(store.Root(), "stray.png"), []byte("x"), 0o644))

	tests := []struct {
		name     string
		wantKeys []string
		limit    int
	}{
		{name: "all", limit: 0, wantKeys: []string{"third.png", "second.png", "first.png"}},
		{name: "limited", limit: 2, wantKeys: []string{"third.png", "second.png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			objects, err := store.List(ctx, tt.limit)
			require.NoError(t, err)

			keys := make([]string, 0, len(objects))
			for _, o := range objects {
				keys = append(keys, o.Key)
			}
			assert.Equal(t, tt.wantKeys, keys)
		})
	}
}

func TestFileStore_ContextCanceled(t *testing.T) {
	store := setupTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Put(ctx, "a.png", bytes.NewReader([]byte("x")), Metadata{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestETag(t *testing.T) {
	assert.Equal(t, ETag([]byte("same")), ETag([]byte("same")))
	assert.NotEqual(t, ETag([]byte("same")), ETag([]byte("other")))
}
