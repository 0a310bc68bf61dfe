package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/cardkeeper/internal/client/storage"
)

// создаём тестовое BoltDB хранилище во временном каталоге
func createTestStorage(t *testing.T) *Storage {
	t.Helper()

	store, err := New(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestNew_Success(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "testdb.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, store.Close())
	}()

	info, err := os.Stat(dbPath)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	err = store.db.View(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketSession, bucketSettings} {
			if tx.Bucket(b) == nil {
				return os.ErrNotExist
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestNew_InvalidPath(t *testing.T) {
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "missing", "client.db"))
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNew_Locked(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "testdb.db")

	first, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, first.Close())
	}()

	// второй процесс клиента не ждет бесконечно
	_, err = New(context.Background(), dbPath)
	assert.Error(t, err)
}

func TestClose(t *testing.T) {
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "testdb.db"))
	require.NoError(t, err)

	require.NoError(t, store.Close())
	assert.Nil(t, store.db)

	// Второй вызов Close ничего не делает
	assert.NoError(t, store.Close())
}

func TestStorage_Session(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	_, err := store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
	assert.ErrorIs(t, store.DeleteSession(ctx), storage.ErrSessionNotFound)

	session := &storage.Session{
		ServerURL:   "http://localhost:8080",
		Name:        "alice",
		AccessToken: "token-1",
		ExpiresAt:   time.Now().Add(time.Hour).Unix(),
	}
	require.NoError(t, store.SaveSession(ctx, session))

	got, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, session, got)

	// повторный login заменяет сессию
	session.AccessToken = "token-2"
	require.NoError(t, store.SaveSession(ctx, session))
	got, err = store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-2", got.AccessToken)

	require.NoError(t, store.DeleteSession(ctx))
	_, err = store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestStorage_Settings(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	v, err := store.GetSetting(ctx, storage.SettingServerURL)
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, store.SaveSetting(ctx, storage.SettingServerURL, "https://cards.example.com"))
	v, err = store.GetSetting(ctx, storage.SettingServerURL)
	require.NoError(t, err)
	assert.Equal(t, "https://cards.example.com", v)

	require.NoError(t, store.SaveSetting(ctx, storage.SettingServerURL, ""))
	v, err = store.GetSetting(ctx, storage.SettingServerURL)
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestStorage_Persistence(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "client.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.SaveSession(ctx, &storage.Session{Name: "bob", AccessToken: "t"}))
	require.NoError(t, store.Close())

	store, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, store.Close())
	}()

	got, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Name)
}

func TestSession_Expired(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	tests := []struct {
		name      string
		expiresAt int64
		want      bool
	}{
		{name: "future", expiresAt: now.Add(time.Minute).Unix(), want: false},
		{name: "past", expiresAt: now.Add(-time.Minute).Unix(), want: true},
		{name: "exactly now", expiresAt: now.Unix(), want: true},
		{name: "no expiry", expiresAt: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &storage.Session{ExpiresAt: tt.expiresAt}
			assert.Equal(t, tt.want, s.Expired(now))
		})
	}
}
