package blob

import (
	"context"
	"encoding/hex"
	"errors"
	"io"
	"time"

	"golang.org/x/crypto/blake2b"
)

var (
	// ErrObjectNotFound indicates that no object is stored under the key
	ErrObjectNotFound = errors.New("object not found")

	// ErrInvalidKey indicates that the key is empty or escapes the store root
	ErrInvalidKey = errors.New("invalid object key")
)

// Metadata describes a stored object
type Metadata struct {
	ModifiedAt   time.Time `json:"modified_at"`
	CardID       *int64    `json:"card_id,omitempty"`
	ContentType  string    `json:"content_type"`
	OriginalName string    `json:"original_name,omitempty"`
	ETag         string    `json:"etag"`
	Size         int64     `json:"size"`
}

// Object is an opened object; the caller must close Body
type Object struct {
	Body io.ReadCloser
	Key  string
	Metadata
}

// ObjectInfo is a listing entry
type ObjectInfo struct {
	Key string
	Metadata
}

//go:generate moq -out store_mock.go . Store

// Store is a flat key/object store
type Store interface {
	// Put stores the content of r under key, replacing an existing object.
	// Size, ETag and ModifiedAt of meta are computed by the store.
	Put(ctx context.Context, key string, r io.Reader, meta Metadata) (*Metadata, error)

	// Get opens the object stored under key
	// Returns ErrObjectNotFound if object doesn't exist
	Get(ctx context.Context, key string) (*Object, error)

	// Delete removes the object
	// Returns ErrObjectNotFound if object doesn't exist
	Delete(ctx context.Context, key string) error

	// List returns up to limit objects, most recently modified first
	List(ctx context.Context, limit int) ([]ObjectInfo, error)
}

// ETag returns the hex blake2b-256 digest of data
func ETag(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}
