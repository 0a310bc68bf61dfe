package blob

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"
)

const (
	metaSuffix = ".meta.json"
	tmpPrefix  = ".upload-"
)

// FileStore keeps objects as plain files in one directory,
// each with a JSON sidecar holding its metadata
type FileStore struct {
	now  func() time.Time
	root string
}

// NewFileStore creates the root directory if needed
func NewFileStore(root string) (*FileStore, error) {
	if root == "" {
		return nil, errors.New("blob root directory is required")
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create blob directory: %w", err)
	}

	return &FileStore{root: root, now: time.Now}, nil
}

// Root returns the directory objects are stored in
func (s *FileStore) Root() string {
	return s.root
}

// Put stores the object atomically: content goes to a temp file that is renamed into place
func (s *FileStore) Put(ctx context.Context, key string, r io.Reader, meta Metadata) (*Metadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.objectPath(key)
	if err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp(s.root, tmpPrefix+"*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	hash, err := blake2b.New256(nil)
	if err != nil {
		_ = tmp.Close()
		return nil, fmt.Errorf("failed to init hash: %w", err)
	}

	size, err := io.Copy(io.MultiWriter(tmp, hash), r)
	if err != nil {
		_ = tmp.Close()
		return nil, fmt.Errorf("failed to write object: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp file: %w", err)
	}

	meta.Size = size
	meta.ETag = hex.EncodeToString(hash.Sum(nil))
	meta.ModifiedAt = s.now().UTC()

	if err := s.writeMeta(key, &meta); err != nil {
		return nil, err
	}

	if err := os.Rename(tmpName, path); err != nil {
		return nil, fmt.Errorf("failed to move object into place: %w", err)
	}

	return &meta, nil
}

// Get opens the object file and reads its sidecar
func (s *FileStore) Get(ctx context.Context, key string) (*Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.objectPath(key)
	if err != nil {
		return nil, err
	}

	meta, err := s.readMeta(key)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to open object: %w", err)
	}

	return &Object{Key: key, Body: f, Metadata: *meta}, nil
}

// Delete removes the object file and its sidecar
func (s *FileStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.objectPath(key)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrObjectNotFound
		}
		return fmt.Errorf("failed to delete object: %w", err)
	}

	if err := os.Remove(path + metaSuffix); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete object metadata: %w", err)
	}

	return nil
}

// List reads every sidecar in the root directory
func (s *FileStore) List(ctx context.Context, limit int) ([]ObjectInfo, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read blob directory: %w", err)
	}

	objects := make([]ObjectInfo, 0)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, metaSuffix) {
			continue
		}

		key := strings.TrimSuffix(name, metaSuffix)
		meta, err := s.readMeta(key)
		if err != nil {
			// Сайдкар без объекта или битый JSON пропускаем
			continue
		}
		if _, err := os.Stat(filepath.Join(s.root, key)); err != nil {
			continue
		}

		objects = append(objects, ObjectInfo{Key: key, Metadata: *meta})
	}

	sort.Slice(objects, func(i, j int) bool {
		if objects[i].ModifiedAt.Equal(objects[j].ModifiedAt) {
			return objects[i].Key > objects[j].Key
		}
		return objects[i].ModifiedAt.After(objects[j].ModifiedAt)
	})

	if limit > 0 && len(objects) > limit {
		objects = objects[:limit]
	}

	return objects, nil
}

// objectPath validates key and maps it to a file inside root
func (s *FileStore) objectPath(key string) (string, error) {
	if key == "" ||
		key != filepath.Base(key) ||
		strings.ContainsAny(key, `/\`) ||
		strings.HasPrefix(key, ".") ||
		strings.HasSuffix(key, metaSuffix) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	return filepath.Join(s.root, key), nil
}

func (s *FileStore) writeMeta(key string, meta *Metadata) error {
	data, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("failed to marshal object metadata: %w", err)
	}

	if err := os.WriteFile(filepath.Join(s.root, key+metaSuffix), data, 0o644); err != nil {
		return fmt.Errorf("failed to write object metadata: %w", err)
	}

	return nil
}

func (s *FileStore) readMeta(key string) (*Metadata, error) {
	data, err := os.ReadFile(filepath.Join(s.root, key+metaSuffix))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to read object metadata: %w", err)
	}

	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("failed to unmarshal object metadata: %w", err)
	}

	return &meta, nil
}
