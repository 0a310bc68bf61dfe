package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"
)

// SaveSetting stores a client setting; an empty value removes it
func (s *Storage) SaveSetting(ctx context.Context, key, value string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSettings)
		if bucket == nil {
			return fmt.Errorf("settings bucket not found")
		}

		if value == "" {
			return bucket.Delete([]byte(key))
		}
		if err := bucket.Put([]byte(key), []byte(value)); err != nil {
			return fmt.Errorf("failed to save setting %s: %w", key, err)
		}
		return nil
	})
}

// GetSetting returns the setting value or an empty string
func (s *Storage) GetSetting(ctx context.Context, key string) (string, error) {
	var value string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSettings)
		if bucket == nil {
			return fmt.Errorf("settings bucket not found")
		}
		value = string(bucket.Get([]byte(key)))
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to get setting %s: %w", key, err)
	}

	return value, nil
}
