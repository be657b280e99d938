package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const (
	keyLastRefreshAt = "last_refresh_at"
)

// SaveLastRefresh records when the auction listing was last fetched
// successfully.
func (s *Storage) SaveLastRefresh(ctx context.Context, at time.Time) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, uint64(at.Unix()))

		if err := bucket.Put([]byte(keyLastRefreshAt), buf); err != nil {
			return fmt.Errorf("failed to save last refresh time: %w", err)
		}

		return nil
	})
}

// GetLastRefresh returns the recorded refresh time.
// Returns the zero time if no refresh has been recorded yet.
func (s *Storage) GetLastRefresh(ctx context.Context) (time.Time, error) {
	var at time.Time

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		buf := bucket.Get([]byte(keyLastRefreshAt))
		if buf == nil {
			return nil
		}
		if len(buf) != 8 {
			return fmt.Errorf("malformed last refresh value, got %d bytes", len(buf))
		}

		at = time.Unix(int64(binary.BigEndian.Uint64(buf)), 0).UTC()
		return nil
	})

	if err != nil {
		return time.Time{}, err
	}

	return at, nil
}
