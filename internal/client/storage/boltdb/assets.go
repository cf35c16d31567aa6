package boltdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/ajustaestoque/internal/client/storage"
	"github.com/iudanet/ajustaestoque/internal/models"
)

// PutBucket replaces the bucket named version with exactly the given entries.
// Everything happens in one write transaction, so a failure commits nothing.
func (s *Storage) PutBucket(ctx context.Context, version string, entries []*models.CachedResponse) error {
	if version == "" {
		return fmt.Errorf("bucket version cannot be empty")
	}

	err := s.update(func(tx *bbolt.Tx) error {
		root := tx.Bucket(bucketAssets)
		if root == nil {
			return fmt.Errorf("assets bucket not found")
		}

		name := []byte(version)
		// Пересоздаем bucket целиком - записи одной версии не смешиваются
		if root.Bucket(name) != nil {
			if err := root.DeleteBucket(name); err != nil {
				return fmt.Errorf("failed to drop old bucket: %w", err)
			}
		}

		bucket, err := root.CreateBucket(name)
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}

		for _, entry := range entries {
			data, err := json.Marshal(entry)
			if err != nil {
				return fmt.Errorf("failed to marshal asset %s: %w", entry.URL, err)
			}
			if err := bucket.Put([]byte(entry.URL), data); err != nil {
				return fmt.Errorf("failed to save asset %s: %w", entry.URL, err)
			}
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("put bucket transaction failed: %w", err)
	}

	return nil
}

// GetAsset looks up one URL in the bucket named version
func (s *Storage) GetAsset(ctx context.Context, version, url string) (*models.CachedResponse, error) {
	var entry *models.CachedResponse

	err := s.view(func(tx *bbolt.Tx) error {
		root := tx.Bucket(bucketAssets)
		if root == nil {
			return storage.ErrBucketNotFound
		}

		bucket := root.Bucket([]byte(version))
		if bucket == nil {
			return storage.ErrBucketNotFound
		}

		data := bucket.Get([]byte(url))
		if data == nil {
			return storage.ErrAssetNotFound
		}

		entry = &models.CachedResponse{}
		if err := json.Unmarshal(data, entry); err != nil {
			return fmt.Errorf("failed to unmarshal asset: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return entry, nil
}

// ListBuckets returns the names of all asset buckets
func (s *Storage) ListBuckets(ctx context.Context) ([]string, error) {
	var names []string

	err := s.view(func(tx *bbolt.Tx) error {
		root := tx.Bucket(bucketAssets)
		if root == nil {
			return nil
		}

		return root.ForEach(func(k, v []byte) error {
			// Вложенные buckets имеют nil value
			if v == nil {
				names = append(names, string(k))
			}
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list buckets: %w", err)
	}

	return names, nil
}

// DeleteBucket removes a bucket; absent buckets are ignored
func (s *Storage) DeleteBucket(ctx context.Context, version string) error {
	err := s.update(func(tx *bbolt.Tx) error {
		root := tx.Bucket(bucketAssets)
		if root == nil {
			return nil
		}

		if err := root.DeleteBucket([]byte(version)); err != nil && !errors.Is(err, bbolt.ErrBucketNotFound) {
			return fmt.Errorf("failed to delete bucket: %w", err)
		}
		return nil
	})

	if err != nil {
		return fmt.Errorf("delete bucket transaction failed: %w", err)
	}

	return nil
}
