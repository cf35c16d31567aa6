package storage

import (
	"context"

	"github.com/iudanet/ajustaestoque/internal/models"
)

//go:generate moq -out assets_mock.go . AssetStorage

// AssetStorage defines versioned buckets of cached responses
type AssetStorage interface {
	// PutBucket atomically creates (or replaces) the bucket named version
	// with exactly the given entries. Either all entries are committed or none.
	PutBucket(ctx context.Context, version string, entries []*models.CachedResponse) error

	// GetAsset looks up one URL in the bucket named version.
	// Returns ErrBucketNotFound or ErrAssetNotFound on miss.
	GetAsset(ctx context.Context, version, url string) (*models.CachedResponse, error)

	// ListBuckets returns the names of all asset buckets
	ListBuckets(ctx context.Context) ([]string, error)

	// DeleteBucket removes a bucket with all its entries.
	// Deleting an absent bucket is not an error.
	DeleteBucket(ctx context.Context, version string) error
}
