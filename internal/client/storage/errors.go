package storage

import "errors"

// Common client storage errors
var (
	// ErrSessionNotFound indicates that no session is stored (not logged in)
	ErrSessionNotFound = errors.New("session not found")

	// ErrBucketNotFound indicates that an asset bucket with this version doesn't exist
	ErrBucketNotFound = errors.New("asset bucket not found")

	// ErrAssetNotFound indicates that the bucket has no entry for the URL
	ErrAssetNotFound = errors.New("asset not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")

	// ErrSchemaVersion indicates that the database was created with another schema version
	ErrSchemaVersion = errors.New("unsupported schema version")
)
