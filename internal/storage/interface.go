package storage

import (
	"context"
	"io"
	"time"
)

// Storage defines the interface for object storage operations.
type Storage interface {
	// PutObject uploads an object to storage.
	PutObject(ctx context.Context, key string, body io.Reader, contentType string) error
	// GetObject reads an object back in full.
	GetObject(ctx context.Context, key string) ([]byte, error)
	// GetPresignedURL generates a pre-signed URL for downloading an object.
	GetPresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// Ensure S3Client implements Storage interface
var _ Storage = (*S3Client)(nil)
