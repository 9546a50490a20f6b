package report

import (
	"bytes"
	"context"
	"log"
	"time"

	"audiocheck/internal/storage"
)

// DefaultURLExpiry is how long the logged download link for an archived
// report stays valid.
const DefaultURLExpiry = 24 * time.Hour

// S3Sink archives reports as JSON objects under a key prefix.
type S3Sink struct {
	store     storage.Storage
	prefix    string
	urlExpiry time.Duration
}

// NewS3Sink creates an S3Sink. Objects are written to prefix + id + ".json".
func NewS3Sink(store storage.Storage, prefix string) *S3Sink {
	return &S3Sink{store: store, prefix: prefix, urlExpiry: DefaultURLExpiry}
}

func (s *S3Sink) Name() string { return "s3" }

// Key returns the object key for r.
func (s *S3Sink) Key(r *Report) string {
	return s.prefix + r.ID + ".json"
}

// Write uploads r and logs a pre-signed link to it.
func (s *S3Sink) Write(ctx context.Context, r *Report) error {
	data, err := Encode(r)
	if err != nil {
		return err
	}

	key := s.Key(r)
	if err := s.store.PutObject(ctx, key, bytes.NewReader(data), "application/json"); err != nil {
		return err
	}

	url, err := s.store.GetPresignedURL(ctx, key, s.urlExpiry)
	if err != nil {
		log.Printf("Report stored at %s (no link: %v)", key, err)
		return nil
	}
	log.Printf("Report stored at %s: %s", key, url)
	return nil
}
