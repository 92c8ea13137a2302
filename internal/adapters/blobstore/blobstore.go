// Package blobstore keeps scanned cheque images in a gocloud.dev bucket, which may be
// S3, GCS, a local directory or process memory depending on the bucket URL.
package blobstore

import (
	"context"
	"fmt"
	"io"

	"github.com/SscSPs/cheque_management_app/internal/apperrors"
	"github.com/SscSPs/cheque_management_app/internal/core/ports"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// BucketStore implements ports.ImageStore on a blob.Bucket
type BucketStore struct {
	bucket *blob.Bucket
}

var _ ports.ImageStore = (*BucketStore)(nil)

// Open opens the bucket behind bucketURL, e.g. "mem://", "file:///var/cms" or "s3://bucket".
func Open(ctx context.Context, bucketURL string) (*BucketStore, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open bucket %s: %w", bucketURL, err)
	}
	return &BucketStore{bucket: bucket}, nil
}

// Put streams r into key.
func (s *BucketStore) Put(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("failed to open writer for %s: %w", key, err)
	}
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to commit %s: %w", key, err)
	}
	return key, nil
}

// Open returns a reader for key; a missing key is apperrors.ErrNotFound.
func (s *BucketStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, apperrors.NewNotFoundError("image " + key)
		}
		return nil, err
	}
	return r, nil
}

func (s *BucketStore) Close() error {
	return s.bucket.Close()
}
