// Package archive provides the optional content-addressed mirror of audit
// events. Archival is best-effort; callers must never fail their own
// operation on an archive error.
package archive

import (
	"context"
	"time"

	"github.com/agenttrust/agenttrust/pkg/envelope"
	"gocloud.dev/blob"

	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

// Archiver stores opaque byte blobs under a content-derived locator.
type Archiver interface {
	Put(ctx context.Context, data []byte) (string, error)
	Get(ctx context.Context, locator string) ([]byte, error)
}

// BlobArchiver implements Archiver on a gocloud.dev blob bucket. The locator
// of a blob is the hex encoded SHA-512 of its content, so storing the same
// bytes twice is idempotent.
type BlobArchiver struct {
	bucket  *blob.Bucket
	timeout time.Duration
}

type BlobArchiverOption func(*BlobArchiver)

func WithCallTimeout(timeout time.Duration) BlobArchiverOption {
	return func(a *BlobArchiver) {
		a.timeout = timeout
	}
}

func NewBlobArchiver(bucket *blob.Bucket, opts ...BlobArchiverOption) *BlobArchiver {
	archiver := &BlobArchiver{
		bucket:  bucket,
		timeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(archiver)
	}
	return archiver
}

// OpenBlobArchiver opens a bucket by URL, e.g. "file:///var/lib/trust/archive"
// or "mem://" for tests.
func OpenBlobArchiver(ctx context.Context, bucketURL string, opts ...BlobArchiverOption) (*BlobArchiver, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, err
	}
	return NewBlobArchiver(bucket, opts...), nil
}

func (a *BlobArchiver) Put(ctx context.Context, data []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	locator := envelope.SHA512(data)
	exists, err := a.bucket.Exists(ctx, locator)
	if err != nil {
		return "", err
	}
	if exists {
		return locator, nil
	}

	if err := a.bucket.WriteAll(ctx, locator, data, nil); err != nil {
		return "", err
	}
	return locator, nil
}

func (a *BlobArchiver) Get(ctx context.Context, locator string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	return a.bucket.ReadAll(ctx, locator)
}

func (a *BlobArchiver) Close() error {
	return a.bucket.Close()
}
