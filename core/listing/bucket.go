package listing

import (
	"context"
	"fmt"
	"io"
	"strings"

	"asset-registry/core/storage"

	"github.com/minio/minio-go/v7"
)

// Bucket lists an object storage bucket as a directory tree.
type Bucket struct {
	client storage.Client
	bucket string
}

// NewBucket returns a FileSystem over bucket.
func NewBucket(client storage.Client, bucket string) *Bucket {
	return &Bucket{client: client, bucket: bucket}
}

// Verify checks that the bucket is reachable.
func (b *Bucket) Verify(ctx context.Context) error {
	exists, err := b.client.BucketExists(ctx, b.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", b.bucket)
	}
	return nil
}

// List implements FileSystem. The folder marker object of dir itself is skipped.
func (b *Bucket) List(ctx context.Context, dir string) ([]Entry, error) {
	prefix := strings.TrimSuffix(dir, "/")
	if prefix == "." {
		prefix = ""
	}
	if prefix != "" {
		prefix += "/"
	}

	opts := minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: false,
	}

	var entries []Entry
	for obj := range b.client.ListObjects(ctx, b.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", dir, obj.Err)
		}
		if obj.Key == prefix {
			continue
		}
		if strings.HasSuffix(obj.Key, "/") {
			entries = append(entries, Entry{Path: strings.TrimSuffix(obj.Key, "/"), IsDir: true})
			continue
		}
		entries = append(entries, Entry{Path: obj.Key})
	}
	return entries, nil
}

// Open implements FileSystem.
func (b *Bucket) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	r, err := b.client.GetObject(ctx, b.bucket, path, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", path, err)
	}
	return r, nil
}
