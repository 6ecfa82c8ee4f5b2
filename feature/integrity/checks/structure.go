package checks

import (
	"context"
	"fmt"
	"strings"

	"asset-registry/core/storage"

	"github.com/minio/minio-go/v7"
)

// CheckStructure returns the directories that no longer have any object
// below their prefix in the bucket.
func CheckStructure(ctx context.Context, client storage.Client, bucket string, dirs []string) ([]string, error) {
	missing := []string{}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		prefix := strings.TrimSuffix(dir, "/")
		if prefix == "." || prefix == "" {
			// The bucket root exists with the bucket.
			continue
		}
		prefix += "/"

		opts := minio.ListObjectsOptions{
			Prefix:    prefix,
			Recursive: false,
			MaxKeys:   1,
		}

		found := false
		for obj := range client.ListObjects(ctx, bucket, opts) {
			found = obj.Err == nil
			break
		}

		if !found {
			missing = append(missing, dir)
		}
	}

	return missing, nil
}
