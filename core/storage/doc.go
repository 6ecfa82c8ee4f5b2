// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so a bucket can serve as the project tree of the
// asset registry (see core/listing.Bucket). Both AWS S3 and self-hosted MinIO
// instances are supported.
//
// # Client Interface
//
// The Client interface only exposes the read operations the registry needs,
// which keeps it easy to mock (see core/storage/mocks).
//
//   - BucketExists: Verifies access to the target bucket.
//   - GetObject: Retrieves content as a stream, used by loaders.
//   - ListObjects: Lists one level of a prefix; sub-prefixes are directories.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "assets")
package storage
