// Package listing provides the directory-listing capability consumed by the
// directory synchronizer and the loaders.
//
// A FileSystem lists the immediate entries of a directory, reporting for each
// whether it is a directory, and opens files for reading. All paths are
// slash-separated registry paths.
//
// # Implementations
//
//   - OS: the local disk.
//   - Bucket: an S3/MinIO bucket through core/storage. Common prefixes are
//     reported as directories.
//   - Memory: an in-memory tree, safe for concurrent use. Used by tests and
//     dry runs; failures can be injected per directory.
//
// Listing order is whatever the backend yields; callers must not rely on it.
package listing
