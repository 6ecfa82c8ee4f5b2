package listing

import (
	"context"
	"io"
	"path"
)

// Entry is a single item of a directory listing.
type Entry struct {
	// Path is the full registry path of the entry.
	Path string
	// IsDir reports whether the entry is a directory.
	IsDir bool
}

// FileSystem lists directories and opens files.
type FileSystem interface {
	// List returns the immediate entries of dir.
	List(ctx context.Context, dir string) ([]Entry, error)
	// Open opens the file at path for reading.
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// join appends name to dir. The result is clean, so "./x" and "x/" list as "x/<name>".
func join(dir, name string) string {
	return path.Join(dir, name)
}
