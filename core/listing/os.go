package listing

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// OS lists the local file system.
type OS struct{}

// NewOS returns a FileSystem backed by the local disk.
func NewOS() *OS {
	return &OS{}
}

// List implements FileSystem. Symlinks are followed to decide whether an entry is a directory.
func (o *OS) List(ctx context.Context, dir string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dirEntries, err := os.ReadDir(filepath.FromSlash(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		p := join(dir, de.Name())
		isDir := de.IsDir()
		if de.Type()&fs.ModeSymlink != 0 {
			if info, err := os.Stat(filepath.FromSlash(p)); err == nil {
				isDir = info.IsDir()
			}
		}
		entries = append(entries, Entry{Path: p, IsDir: isDir})
	}
	return entries, nil
}

// Open implements FileSystem.
func (o *OS) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.FromSlash(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return f, nil
}
