package manager

import (
	"errors"
	"fmt"
)

var (
	// ErrParentNotFound is returned when a parent path or ID is not registered,
	// or the parent ID is not a live directory.
	ErrParentNotFound = errors.New("parent not found")
	// ErrAssetNotFound is returned when an ID or path has no live asset.
	ErrAssetNotFound = errors.New("asset not found")
	// ErrNotDirectory is returned when a directory operation targets a file.
	ErrNotDirectory = errors.New("asset is not a directory")
	// ErrOutsideProject is returned when a directory path is not below the project folder.
	ErrOutsideProject = errors.New("path is outside of the project folder")
	// ErrNoLoaderRegistered is returned by Load when no loader handles the asset type.
	ErrNoLoaderRegistered = errors.New("no loader registered")
	// ErrNotLoadable is returned by Load for directories and unclassified assets.
	ErrNotLoadable = errors.New("asset is not loadable")
	// ErrNotRegistered is returned by Insert for assets without registry metadata.
	ErrNotRegistered = errors.New("asset is not registered")
	// ErrMaxDepth is reported when a walk reaches the configured depth limit.
	ErrMaxDepth = errors.New("maximum directory depth reached")
)

// WalkError reports a directory subtree that could not be listed.
// The directory itself stays in the cache, without children.
type WalkError struct {
	Path string
	Err  error
}

func (e *WalkError) Error() string {
	return fmt.Sprintf("walk %s: %v", e.Path, e.Err)
}

func (e *WalkError) Unwrap() error {
	return e.Err
}
