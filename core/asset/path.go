package asset

import (
	"strings"

	"asset-registry/core/identity"
)

// Reserved markers that delimit the host path of an embedded asset. Both contain
// characters that are illegal in portable file names.
const (
	HostBegin = "<|"
	HostEnd   = "|>"
)

// Separator is the path separator used by every registry path.
const Separator = "/"

// Filename returns the portion of path after the last separator. Without a
// separator it is the whole path. If the separator is the final character the
// filename is everything before it.
func Filename(path string) string {
	i := strings.LastIndex(path, Separator)
	switch {
	case i < 0:
		return path
	case i == len(path)-1:
		return path[:i]
	default:
		return path[i+1:]
	}
}

// Extension returns the text after the last '.' in path, or "".
func Extension(path string) string {
	i := strings.LastIndex(path, ".")
	if i < 0 {
		return ""
	}
	return path[i+1:]
}

// EmbeddedPath builds the synthetic registry path of a resource living inside parentPath.
func EmbeddedPath(parentPath, internalPath string) string {
	return HostBegin + parentPath + HostEnd + internalPath
}

// IsEmbedded reports whether path was produced by EmbeddedPath.
func IsEmbedded(path string) bool {
	_, _, ok := SplitEmbeddedPath(path)
	return ok
}

// SplitEmbeddedPath decomposes an embedded path into its host and internal parts.
// Nested embedded hosts are kept intact in parentPath.
func SplitEmbeddedPath(path string) (parentPath, internalPath string, ok bool) {
	if !strings.HasPrefix(path, HostBegin) {
		return "", "", false
	}
	rest := path[len(HostBegin):]
	i := strings.LastIndex(rest, HostEnd)
	if i < 0 {
		return "", "", false
	}
	return rest[:i], rest[i+len(HostEnd):], true
}

// Runtime derives the runtime fields for path. Loaded always starts false.
func Runtime(path string, parent identity.ID) RuntimeData {
	return RuntimeData{
		Filename:  Filename(path),
		Extension: Extension(path),
		Parent:    parent,
		Loaded:    false,
	}
}
