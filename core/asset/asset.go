package asset

import "asset-registry/core/identity"

// Metadata is the durable identity record of a path.
type Metadata struct {
	Path string      `json:"path"`
	ID   identity.ID `json:"id"`
	Type Type        `json:"type"`
}

// RuntimeData holds fields derived from the path at construction time. It is never persisted.
type RuntimeData struct {
	Filename  string      `json:"filename"`
	Extension string      `json:"extension"`
	Parent    identity.ID `json:"parent"`
	Loaded    bool        `json:"loaded"`
}

// Kind tags the variant of an Asset.
type Kind int

const (
	// KindPlain is a file or embedded resource.
	KindPlain Kind = iota
	// KindDirectory is a folder that owns child IDs.
	KindDirectory
)

// Asset is a live in-memory asset instance.
type Asset struct {
	Metadata Metadata    `json:"metadata"`
	Runtime  RuntimeData `json:"runtime"`
	Kind     Kind        `json:"-"`
	// Children lists child IDs in scan order until the sorted view is rebuilt.
	// Only set on directories.
	Children []identity.ID `json:"children,omitempty"`
	// Data is the loader output, nil until loaded.
	Data any `json:"-"`
}

// New creates an empty asset of the variant matching typ.
func New(typ Type) *Asset {
	a := &Asset{Kind: KindPlain}
	if typ == TypeDirectory {
		a.Kind = KindDirectory
		a.Children = []identity.ID{}
	}
	return a
}

// IsDirectory reports whether a is the directory variant.
func (a *Asset) IsDirectory() bool {
	return a.Kind == KindDirectory
}

// Loadable reports whether a loader may be dispatched for a.
func (a *Asset) Loadable() bool {
	switch {
	case a.IsDirectory():
		return false
	case a.Metadata.Type == TypeNone, a.Metadata.Type == TypeDirectory:
		return false
	default:
		return true
	}
}

// HasChild reports whether id is already in the child list.
func (a *Asset) HasChild(id identity.ID) bool {
	for _, c := range a.Children {
		if c == id {
			return true
		}
	}
	return false
}

// CopyMetadata copies the durable record of src onto a.
func (a *Asset) CopyMetadata(src *Asset) {
	a.Metadata = src.Metadata
}

// Clone returns a copy of a with its own child slice. Data is shared.
func (a *Asset) Clone() *Asset {
	c := *a
	if a.Children != nil {
		c.Children = append([]identity.ID(nil), a.Children...)
	}
	return &c
}
