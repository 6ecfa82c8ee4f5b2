package assets

import (
	"encoding/json"

	"asset-registry/core/asset"
	"asset-registry/core/identity"
)

// AssetView is the JSON representation of a live asset.
type AssetView struct {
	ID        string   `json:"id"`
	Path      string   `json:"path"`
	Type      string   `json:"type"`
	Filename  string   `json:"filename"`
	Extension string   `json:"extension"`
	Parent    string   `json:"parent,omitempty"`
	Loaded    bool     `json:"loaded"`
	Directory bool     `json:"directory"`
	Children  []string `json:"children,omitempty"`
	// Data is the loader output, when it encodes to JSON.
	Data json.RawMessage `json:"data,omitempty"`
}

// ImportRequest is the body of POST /assets/import.
type ImportRequest struct {
	Path string `json:"path"`
	// Parent is the ID of the enclosing directory. Empty resolves it from the path.
	Parent string `json:"parent"`
}

// SyncResult is the response of POST /assets/sync.
type SyncResult struct {
	ID       string   `json:"id"`
	Path     string   `json:"path"`
	Assets   int      `json:"assets"`
	Pruned   int      `json:"pruned"`
	Failures []string `json:"failures"`
}

// NewAssetView converts a to its JSON representation.
func NewAssetView(a *asset.Asset) AssetView {
	v := AssetView{
		ID:        a.Metadata.ID.String(),
		Path:      a.Metadata.Path,
		Type:      a.Metadata.Type.String(),
		Filename:  a.Runtime.Filename,
		Extension: a.Runtime.Extension,
		Loaded:    a.Runtime.Loaded,
		Directory: a.IsDirectory(),
	}
	if a.Data != nil {
		if raw, err := json.Marshal(a.Data); err == nil {
			v.Data = raw
		}
	}
	if a.Runtime.Parent.IsValid() {
		v.Parent = a.Runtime.Parent.String()
	}
	if len(a.Children) > 0 {
		v.Children = idStrings(a.Children)
	}
	return v
}

func idStrings(ids []identity.ID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
