package reconcile

import (
	"asset-registry/core/asset"
	"asset-registry/core/identity"
)

// Entry pairs an identity with its live asset.
type Entry struct {
	ID    identity.ID
	Asset *asset.Asset
}

// Snapshot is a consistent view of the registry and the asset cache.
type Snapshot struct {
	// Registry maps path to durable metadata.
	Registry map[string]asset.Metadata
	// Assets lists the live assets in encounter order.
	Assets []Entry
}

// Plan contains the derived views and the registry entries to prune.
type Plan struct {
	// Sorted is the sorted view of all live assets.
	Sorted []Entry `json:"-"`

	// Children holds the re-ordered child list of every directory.
	Children map[identity.ID][]identity.ID `json:"-"`

	// Orphans lists registry paths whose identity has no live asset, sorted.
	Orphans []string `json:"orphans"`

	// Dangling lists child references to identities missing from the cache, keyed by directory.
	Dangling map[identity.ID][]identity.ID `json:"dangling,omitempty"`

	// Mismatched lists paths whose live asset degraded to TypeNone while the registry holds another type.
	Mismatched []string `json:"mismatched,omitempty"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

// Summary provides aggregate statistics for a reconcile plan.
type Summary struct {
	// TotalAssets is the number of live assets.
	TotalAssets int `json:"total_assets"`

	// Directories counts live directory assets.
	Directories int `json:"directories"`

	// Registered is the number of registry entries before pruning.
	Registered int `json:"registered"`

	// Orphans counts registry entries without a live asset.
	Orphans int `json:"orphans"`

	// Dangling counts child references to missing assets.
	Dangling int `json:"dangling"`

	// Mismatches counts assets degraded by a type mismatch.
	Mismatches int `json:"mismatches"`
}
