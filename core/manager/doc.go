// Package manager implements the identity-stable asset registry.
//
// A Manager owns two maps guarded by one lock:
//
//   - registry: path -> asset.Metadata. Once a path is seen its ID never changes
//     while the path keeps being scanned. Entries are only removed by Reconcile.
//   - assets: ID -> *asset.Asset. Exactly one live instance per ID; installing a
//     new instance for an ID releases the previous one first.
//
// # Operations
//
//   - SyncDirectory: depth-first mirror of a directory subtree. Subdirectories
//     fan out in parallel; listing failures are reported per subtree as
//     *WalkError values and never stop sibling subtrees.
//   - Import: (re-)import a single file below a directory.
//   - CreateEmbeddedAsset / Insert: give a resource inside a file its own
//     stable ID through a synthetic path, then install it.
//   - Load: dispatch the loader registered for the asset's type. At most one
//     load per ID is in flight at any time.
//   - Reconcile: stop-the-world rebuild of the sorted view and pruning of
//     registry entries whose ID has no live asset.
//
// # Type mismatches
//
// Resolving a path that the registry knows under another type is not an error.
// The mismatch is logged, the new asset's type degrades to asset.TypeNone and
// the registry entry is left as it was.
//
// # Usage
//
//	m, err := manager.New(ctx, "project", listing.NewOS(),
//	    manager.WithLogger(log),
//	    manager.WithLoader(asset.TypeTexture, serializer.Texture()),
//	)
//	ok, err := m.Load(ctx, id)
package manager
