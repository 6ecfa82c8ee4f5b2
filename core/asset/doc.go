// Package asset defines the asset data model and the pure path helpers used to
// derive runtime fields from a registry path.
//
// # Data Model
//
//   - Metadata: the durable record {path, id, type} kept in the registry.
//   - RuntimeData: derived fields (filename, extension, parent, loaded), recomputed
//     every time an asset is constructed for a path.
//   - Asset: Metadata + RuntimeData tagged with a Kind. Directories additionally
//     own an ordered list of child IDs.
//
// # Paths
//
// Filename and Extension follow the registry's own rules, not path/filepath:
// a trailing separator yields everything before it as the filename, and the
// extension is whatever follows the last '.' anywhere in the path.
//
// Embedded resources (a sub-mesh inside a model file, for instance) get a
// synthetic path built by EmbeddedPath:
//
//	asset.EmbeddedPath("models/ship.obj", "hull") // "<|models/ship.obj|>hull"
//
// SplitEmbeddedPath reverses it.
package asset
