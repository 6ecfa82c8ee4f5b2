// Package assets exposes the asset registry over HTTP.
//
// # HTTP Endpoints
//
//   - GET /assets : The sorted view (supports ?type=texture).
//   - GET /assets/:id : One live asset.
//   - GET /assets/:id/children : The children of a directory, in sorted order.
//   - POST /assets/sync : Re-synchronizes the project, or the directory given by ?path=.
//   - POST /assets/import : Imports one file, {"path": "...", "parent": "..."}.
//   - POST /assets/:id/load : Dispatches the loader of the asset.
//   - GET /registry : The path -> metadata registry.
//
// Mutating endpoints persist the registry when a store is configured.
package assets
