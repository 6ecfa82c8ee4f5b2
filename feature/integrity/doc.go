// Package integrity reports on the health of the asset registry.
//
// Unlike the 'assets' package which serves and mutates the registry, this
// package only inspects it, except when asked to fix.
//
// # Checks Provided
//
//   - Registry: orphaned registry entries, type mismatches, dangling child
//     references, loadable assets not loaded yet, walk failures.
//   - Structure: registered directories that vanished from the storage bucket
//     (storage source only).
//   - Schema: the persisted registry table against the store model (only when
//     a database is connected).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/registry : Runs the registry check (supports ?fix=true, which reconciles).
//   - GET /integrity/structure : Runs the structure check.
//   - GET /integrity/schema : Runs the schema check.
package integrity
