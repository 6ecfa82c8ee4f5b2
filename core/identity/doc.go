// Package identity provides the opaque identifiers assigned to assets.
//
// An ID is generated once for a previously unseen path and then copied forward
// from the registry on every later scan, so it outlives re-imports and process
// restarts (when the registry is persisted).
//
// # None
//
// The zero ID is reserved. None() returns it and IsValid reports false only for
// it; it marks "no parent" on root directories and "not assigned yet".
//
// # Usage
//
//	id := identity.Generate()
//	if parent.IsValid() {
//	    ...
//	}
package identity
