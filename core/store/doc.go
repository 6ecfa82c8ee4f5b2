// Package store persists the path -> metadata registry so asset identities
// survive process restarts.
//
// The registry is saved as a whole: Save replaces the table contents inside a
// transaction, Load returns every entry ordered by path. The manager is seeded
// with the loaded entries through manager.WithSeed before its first scan.
package store
