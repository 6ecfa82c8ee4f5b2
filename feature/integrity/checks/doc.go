// Package checks implements the individual integrity checks of the registry.
//
//   - CheckRegistry: orphans, type mismatches, dangling children and unloaded assets.
//   - CheckStructure: registered directories that vanished from the storage bucket.
//   - CheckSchema: the persisted registry table against its GORM model.
package checks
