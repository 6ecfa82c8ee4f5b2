// Package database handles database connections and schema inspection.
//
// It wraps GORM to open MySQL or SQLite connections from the application's
// configuration. The connection backs the registry store; it is optional and
// the registry runs in memory without it.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table for both dialects. The integrity
// report uses it to verify that the registry table matches the expected schema.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Database connection failed", zap.Error(err))
//	}
//
//	columns, err := database.GetTableColumns(db, "asset_registry")
package database
