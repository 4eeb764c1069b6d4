// Package database opens the optional run history database.
//
// Connect wraps GORM and supports MySQL for shared deployments and SQLite
// for a single plugin instance. Both are configured from the database
// section of the application config.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns read a table's live columns so the
// history recorder can report a schema that drifted from its model.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logger.Warn("Run history disabled", zap.Error(err))
//	}
//
//	missing, err := database.MissingColumns(db, "sync_runs", []string{"id", "kind"})
package database
