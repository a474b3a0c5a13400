package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.DB) error
}

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "add_handover_columns_to_reports",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "add_location_and_category_to_spares_used",
		Up:      migrationV2,
	},
	{
		Version: 3,
		Name:    "create_spares_inventory_table",
		Up:      migrationV3,
	},
}

// RunMigrations executes all pending migrations
func RunMigrations() error {
	db, err := GetDB()
	if err != nil {
		return fmt.Errorf("failed to get database: %w", err)
	}

	// Create schema_version table if it doesn't exist
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	// Get current schema version
	var currentVersion int
	err = db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	// Run pending migrations
	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", migration.Version, err)
		}

		if err := migration.Up(db); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}

		_, err = tx.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}
	}

	return nil
}

// addColumnIfMissing runs an ALTER TABLE ADD COLUMN and tolerates the column
// already existing, which is how older databases created before the versioned
// migration list catch up.
func addColumnIfMissing(db *sql.DB, table, column, definition string) error {
	_, err := db.Exec(fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, definition))
	if err != nil && strings.Contains(err.Error(), "duplicate column name") {
		return nil
	}
	return err
}

// migrationV1 adds the second engineer and end-of-shift check columns that the
// first deployments of the reports table predate.
func migrationV1(db *sql.DB) error {
	cols := []struct{ name, def string }{
		{"second_engineer", "TEXT"},
		{"team_members", "TEXT"},
		{"keys_handed", "BOOLEAN NOT NULL DEFAULT 0"},
		{"safety_check", "BOOLEAN NOT NULL DEFAULT 0"},
	}
	for _, c := range cols {
		if err := addColumnIfMissing(db, "reports", c.name, c.def); err != nil {
			return err
		}
	}
	return nil
}

// migrationV2 adds storage location and category code to spares usage rows.
func migrationV2(db *sql.DB) error {
	if err := addColumnIfMissing(db, "spares_used", "location", "TEXT"); err != nil {
		return err
	}
	return addColumnIfMissing(db, "spares_used", "category_code", "INTEGER")
}

// migrationV3 creates the shared spares inventory table.
func migrationV3(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS spares_inventory (
			art_number TEXT PRIMARY KEY,
			description TEXT,
			location TEXT,
			category TEXT,
			stock_level INTEGER NOT NULL DEFAULT 0,
			min_stock_level INTEGER NOT NULL DEFAULT 0
		)
	`)
	return err
}
