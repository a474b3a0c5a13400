package db

// SchemaSQL is the complete schema for fresh installs. It reflects the
// current state after all migrations; repository tests load it via
// GetSchemaSQL so their schema cannot drift from production.
//
// When adding new columns or tables:
//  1. Add a migration in internal/db/migrations.go
//  2. Update SchemaSQL here
const SchemaSQL = `
-- Shift report headers
CREATE TABLE IF NOT EXISTS reports (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	date TEXT NOT NULL,
	shift TEXT NOT NULL CHECK(shift IN ('Day', 'Night')),
	engineer TEXT NOT NULL,
	second_engineer TEXT,
	team_members TEXT,
	handover_notes TEXT,
	radios_charged BOOLEAN NOT NULL DEFAULT 0,
	phones_working BOOLEAN NOT NULL DEFAULT 0,
	keys_handed BOOLEAN NOT NULL DEFAULT 0,
	safety_check BOOLEAN NOT NULL DEFAULT 0,
	submitted_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Reactive (unplanned) repair tasks, owned by a report
CREATE TABLE IF NOT EXISTS reactives (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	report_id INTEGER NOT NULL,
	asset TEXT NOT NULL,
	time_called TEXT,
	time_back TEXT,
	fault TEXT,
	engineers INTEGER NOT NULL DEFAULT 1,
	description TEXT,
	downtime REAL NOT NULL DEFAULT 0,
	status TEXT NOT NULL CHECK(status IN ('Complete', 'In Progress', 'Awaiting Parts')) DEFAULT 'Complete',
	FOREIGN KEY (report_id) REFERENCES reports(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_reactives_report ON reactives(report_id);
CREATE INDEX IF NOT EXISTS idx_reactives_asset ON reactives(asset);
CREATE INDEX IF NOT EXISTS idx_reactives_status ON reactives(status);

-- Planned preventive maintenance tasks, owned by a report
CREATE TABLE IF NOT EXISTS ppms (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	report_id INTEGER NOT NULL,
	asset TEXT NOT NULL,
	ppm_id TEXT,
	status TEXT NOT NULL DEFAULT 'Complete',
	comments TEXT,
	FOREIGN KEY (report_id) REFERENCES reports(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_ppms_report ON ppms(report_id);

-- Spare parts consumed during a shift, owned by a report
CREATE TABLE IF NOT EXISTS spares_used (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	report_id INTEGER NOT NULL,
	art_number TEXT NOT NULL,
	description TEXT,
	location TEXT,
	category_code INTEGER,
	quantity INTEGER NOT NULL CHECK(quantity > 0),
	decision TEXT,
	FOREIGN KEY (report_id) REFERENCES reports(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_spares_used_report ON spares_used(report_id);

-- Shared spares inventory, independently lifecycled master data
CREATE TABLE IF NOT EXISTS spares_inventory (
	art_number TEXT PRIMARY KEY,
	description TEXT,
	location TEXT,
	category TEXT,
	stock_level INTEGER NOT NULL DEFAULT 0,
	min_stock_level INTEGER NOT NULL DEFAULT 0
);
`

// InitSchema creates the database schema
func InitSchema() error {
	db, err := GetDB()
	if err != nil {
		return err
	}

	// Check if schema_version table exists to determine if this is a fresh install
	var tableCount int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount == 0 {
		// Completely fresh install - create the modern schema directly and
		// mark all migrations applied so they never run against it.
		if _, err := db.Exec(SchemaSQL); err != nil {
			return err
		}
		if _, err := db.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY,
				applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`); err != nil {
			return err
		}
		for _, m := range migrations {
			if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
				return err
			}
		}
		return nil
	}

	// schema_version table exists - run any pending migrations
	return RunMigrations()
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
