package db

import (
	"database/sql"
	"fmt"
)

// SchemaVersion is the version recorded for databases created from SchemaSQL.
const SchemaVersion = 1

// SchemaSQL is the complete schema for the prompt catalog.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. Repository tests
// load it through GetSchemaSQL() instead of declaring their own tables.
const SchemaSQL = `
-- Campaign associations (raw rows; either column may hold comma-separated values)
CREATE TABLE IF NOT EXISTS campaign_associations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	campaign TEXT NOT NULL,
	flow_file TEXT NOT NULL,
	imported_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Index runs (one per "ivrprompts index")
CREATE TABLE IF NOT EXISTS index_runs (
	id TEXT PRIMARY KEY,
	flows_indexed INTEGER NOT NULL DEFAULT 0,
	flows_failed INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Prompt occurrences (pre-deduplication stream per flow file)
CREATE TABLE IF NOT EXISTS prompt_occurrences (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT NOT NULL,
	flow_file TEXT NOT NULL,
	seq INTEGER NOT NULL,
	prompt_id TEXT NOT NULL,
	prompt_name TEXT NOT NULL,
	module TEXT NOT NULL,
	prompt_type TEXT NOT NULL CHECK(prompt_type IN ('Announcement', 'Play')),
	status TEXT NOT NULL CHECK(status IN ('Enabled', 'Disabled', 'InUse', 'NotInUse')),
	audio_file TEXT NOT NULL,
	FOREIGN KEY (run_id) REFERENCES index_runs(id)
);

CREATE INDEX IF NOT EXISTS idx_prompt_occurrences_flow ON prompt_occurrences(flow_file);
CREATE INDEX IF NOT EXISTS idx_prompt_occurrences_prompt ON prompt_occurrences(prompt_id);
`

// InitSchema creates the schema on conn if it is not present yet.
func InitSchema(conn *sql.DB) error {
	if _, err := conn.Exec(SchemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	_, err := conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	_, err = conn.Exec("INSERT OR IGNORE INTO schema_version (version) VALUES (?)", SchemaVersion)
	if err != nil {
		return fmt.Errorf("failed to record schema version: %w", err)
	}

	return nil
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
func GetSchemaSQL() string {
	return SchemaSQL
}
