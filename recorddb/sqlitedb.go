package recorddb

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const createRecordsTable = `
	CREATE TABLE IF NOT EXISTS records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		entity_key TEXT NOT NULL,
		indicator_type TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		value TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_records_entity_key ON records(entity_key);
`

// createDB opens the SQLite database and makes sure the schema exists
func createDB(config Config) (*sql.DB, error) {
	db, err := sql.Open("sqlite", config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Every connection to ":memory:" is a separate database.
	if config.DBPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec(createRecordsTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error creating records table: %w", err)
	}

	return db, nil
}
