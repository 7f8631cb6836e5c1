package state

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS radio_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			channel_index INTEGER NOT NULL DEFAULT 0,
			channel_id TEXT,
			volume INTEGER
		);

		CREATE TABLE IF NOT EXISTS channel_titles (
			video_id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			author TEXT,
			updated_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_channel_titles_updated ON channel_titles(updated_at DESC);
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}
