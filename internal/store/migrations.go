package store

import (
	"database/sql"
	"fmt"

	"krishimitra/internal/logging"
)

// Schema versions:
// v1: tasks and exchanges
// v2: model_traces for gateway tracing
// v3: tasks.source records whether a task came from local rules or the model
const CurrentSchemaVersion = 3

// Migration is one versioned schema step.
type Migration struct {
	Version     int
	Description string
	Apply       func(db *sql.DB) error
}

var migrations = []Migration{
	{1, "tasks and exchanges", migrateV1},
	{2, "model traces", migrateV2},
	{3, "task source column", migrateV3},
}

func migrateV1(db *sql.DB) error {
	_, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS tasks (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		priority TEXT NOT NULL,
		category TEXT NOT NULL,
		due_date TEXT NOT NULL DEFAULT '',
		due_time TEXT NOT NULL DEFAULT '',
		completed INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		completed_at TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_tasks_completed ON tasks(completed);
	CREATE INDEX IF NOT EXISTS idx_tasks_due ON tasks(due_date, due_time);

	CREATE TABLE IF NOT EXISTS exchanges (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		role TEXT NOT NULL,
		text TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_exchanges_session ON exchanges(session_id, id);
	`)
	return err
}

func migrateV2(db *sql.DB) error {
	_, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS model_traces (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL DEFAULT '',
		model TEXT NOT NULL,
		prompt TEXT NOT NULL,
		response TEXT NOT NULL,
		error_message TEXT NOT NULL DEFAULT '',
		duration_ms INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_traces_session ON model_traces(session_id);
	CREATE INDEX IF NOT EXISTS idx_traces_created ON model_traces(created_at);
	`)
	return err
}

func migrateV3(db *sql.DB) error {
	if columnExists(db, "tasks", "source") {
		logging.StoreDebug("Column already exists, skipping: tasks.source")
		return nil
	}
	_, err := db.Exec("ALTER TABLE tasks ADD COLUMN source TEXT NOT NULL DEFAULT 'local'")
	return err
}

// RunMigrations applies every migration newer than the recorded version.
func RunMigrations(db *sql.DB) error {
	timer := logging.StartTimer(logging.CategoryStore, "RunMigrations")
	defer timer.Stop()

	current := GetSchemaVersion(db)
	applied := 0
	for _, m := range migrations {
		if m.Version <= current {
			continue
		}
		logging.StoreDebug("Applying migration v%d: %s", m.Version, m.Description)
		if err := m.Apply(db); err != nil {
			return fmt.Errorf("migration v%d (%s) failed: %w", m.Version, m.Description, err)
		}
		if err := SetSchemaVersion(db, m.Version, m.Description); err != nil {
			return err
		}
		applied++
	}

	if applied > 0 {
		logging.Store("Schema migrations complete: applied=%d, version=%d", applied, CurrentSchemaVersion)
	}
	return nil
}

// columnExists checks if a column exists in a table using PRAGMA table_info.
func columnExists(db *sql.DB, table, column string) bool {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		logging.StoreDebug("PRAGMA table_info(%s) failed: %v", table, err)
		return false
	}
	defer rows.Close()

	for rows.Next() {
		var cid int
		var name, ctype string
		var notnull, pk int
		var dfltValue interface{}
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dfltValue, &pk); err != nil {
			continue
		}
		if name == column {
			return true
		}
	}
	return false
}

// tableExists checks if a table exists in the database.
func tableExists(db *sql.DB, table string) bool {
	var count int
	query := "SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?"
	if err := db.QueryRow(query, table).Scan(&count); err != nil {
		logging.StoreDebug("Table existence check failed for %s: %v", table, err)
		return false
	}
	return count > 0
}

// GetSchemaVersion returns the highest applied schema version, 0 for a new database.
func GetSchemaVersion(db *sql.DB) int {
	if !tableExists(db, "schema_versions") {
		return 0
	}
	var version sql.NullInt64
	if err := db.QueryRow("SELECT MAX(version) FROM schema_versions").Scan(&version); err != nil {
		logging.StoreDebug("Failed to read schema version: %v", err)
		return 0
	}
	return int(version.Int64)
}

// SetSchemaVersion records a schema version in the database.
func SetSchemaVersion(db *sql.DB, version int, description string) error {
	createTable := `
		CREATE TABLE IF NOT EXISTS schema_versions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			version INTEGER NOT NULL,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			description TEXT
		)
	`
	if _, err := db.Exec(createTable); err != nil {
		return fmt.Errorf("failed to create schema_versions table: %w", err)
	}
	if _, err := db.Exec(
		"INSERT INTO schema_versions (version, description) VALUES (?, ?)",
		version, description,
	); err != nil {
		return fmt.Errorf("failed to record schema version: %w", err)
	}
	logging.StoreDebug("Schema version set to %d", version)
	return nil
}
