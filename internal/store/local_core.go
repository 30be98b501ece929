// Package store persists krishi's host state in SQLite: the farmer's task
// list, chat exchanges per session and model call traces. The engine never
// touches the store; the session layer reads from it before resolving and
// writes the applied decisions back.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"krishimitra/internal/logging"
)

// ErrTaskNotFound is returned when a task id does not exist.
var ErrTaskNotFound = errors.New("task not found")

// ErrAmbiguousID is returned when an id prefix matches more than one task.
var ErrAmbiguousID = errors.New("task id prefix is ambiguous")

// Fixed-width so stored timestamps sort lexically.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// LocalStore is the SQLite-backed task and history store.
//
// Tables:
//   - tasks: the farmer's to-do list
//   - exchanges: user/assistant messages keyed by chat session
//   - model_traces: one row per model gateway call
type LocalStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	dbPath string
	now    func() time.Time
}

// NewLocalStore opens (creating if needed) the database at path and brings
// its schema up to date. ":memory:" opens a private in-memory database.
func NewLocalStore(path string, busyTimeout time.Duration) (*LocalStore, error) {
	timer := logging.StartTimer(logging.CategoryStore, "NewLocalStore")
	defer timer.Stop()

	logging.Store("Initializing LocalStore at path: %s", path)

	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			logging.Get(logging.CategoryStore).Error("Failed to create directory %s: %v", dir, err)
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		logging.Get(logging.CategoryStore).Error("Failed to open database at %s: %v", path, err)
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if busyTimeout <= 0 {
		busyTimeout = 5 * time.Second
	}
	if _, err := db.Exec(fmt.Sprintf("PRAGMA busy_timeout = %d", busyTimeout.Milliseconds())); err != nil {
		logging.StoreDebug("Failed to set sqlite busy_timeout: %v", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		logging.StoreDebug("Failed to set sqlite journal_mode=WAL: %v", err)
	}
	if _, err := db.Exec("PRAGMA synchronous = NORMAL"); err != nil {
		logging.StoreDebug("Failed to set sqlite synchronous=NORMAL: %v", err)
	}

	store := &LocalStore{db: db, dbPath: path, now: time.Now}
	if err := RunMigrations(db); err != nil {
		logging.Get(logging.CategoryStore).Error("Failed to initialize schema: %v", err)
		db.Close()
		return nil, err
	}

	logging.Store("LocalStore ready (schema v%d)", GetSchemaVersion(db))
	return store, nil
}

// Close closes the database.
func (s *LocalStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	logging.StoreDebug("Closing LocalStore: %s", s.dbPath)
	return s.db.Close()
}

// Path returns the database path.
func (s *LocalStore) Path() string {
	return s.dbPath
}

// Ping checks the database connection.
func (s *LocalStore) Ping() error {
	return s.db.Ping()
}

// GetStats returns row counts per table.
func (s *LocalStore) GetStats() (map[string]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := make(map[string]int64)
	for _, table := range []string{"tasks", "exchanges", "model_traces"} {
		var count int64
		if err := s.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", table, err)
		}
		stats[table] = count
	}
	return stats, nil
}

func (s *LocalStore) timestamp() string {
	return s.now().UTC().Format(timestampLayout)
}

func parseTimestamp(v string) time.Time {
	t, err := time.Parse(timestampLayout, v)
	if err != nil {
		return time.Time{}
	}
	return t
}
