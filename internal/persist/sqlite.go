package persist

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/extents/pkg/types"
)

// SQLiteFile is the database file name inside the data directory.
const SQLiteFile = "extents.db"

const (
	createSaves = `CREATE TABLE IF NOT EXISTS saves (
    save_id TEXT PRIMARY KEY,
    resource TEXT NOT NULL,
    saved_at TEXT NOT NULL,
    record_count INTEGER NOT NULL
);`

	createRecords = `CREATE TABLE IF NOT EXISTS records (
    save_id TEXT NOT NULL REFERENCES saves(save_id) ON DELETE CASCADE,
    ordinal INTEGER NOT NULL,
    payload TEXT NOT NULL,
    PRIMARY KEY (save_id, ordinal)
);`

	createSavesIndex = `CREATE INDEX IF NOT EXISTS idx_saves_resource ON saves(resource);`
)

// SQLite keeps every resource in one database. Each Write is a generation
// identified by a UUID v7 and replaces the previous generation for that
// resource in a single transaction.
type SQLite struct {
	path string
	db   *sql.DB
}

// OpenSQLite opens or creates <dir>/extents.db and applies the schema.
func OpenSQLite(dir string) (*SQLite, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}
	path := filepath.Join(dir, SQLiteFile)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	for _, stmt := range []string{"PRAGMA foreign_keys = ON;", createSaves, createRecords, createSavesIndex} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("initializing %s: %w", path, err)
		}
	}
	return &SQLite{path: path, db: db}, nil
}

func (s *SQLite) Name() string { return types.BackendSQLite }

func (s *SQLite) Location(resource string) string {
	return s.path + "#" + resource
}

func (s *SQLite) Write(resource string, records []json.RawMessage) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM records WHERE save_id IN (SELECT save_id FROM saves WHERE resource = ?)`, resource); err != nil {
		return fmt.Errorf("clearing records: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM saves WHERE resource = ?`, resource); err != nil {
		return fmt.Errorf("clearing saves: %w", err)
	}

	saveID := generateSaveID()
	savedAt := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := tx.Exec(`INSERT INTO saves (save_id, resource, saved_at, record_count) VALUES (?, ?, ?, ?)`,
		saveID, resource, savedAt, len(records)); err != nil {
		return fmt.Errorf("inserting save: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO records (save_id, ordinal, payload) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()
	for i, rec := range records {
		if _, err := stmt.Exec(saveID, i, string(rec)); err != nil {
			return fmt.Errorf("inserting record %d: %w", i, err)
		}
	}
	return tx.Commit()
}

func (s *SQLite) Read(resource string) ([]json.RawMessage, error) {
	var saveID string
	err := s.db.QueryRow(`SELECT save_id FROM saves WHERE resource = ? ORDER BY saved_at DESC LIMIT 1`, resource).Scan(&saveID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding latest save: %w", err)
	}

	rows, err := s.db.Query(`SELECT payload FROM records WHERE save_id = ? ORDER BY ordinal`, saveID)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		if !json.Valid([]byte(payload)) {
			continue
		}
		records = append(records, json.RawMessage(payload))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}
	return records, nil
}

// Generations returns the save ID and record count of the current generation
// of every resource, keyed by resource.
func (s *SQLite) Generations() (map[string]Generation, error) {
	rows, err := s.db.Query(`SELECT resource, save_id, saved_at, record_count FROM saves`)
	if err != nil {
		return nil, fmt.Errorf("querying saves: %w", err)
	}
	defer rows.Close()

	out := make(map[string]Generation)
	for rows.Next() {
		var (
			g       Generation
			savedAt string
		)
		if err := rows.Scan(&g.Resource, &g.SaveID, &savedAt, &g.Records); err != nil {
			return nil, fmt.Errorf("scanning save: %w", err)
		}
		g.SavedAt, _ = time.Parse(time.RFC3339Nano, savedAt)
		out[g.Resource] = g
	}
	return out, rows.Err()
}

// Generation describes one stored snapshot.
type Generation struct {
	Resource string
	SaveID   string
	SavedAt  time.Time
	Records  int
}

func (s *SQLite) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// generateSaveID returns a UUID v7 so generations sort by creation time.
func generateSaveID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
