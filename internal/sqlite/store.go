// Package sqlite implements the SQLite storage engine for Lodge. Records
// keep the same transport-map wire form as the flat-file engine; each
// registry entry becomes one row holding the map as a JSON payload.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/lodge/pkg/types"
)

// DatabaseFileName is the SQLite database file inside the data directory.
const DatabaseFileName = "lodge.db"

// schemaSQL creates the single records table. The payload column holds
// the record's transport map as JSON, so both engines share one wire
// format and one decode path.
const schemaSQL = `CREATE TABLE IF NOT EXISTS records (
    key TEXT PRIMARY KEY,
    class TEXT NOT NULL,
    payload TEXT NOT NULL
);`

// Store is the SQLite storage engine. Like the flat-file engine it keeps
// the live registry in memory and rewrites the full record set on Save.
type Store struct {
	db      *sql.DB
	objects map[string]types.Record
}

// NewStore opens (creating if needed) <dataDir>/lodge.db and ensures the
// schema exists. The registry starts empty; call Reload to pick up rows
// from a previous session.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, DatabaseFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{
		db:      db,
		objects: make(map[string]types.Record),
	}, nil
}

// All returns the live registry. Mutations to the returned map affect
// the store directly.
func (s *Store) All() map[string]types.Record {
	return s.objects
}

// New inserts or overwrites the entry at the record's composite key.
func (s *Store) New(r types.Record) {
	s.objects[r.Key()] = r
}

// Save rewrites the records table from the registry in one transaction:
// delete everything, insert every record's transport map as JSON.
func (s *Store) Save() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin flush: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM records`); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear records: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO records (key, class, payload) VALUES (?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for k, r := range s.objects {
		payload, err := json.Marshal(r.ToMap())
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("encode %s: %w", k, err)
		}
		if _, err := stmt.Exec(k, r.Class(), string(payload)); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert %s: %w", k, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit flush: %w", err)
	}
	return nil
}

// Reload replaces the registry with the table's contents. An empty table
// leaves an empty registry. A payload that fails to parse yields
// ErrBadSnapshot and an unknown discriminator ErrUnknownClass; in every
// failure case the registry is left exactly as it was before the call.
func (s *Store) Reload() error {
	rows, err := s.db.Query(`SELECT key, payload FROM records`)
	if err != nil {
		return fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	staged := make(map[string]types.Record)
	for rows.Next() {
		var k, payload string
		if err := rows.Scan(&k, &payload); err != nil {
			return fmt.Errorf("scan record: %w", err)
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(payload), &m); err != nil {
			return fmt.Errorf("%w: row %s: %v", types.ErrBadSnapshot, k, err)
		}
		r, err := types.Decode(m)
		if err != nil {
			return fmt.Errorf("decode %s: %w", k, err)
		}
		staged[k] = r
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate records: %w", err)
	}

	s.objects = staged
	return nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
