// Package jsonfile implements the flat-file storage engine for Lodge.
// The whole registry is serialized as a single JSON document of
// {"<Class>.<id>": <transport map>} entries and rewritten on every flush.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/lodge/pkg/types"
)

// SnapshotFileName is the file the registry is flushed to inside the
// data directory.
const SnapshotFileName = "records.json"

// Store is the JSON snapshot storage engine. It is not safe for
// concurrent use; Lodge targets one process and one caller.
type Store struct {
	path    string
	objects map[string]types.Record
}

// NewStore creates a Store backed by <dataDir>/records.json, creating
// dataDir if needed. The registry starts empty; call Reload to pick up a
// previous session's snapshot.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{
		path:    filepath.Join(dataDir, SnapshotFileName),
		objects: make(map[string]types.Record),
	}, nil
}

// Path returns the snapshot file path.
func (s *Store) Path() string { return s.path }

// All returns the live registry. Mutations to the returned map affect
// the store directly.
func (s *Store) All() map[string]types.Record {
	return s.objects
}

// New inserts or overwrites the entry at the record's composite key.
func (s *Store) New(r types.Record) {
	s.objects[r.Key()] = r
}

// Save serializes every record via ToMap and rewrites the snapshot file
// with the resulting document. The write goes through a temp file in the
// same directory followed by a rename, so a failed flush never leaves a
// truncated snapshot behind.
func (s *Store) Save() error {
	doc := make(map[string]map[string]any, len(s.objects))
	for k, r := range s.objects {
		doc[k] = r.ToMap()
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return writeAtomic(s.path, data)
}

// Reload replaces the registry with the snapshot file's contents. An
// absent file is a no-op. Malformed JSON yields ErrBadSnapshot and an
// unknown discriminator ErrUnknownClass; in every failure case the
// registry is left exactly as it was before the call.
func (s *Store) Reload() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read snapshot: %w", err)
	}

	var doc map[string]map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %s: %v", types.ErrBadSnapshot, s.path, err)
	}

	// Decode into a staging map so a bad entry cannot leave a partial
	// registry behind.
	staged := make(map[string]types.Record, len(doc))
	for k, m := range doc {
		r, err := types.Decode(m)
		if err != nil {
			return fmt.Errorf("decode %s: %w", k, err)
		}
		staged[k] = r
	}

	s.objects = staged
	return nil
}

// Close releases nothing; the snapshot file is only held open during
// Save and Reload.
func (s *Store) Close() error { return nil }

// writeAtomic writes data to path using the temp-file, fsync, rename
// pattern.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".snapshot-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
