// Shared helpers for lodge CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/lodge/internal/jsonfile"
	"github.com/mesh-intelligence/lodge/internal/sqlite"
	"github.com/mesh-intelligence/lodge/pkg/types"
)

// validClassesStr is a comma-separated list of valid record classes for
// error output.
var validClassesStr = strings.Join(types.Classes(), ", ")

// openStore resolves configuration, opens the selected storage backend,
// and replays the previous session's state via Reload. The caller must
// defer store.Close().
func openStore() (types.Storage, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: resolveBackend(),
		DataDir: dataDir,
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	var store types.Storage
	switch cfg.Backend {
	case types.BackendFile:
		store, err = jsonfile.NewStore(cfg.DataDir)
	case types.BackendSQLite:
		store, err = sqlite.NewStore(cfg.DataDir)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s backend: %w", cfg.Backend, err)
	}

	if err := store.Reload(); err != nil {
		store.Close()
		return nil, fmt.Errorf("reload: %w", err)
	}
	return store, nil
}

// requireClass validates a class-name argument against the known set.
func requireClass(name string) error {
	if !types.KnownClass(name) {
		return fmt.Errorf("unknown class %q (valid: %s)", name, validClassesStr)
	}
	return nil
}

// lookupRecord finds the record for a class and id in the store.
func lookupRecord(store types.Storage, class, id string) (types.Record, string, error) {
	if err := requireClass(class); err != nil {
		return nil, "", err
	}
	k := class + "." + id
	r, ok := store.All()[k]
	if !ok {
		return nil, "", fmt.Errorf("%s %q not found", class, id)
	}
	return r, k, nil
}

// printRecord writes a record in the selected output form: the
// diagnostic string, or the transport map as indented JSON when --json
// is set.
func printRecord(r types.Record) error {
	if !flagJSON {
		fmt.Println(r.String())
		return nil
	}
	out, err := json.MarshalIndent(r.ToMap(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
