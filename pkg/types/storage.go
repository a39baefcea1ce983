package types

import "errors"

// Storage holds the live registry of records and moves it between memory
// and durable form as a whole. One Storage instance serves the process;
// Reload establishes the initial state and should run before other
// operations.
type Storage interface {
	// All returns the live key-to-record registry, not a copy. Callers
	// iterate it directly and may delete entries in place; a Save call
	// afterwards makes the change durable.
	All() map[string]Record

	// New inserts or overwrites the entry at the record's composite key.
	// Last write wins; there is no version check.
	New(r Record)

	// Save flushes the entire registry to the backing store, replacing
	// prior contents. IO failures are returned, never swallowed.
	Save() error

	// Reload replaces in-memory state from the backing store. An absent
	// store is a no-op, not an error. Malformed content yields
	// ErrBadSnapshot, an unrecognized discriminator ErrUnknownClass, and
	// in both cases the registry is left exactly as it was before the
	// call.
	Reload() error

	// Close releases backend resources. Safe to call more than once.
	Close() error
}

// Supported backend names.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendFile:   true,
	BackendSQLite: true,
}

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
)

// ErrBadSnapshot reports a persisted snapshot that cannot be parsed.
var ErrBadSnapshot = errors.New("malformed snapshot")

// Config holds backend selection and parameters for opening a Storage.
type Config struct {
	Backend string `json:"backend" yaml:"backend"`
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// Validate checks that the Config is well-formed, returning a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	return nil
}
