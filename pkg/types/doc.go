// Package types defines the Record contract, the record variants, the
// Storage interface, and standard error types for the Lodge persistence
// system.
package types
