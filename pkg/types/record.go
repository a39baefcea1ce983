package types

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TimeLayout is the wire format for record timestamps: ISO-8601 with
// microsecond precision, no zone suffix. Timestamps are always UTC.
const TimeLayout = "2006-01-02T15:04:05.000000"

// timeLayoutNoMicros is accepted on decode for snapshots written without
// fractional seconds.
const timeLayoutNoMicros = "2006-01-02T15:04:05"

// ClassKey is the discriminator key in a record's transport map.
const ClassKey = "__class__"

// Record decode and field errors.
var (
	ErrUnknownClass   = errors.New("unknown record class")
	ErrBadTimestamp   = errors.New("malformed timestamp")
	ErrUnknownField   = errors.New("unknown field")
	ErrFieldProtected = errors.New("field is protected")
	ErrBadValue       = errors.New("invalid field value")
)

// Record is the contract every persisted entity satisfies: identity,
// timestamps, and transport-map conversion. Concrete variants embed Base
// and add their own fields.
type Record interface {
	fmt.Stringer

	// RecordID returns the record's unique id.
	RecordID() string

	// Class returns the variant name used as the map discriminator and
	// the first half of the registry key.
	Class() string

	// Key returns the composite registry key "<Class>.<id>".
	Key() string

	// Created returns the creation timestamp. Immutable after construction.
	Created() time.Time

	// Updated returns the last-modification timestamp.
	Updated() time.Time

	// Touch refreshes the modification timestamp to the current UTC time.
	Touch()

	// ToMap returns the transport map: every field under its wire name,
	// timestamps rendered with TimeLayout, plus the ClassKey discriminator.
	// Decode is its exact inverse.
	ToMap() map[string]any
}

// Base carries the identity and timestamp fields shared by every variant.
// Constructing a Base (or a variant embedding one) has no side effects;
// registration with a Storage is a separate, explicit step.
type Base struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// now returns the current UTC time truncated to the microsecond
// precision the wire format carries, so a record round-trips exactly.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// NewBase returns a Base with a fresh unique id and both timestamps set
// to the current UTC time.
func NewBase() Base {
	ts := now()
	return Base{
		ID:        newID(),
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

// newID generates a UUID v7 string, falling back to v4 if the system
// clock or entropy source fails.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// RecordID returns the record's unique id.
func (b *Base) RecordID() string { return b.ID }

// Created returns the creation timestamp.
func (b *Base) Created() time.Time { return b.CreatedAt }

// Updated returns the last-modification timestamp.
func (b *Base) Updated() time.Time { return b.UpdatedAt }

// Touch refreshes UpdatedAt to the current UTC time.
func (b *Base) Touch() { b.UpdatedAt = now() }

// baseMap starts a transport map with the identity, timestamp, and
// discriminator entries. Variant ToMap implementations add their own
// fields on top.
func (b *Base) baseMap(class string) map[string]any {
	return map[string]any{
		ClassKey:     class,
		"id":         b.ID,
		"created_at": b.CreatedAt.UTC().Format(TimeLayout),
		"updated_at": b.UpdatedAt.UTC().Format(TimeLayout),
	}
}

// baseFromMap reconstructs a Base from a transport map. Timestamps are
// parsed from TimeLayout (microseconds optional); a string that parses
// as neither layout yields ErrBadTimestamp.
func baseFromMap(m map[string]any) (Base, error) {
	created, err := parseTime(m, "created_at")
	if err != nil {
		return Base{}, err
	}
	updated, err := parseTime(m, "updated_at")
	if err != nil {
		return Base{}, err
	}
	return Base{
		ID:        stringField(m, "id"),
		CreatedAt: created,
		UpdatedAt: updated,
	}, nil
}

// parseTime reads key from m and parses it as an ISO-8601 timestamp.
// Values that have already been decoded to time.Time pass through.
func parseTime(m map[string]any, key string) (time.Time, error) {
	switch v := m[key].(type) {
	case time.Time:
		return v.UTC(), nil
	case string:
		if t, err := time.Parse(TimeLayout, v); err == nil {
			return t.UTC(), nil
		}
		if t, err := time.Parse(timeLayoutNoMicros, v); err == nil {
			return t.UTC(), nil
		}
		return time.Time{}, fmt.Errorf("%w: %s=%q", ErrBadTimestamp, key, v)
	default:
		return time.Time{}, fmt.Errorf("%w: %s=%v", ErrBadTimestamp, key, v)
	}
}

// key derives the composite registry key for a record.
func key(class, id string) string {
	return class + "." + id
}

// Save refreshes the record's modification timestamp, then flushes the
// store. Call after mutating record fields to make the change durable;
// mutations without Save are visible in memory only.
func Save(r Record, s Storage) error {
	r.Touch()
	return s.Save()
}

// recordString renders the diagnostic form "[<Class>] (<id>) <map>".
// The map portion uses Go's native map formatting and is not a stable
// interchange format.
func recordString(r Record) string {
	return fmt.Sprintf("[%s] (%s) %v", r.Class(), r.RecordID(), r.ToMap())
}
