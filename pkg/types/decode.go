package types

import (
	"fmt"
	"sort"
)

// decoders is the closed dispatch table from variant names to decoder
// functions. The discriminator comes from persisted data, so lookup is
// restricted to this fixed set; unknown names are rejected rather than
// resolved dynamically.
var decoders = map[string]func(map[string]any) (Record, error){
	ClassUser:    decodeUser,
	ClassState:   decodeState,
	ClassCity:    decodeCity,
	ClassAmenity: decodeAmenity,
	ClassPlace:   decodePlace,
	ClassReview:  decodeReview,
}

// Classes returns the known variant names in sorted order.
func Classes() []string {
	names := make([]string, 0, len(decoders))
	for name := range decoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// KnownClass reports whether name is a registered variant.
func KnownClass(name string) bool {
	_, ok := decoders[name]
	return ok
}

// Decode reconstructs a record from its transport map, dispatching on the
// ClassKey discriminator. The result is not registered with any Storage;
// the caller (normally a store's Reload) decides that.
// Returns ErrUnknownClass if the discriminator is missing or not in the
// dispatch table, and ErrBadTimestamp if a timestamp fails to parse.
func Decode(m map[string]any) (Record, error) {
	class, _ := m[ClassKey].(string)
	decode, ok := decoders[class]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownClass, class)
	}
	return decode(m)
}

// NewRecord constructs a fresh record of the named variant with zero-value
// field defaults. Returns ErrUnknownClass for unrecognized names.
func NewRecord(class string) (Record, error) {
	switch class {
	case ClassUser:
		return NewUser(), nil
	case ClassState:
		return NewState(), nil
	case ClassCity:
		return NewCity(), nil
	case ClassAmenity:
		return NewAmenity(), nil
	case ClassPlace:
		return NewPlace(), nil
	case ClassReview:
		return NewReview(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownClass, class)
	}
}

// Transport maps cross encoding/json, so numbers may arrive as float64
// and lists as []any. The field readers below coerce both the native and
// the post-JSON shapes; anything else falls back to the zero value.

// stringField reads a string field from a transport map.
func stringField(m map[string]any, name string) string {
	s, _ := m[name].(string)
	return s
}

// intField reads an integer field, accepting int, int64, and float64.
func intField(m map[string]any, name string) int {
	switch v := m[name].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

// floatField reads a float field, accepting float64 and int.
func floatField(m map[string]any, name string) float64 {
	switch v := m[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

// stringListField reads a list-of-strings field, accepting []string and
// the post-JSON []any form. Always returns a non-nil slice.
func stringListField(m map[string]any, name string) []string {
	switch v := m[name].(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}
