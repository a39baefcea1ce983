package types

import (
	"fmt"
	"strconv"
)

// protectedFields cannot be changed through SetField. Identity and
// timestamps are owned by the base contract; the discriminator is not a
// field at all.
var protectedFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	ClassKey:     true,
}

// SetField returns a copy of r with the named field set from its string
// form, preserving identity and timestamps. The raw value is parsed
// according to the field's declared type: strings verbatim, integers via
// strconv.Atoi, floats via strconv.ParseFloat. List fields and unknown
// names are rejected with ErrUnknownField, protected names with
// ErrFieldProtected, unparsable values with ErrBadValue.
//
// The returned record replaces the original: re-register it and flush to
// persist the change.
func SetField(r Record, name, raw string) (Record, error) {
	if protectedFields[name] {
		return nil, fmt.Errorf("%w: %q", ErrFieldProtected, name)
	}

	m := r.ToMap()
	current, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no field %q", ErrUnknownField, r.Class(), name)
	}

	switch current.(type) {
	case string:
		m[name] = raw
	case int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q is not an integer", ErrBadValue, name, raw)
		}
		m[name] = n
	case float64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q is not a number", ErrBadValue, name, raw)
		}
		m[name] = f
	default:
		// List fields (amenity_ids) have no single-value string form.
		return nil, fmt.Errorf("%w: %q cannot be set from a string", ErrUnknownField, name)
	}

	return Decode(m)
}
