package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleRecords returns one populated record of every variant.
func sampleRecords() []Record {
	u := NewUser()
	u.Email = "betty@example.com"
	u.Password = "root"
	u.FirstName = "Betty"
	u.LastName = "Holberton"

	st := NewState()
	st.Name = "California"

	c := NewCity()
	c.StateID = st.ID
	c.Name = "San Francisco"

	a := NewAmenity()
	a.Name = "WiFi"

	p := NewPlace()
	p.CityID = c.ID
	p.UserID = u.ID
	p.Name = "Cozy Loft"
	p.Description = "Top floor, bay view"
	p.NumberRooms = 2
	p.NumberBathrooms = 1
	p.MaxGuest = 4
	p.PriceByNight = 120
	p.Latitude = 37.7749
	p.Longitude = -122.4194
	p.AmenityIDs = []string{a.ID}

	r := NewReview()
	r.PlaceID = p.ID
	r.UserID = u.ID
	r.Text = "Great stay"

	return []Record{u, st, c, a, p, r}
}

func TestDecodeRoundTrip(t *testing.T) {
	for _, r := range sampleRecords() {
		t.Run(r.Class(), func(t *testing.T) {
			decoded, err := Decode(r.ToMap())

			require.NoError(t, err)
			assert.Equal(t, r.ToMap(), decoded.ToMap())
			assert.Equal(t, r.RecordID(), decoded.RecordID())
			assert.True(t, r.Created().Equal(decoded.Created()))
			assert.True(t, r.Updated().Equal(decoded.Updated()))
		})
	}
}

func TestDecodeRoundTripZeroDefaults(t *testing.T) {
	zero := []Record{
		NewUser(), NewState(), NewCity(), NewAmenity(), NewPlace(), NewReview(),
	}
	for _, r := range zero {
		t.Run(r.Class(), func(t *testing.T) {
			decoded, err := Decode(r.ToMap())

			require.NoError(t, err)
			assert.Equal(t, r.ToMap(), decoded.ToMap())
		})
	}
}

// Transport maps that have crossed encoding/json carry float64 numbers
// and []any lists; decode must still reproduce the original map.
func TestDecodeRoundTripThroughJSON(t *testing.T) {
	for _, r := range sampleRecords() {
		t.Run(r.Class(), func(t *testing.T) {
			data, err := json.Marshal(r.ToMap())
			require.NoError(t, err)

			var m map[string]any
			require.NoError(t, json.Unmarshal(data, &m))

			decoded, err := Decode(m)
			require.NoError(t, err)
			assert.Equal(t, r.ToMap(), decoded.ToMap())
		})
	}
}

func TestDecodeUnknownClass(t *testing.T) {
	tests := []struct {
		name string
		m    map[string]any
	}{
		{
			name: "unregistered name",
			m: map[string]any{
				ClassKey:     "Ghost",
				"id":         "1",
				"created_at": "2023-01-01T00:00:00.000000",
				"updated_at": "2023-01-01T00:00:00.000000",
			},
		},
		{
			name: "missing discriminator",
			m:    map[string]any{"id": "1"},
		},
		{
			name: "non-string discriminator",
			m:    map[string]any{ClassKey: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.m)
			assert.ErrorIs(t, err, ErrUnknownClass)
		})
	}
}

func TestDecodeBadTimestamp(t *testing.T) {
	m := map[string]any{
		ClassKey:     ClassUser,
		"id":         "1",
		"created_at": "not-a-date",
		"updated_at": "2023-01-01T00:00:00.000000",
	}

	_, err := Decode(m)

	assert.ErrorIs(t, err, ErrBadTimestamp)
}

func TestClasses(t *testing.T) {
	assert.Equal(t,
		[]string{"Amenity", "City", "Place", "Review", "State", "User"},
		Classes())

	assert.True(t, KnownClass("User"))
	assert.False(t, KnownClass("Ghost"))
	assert.False(t, KnownClass(""))
}

func TestNewRecord(t *testing.T) {
	for _, class := range Classes() {
		t.Run(class, func(t *testing.T) {
			r, err := NewRecord(class)

			require.NoError(t, err)
			assert.Equal(t, class, r.Class())
			assert.NotEmpty(t, r.RecordID())
		})
	}

	_, err := NewRecord("Ghost")
	assert.ErrorIs(t, err, ErrUnknownClass)
}

func TestFieldCoercion(t *testing.T) {
	m := map[string]any{
		"s":    "text",
		"i":    float64(3),
		"i64":  int64(4),
		"f":    5,
		"list": []any{"a", "b"},
	}

	assert.Equal(t, "text", stringField(m, "s"))
	assert.Equal(t, "", stringField(m, "missing"))
	assert.Equal(t, 3, intField(m, "i"))
	assert.Equal(t, 4, intField(m, "i64"))
	assert.Equal(t, 0, intField(m, "missing"))
	assert.Equal(t, 5.0, floatField(m, "f"))
	assert.Equal(t, 0.0, floatField(m, "missing"))
	assert.Equal(t, []string{"a", "b"}, stringListField(m, "list"))
	assert.Equal(t, []string{}, stringListField(m, "missing"))
}
