package types

// ClassAmenity is the Amenity variant name.
const ClassAmenity = "Amenity"

// Amenity represents a property feature that places reference through
// their AmenityIDs list.
type Amenity struct {
	Base
	Name string
}

// NewAmenity returns a fresh Amenity with a generated id and current
// timestamps.
func NewAmenity() *Amenity {
	return &Amenity{Base: NewBase()}
}

// Class returns the variant name.
func (a *Amenity) Class() string { return ClassAmenity }

// Key returns the composite registry key.
func (a *Amenity) Key() string { return key(ClassAmenity, a.ID) }

// ToMap returns the transport map for this amenity.
func (a *Amenity) ToMap() map[string]any {
	m := a.baseMap(ClassAmenity)
	m["name"] = a.Name
	return m
}

func (a *Amenity) String() string { return recordString(a) }

// decodeAmenity reconstructs an Amenity from a transport map.
func decodeAmenity(m map[string]any) (Record, error) {
	b, err := baseFromMap(m)
	if err != nil {
		return nil, err
	}
	return &Amenity{
		Base: b,
		Name: stringField(m, "name"),
	}, nil
}
