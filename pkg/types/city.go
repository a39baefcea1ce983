package types

// ClassCity is the City variant name.
const ClassCity = "City"

// City represents a city within a state. StateID holds the id of the
// owning State; referential integrity is not enforced.
type City struct {
	Base
	StateID string
	Name    string
}

// NewCity returns a fresh City with a generated id and current timestamps.
func NewCity() *City {
	return &City{Base: NewBase()}
}

// Class returns the variant name.
func (c *City) Class() string { return ClassCity }

// Key returns the composite registry key.
func (c *City) Key() string { return key(ClassCity, c.ID) }

// ToMap returns the transport map for this city.
func (c *City) ToMap() map[string]any {
	m := c.baseMap(ClassCity)
	m["state_id"] = c.StateID
	m["name"] = c.Name
	return m
}

func (c *City) String() string { return recordString(c) }

// decodeCity reconstructs a City from a transport map.
func decodeCity(m map[string]any) (Record, error) {
	b, err := baseFromMap(m)
	if err != nil {
		return nil, err
	}
	return &City{
		Base:    b,
		StateID: stringField(m, "state_id"),
		Name:    stringField(m, "name"),
	}, nil
}
