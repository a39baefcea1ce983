package types

// ClassState is the State variant name.
const ClassState = "State"

// State represents a top-level geographic region. Cities reference it
// through their StateID field.
type State struct {
	Base
	Name string
}

// NewState returns a fresh State with a generated id and current timestamps.
func NewState() *State {
	return &State{Base: NewBase()}
}

// Class returns the variant name.
func (s *State) Class() string { return ClassState }

// Key returns the composite registry key.
func (s *State) Key() string { return key(ClassState, s.ID) }

// ToMap returns the transport map for this state.
func (s *State) ToMap() map[string]any {
	m := s.baseMap(ClassState)
	m["name"] = s.Name
	return m
}

func (s *State) String() string { return recordString(s) }

// decodeState reconstructs a State from a transport map.
func decodeState(m map[string]any) (Record, error) {
	b, err := baseFromMap(m)
	if err != nil {
		return nil, err
	}
	return &State{
		Base: b,
		Name: stringField(m, "name"),
	}, nil
}
