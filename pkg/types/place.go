package types

// ClassPlace is the Place variant name.
const ClassPlace = "Place"

// Place represents a rental listing. CityID and UserID reference the
// containing City and owning User; AmenityIDs lists Amenity ids. None of
// the references are enforced.
type Place struct {
	Base
	CityID          string
	UserID          string
	Name            string
	Description     string
	NumberRooms     int
	NumberBathrooms int
	MaxGuest        int
	PriceByNight    int
	Latitude        float64
	Longitude       float64
	AmenityIDs      []string
}

// NewPlace returns a fresh Place with a generated id, current timestamps,
// and an empty amenity list.
func NewPlace() *Place {
	return &Place{Base: NewBase(), AmenityIDs: []string{}}
}

// Class returns the variant name.
func (p *Place) Class() string { return ClassPlace }

// Key returns the composite registry key.
func (p *Place) Key() string { return key(ClassPlace, p.ID) }

// ToMap returns the transport map for this place.
func (p *Place) ToMap() map[string]any {
	amenities := p.AmenityIDs
	if amenities == nil {
		amenities = []string{}
	}
	m := p.baseMap(ClassPlace)
	m["city_id"] = p.CityID
	m["user_id"] = p.UserID
	m["name"] = p.Name
	m["description"] = p.Description
	m["number_rooms"] = p.NumberRooms
	m["number_bathrooms"] = p.NumberBathrooms
	m["max_guest"] = p.MaxGuest
	m["price_by_night"] = p.PriceByNight
	m["latitude"] = p.Latitude
	m["longitude"] = p.Longitude
	m["amenity_ids"] = amenities
	return m
}

func (p *Place) String() string { return recordString(p) }

// decodePlace reconstructs a Place from a transport map.
func decodePlace(m map[string]any) (Record, error) {
	b, err := baseFromMap(m)
	if err != nil {
		return nil, err
	}
	return &Place{
		Base:            b,
		CityID:          stringField(m, "city_id"),
		UserID:          stringField(m, "user_id"),
		Name:            stringField(m, "name"),
		Description:     stringField(m, "description"),
		NumberRooms:     intField(m, "number_rooms"),
		NumberBathrooms: intField(m, "number_bathrooms"),
		MaxGuest:        intField(m, "max_guest"),
		PriceByNight:    intField(m, "price_by_night"),
		Latitude:        floatField(m, "latitude"),
		Longitude:       floatField(m, "longitude"),
		AmenityIDs:      stringListField(m, "amenity_ids"),
	}, nil
}
