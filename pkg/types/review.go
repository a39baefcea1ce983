package types

// ClassReview is the Review variant name.
const ClassReview = "Review"

// Review represents guest feedback on a place. PlaceID and UserID
// reference the reviewed Place and the reviewing User.
type Review struct {
	Base
	PlaceID string
	UserID  string
	Text    string
}

// NewReview returns a fresh Review with a generated id and current
// timestamps.
func NewReview() *Review {
	return &Review{Base: NewBase()}
}

// Class returns the variant name.
func (r *Review) Class() string { return ClassReview }

// Key returns the composite registry key.
func (r *Review) Key() string { return key(ClassReview, r.ID) }

// ToMap returns the transport map for this review.
func (r *Review) ToMap() map[string]any {
	m := r.baseMap(ClassReview)
	m["place_id"] = r.PlaceID
	m["user_id"] = r.UserID
	m["text"] = r.Text
	return m
}

func (r *Review) String() string { return recordString(r) }

// decodeReview reconstructs a Review from a transport map.
func decodeReview(m map[string]any) (Record, error) {
	b, err := baseFromMap(m)
	if err != nil {
		return nil, err
	}
	return &Review{
		Base:    b,
		PlaceID: stringField(m, "place_id"),
		UserID:  stringField(m, "user_id"),
		Text:    stringField(m, "text"),
	}, nil
}
