package types

// ClassUser is the User variant name.
const ClassUser = "User"

// User represents an account holder. Field defaults are empty strings.
type User struct {
	Base
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// NewUser returns a fresh User with a generated id and current timestamps.
// The caller registers it with a Storage when persistence is wanted.
func NewUser() *User {
	return &User{Base: NewBase()}
}

// Class returns the variant name.
func (u *User) Class() string { return ClassUser }

// Key returns the composite registry key.
func (u *User) Key() string { return key(ClassUser, u.ID) }

// ToMap returns the transport map for this user.
func (u *User) ToMap() map[string]any {
	m := u.baseMap(ClassUser)
	m["email"] = u.Email
	m["password"] = u.Password
	m["first_name"] = u.FirstName
	m["last_name"] = u.LastName
	return m
}

func (u *User) String() string { return recordString(u) }

// decodeUser reconstructs a User from a transport map.
func decodeUser(m map[string]any) (Record, error) {
	b, err := baseFromMap(m)
	if err != nil {
		return nil, err
	}
	return &User{
		Base:      b,
		Email:     stringField(m, "email"),
		Password:  stringField(m, "password"),
		FirstName: stringField(m, "first_name"),
		LastName:  stringField(m, "last_name"),
	}, nil
}
