package models

import "slices"

// Person is a stored phonebook record. Password always holds a bcrypt hash.
type Person struct {
	ID       string
	Name     string
	Email    string
	Password string
	Street   string
	City     string
	Phone    *string
	Avatar   *string
	Favs     []string
}

// PersonDraft is the input for creating a Person. Password is plaintext and
// must be hashed before the record is stored.
type PersonDraft struct {
	Name     string
	Email    string
	Password string
	Street   string
	City     string
	Phone    *string
	Avatar   *string
}

// Address is the derived street/city pair of a Person.
type Address struct {
	Street string
	City   string
}

// HasPhone reports whether a non-empty phone number is set.
func (p Person) HasPhone() bool {
	return p.Phone != nil && *p.Phone != ""
}

// Address assembles the derived address value.
func (p Person) Address() Address {
	return Address{Street: p.Street, City: p.City}
}

// WithPhone returns a copy of p whose phone is replaced; every other field
// is carried over unchanged.
func (p Person) WithPhone(phone string) Person {
	return Person{
		ID:       p.ID,
		Name:     p.Name,
		Email:    p.Email,
		Password: p.Password,
		Street:   p.Street,
		City:     p.City,
		Phone:    &phone,
		Avatar:   cloneString(p.Avatar),
		Favs:     slices.Clone(p.Favs),
	}
}

// Clone returns a deep copy of p.
func (p Person) Clone() Person {
	c := p
	c.Phone = cloneString(p.Phone)
	c.Avatar = cloneString(p.Avatar)
	c.Favs = slices.Clone(p.Favs)
	return c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
