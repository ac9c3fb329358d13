package user

import (
	"github.com/google/uuid"
)

type User struct {
	id              uuid.UUID
	email           Email
	name            string
	phoneNumber     string
	profileImageURL string
}

func NewUser(email Email, name string) *User {
	return &User{
		id:          uuid.New(),
		email:       email,
		name:        name,
		phoneNumber: DefaultPhoneNumber,
	}
}

// NewUserFromEmail derives the display name from the address.
func NewUserFromEmail(email Email) *User {
	return NewUser(email, email.DisplayName())
}

func ReconstructUser(id uuid.UUID, email Email, name, phoneNumber, profileImageURL string) *User {
	return &User{
		id:              id,
		email:           email,
		name:            name,
		phoneNumber:     phoneNumber,
		profileImageURL: profileImageURL,
	}
}

// WithProfile returns a copy carrying the new name and phone number.
func (u *User) WithProfile(name, phoneNumber string) *User {
	next := *u
	next.name = name
	next.phoneNumber = phoneNumber
	return &next
}

func (u *User) ID() uuid.UUID           { return u.id }
func (u *User) Email() Email            { return u.email }
func (u *User) Name() string            { return u.name }
func (u *User) PhoneNumber() string     { return u.phoneNumber }
func (u *User) ProfileImageURL() string { return u.profileImageURL }
