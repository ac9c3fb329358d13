//go:build unit || e2e

package builder

import (
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID              uuid.UUID
	Email           string
	Name            string
	PhoneNumber     string
	ProfileImageURL string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:          uuid.New(),
		Email:       "budi@example.com",
		Name:        "Budi",
		PhoneNumber: user.DefaultPhoneNumber,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() *user.User {
	return user.ReconstructUser(u.ID, user.NewEmail(u.Email), u.Name, u.PhoneNumber, u.ProfileImageURL)
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:              u.ID,
		Email:           u.Email,
		Name:            u.Name,
		PhoneNumber:     u.PhoneNumber,
		ProfileImageURL: u.ProfileImageURL,
	}
}
