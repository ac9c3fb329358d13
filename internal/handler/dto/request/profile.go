package request

import (
	"hotel-booking/internal/pkg/patch"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"
)

type UpdateProfileRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	PhoneNumber *string `json:"phone_number" binding:"omitempty,max=32"`
}

// ToInput fills omitted fields from the current profile.
func (r *UpdateProfileRequest) ToInput(current *queries.UserView) commands.UpdateProfileInput {
	return commands.UpdateProfileInput{
		Name:        patch.Coalesce(r.Name, current.Name),
		PhoneNumber: patch.Coalesce(r.PhoneNumber, current.PhoneNumber),
	}
}

func (r *UpdateProfileRequest) IsEmpty() bool {
	return r.Name == nil && r.PhoneNumber == nil
}
