package response

import (
	"hotel-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID              string `json:"id" copier:"-"`
	Email           string `json:"email"`
	Name            string `json:"name"`
	PhoneNumber     string `json:"phone_number"`
	ProfileImageURL string `json:"profile_image_url"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	res := &UserResponse{}
	_ = copier.Copy(res, v)
	res.ID = v.ID.String()
	return res
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user"`
}
