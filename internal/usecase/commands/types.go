package commands

type LoginInput struct {
	Email    string
	Password string
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

type UpdateProfileInput struct {
	Name        string
	PhoneNumber string
}

// BookRoomInput carries dates as entered; they are priced leniently.
type BookRoomInput struct {
	HotelID         string
	RoomTypeID      string
	CheckIn         string
	CheckOut        string
	GuestCount      int
	SpecialRequests string
}
