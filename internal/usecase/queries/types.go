package queries

import (
	"github.com/google/uuid"
)

// RoomTypeView represents read-optimized room type data
type RoomTypeView struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	PricePerNight int64    `json:"price_per_night"`
	MaxOccupancy  int      `json:"max_occupancy"`
	Amenities     []string `json:"amenities"`
	ImageURLs     []string `json:"image_urls"`
}

// HotelView represents read-optimized hotel data including its room types
type HotelView struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	ImageURL      string         `json:"image_url"`
	PricePerNight int64          `json:"price_per_night"`
	Rating        float64        `json:"rating"`
	Location      string         `json:"location"`
	Amenities     []string       `json:"amenities"`
	RoomTypes     []RoomTypeView `json:"room_types"`
}

func (h *HotelView) RoomType(id string) (*RoomTypeView, bool) {
	for i := range h.RoomTypes {
		if h.RoomTypes[i].ID == id {
			return &h.RoomTypes[i], true
		}
	}
	return nil, false
}

type PaymentMethodView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Icon string `json:"icon"`
}

type UserView struct {
	ID              uuid.UUID `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	PhoneNumber     string    `json:"phone_number"`
	ProfileImageURL string    `json:"profile_image_url"`
}

type BookingView struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	HotelID         string    `json:"hotel_id"`
	HotelName       string    `json:"hotel_name"`
	RoomTypeID      string    `json:"room_type_id"`
	RoomTypeName    string    `json:"room_type_name"`
	CheckInDate     string    `json:"check_in_date"`
	CheckOutDate    string    `json:"check_out_date"`
	TotalPrice      int64     `json:"total_price"`
	Status          string    `json:"status"`
	GuestCount      int       `json:"guest_count"`
	SpecialRequests string    `json:"special_requests"`
	BookingDate     string    `json:"booking_date"`
}

type SuggestionField string

const (
	SuggestionFieldName     SuggestionField = "name"
	SuggestionFieldLocation SuggestionField = "location"
)

// SuggestionView is a catalog name or location close to a missed query
type SuggestionView struct {
	Text     string          `json:"text"`
	Field    SuggestionField `json:"field"`
	HotelIDs []string        `json:"hotel_ids"`
	Score    float64         `json:"score"`
}
