package request

import (
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/usecase/commands"
)

// CreateBookingRequest leaves dates optional: blank dates default to
// tomorrow and the day after.
type CreateBookingRequest struct {
	HotelID         string `json:"hotel_id" binding:"required"`
	RoomTypeID      string `json:"room_type_id" binding:"required"`
	CheckIn         string `json:"check_in"`
	CheckOut        string `json:"check_out"`
	GuestCount      int    `json:"guest_count"`
	PaymentMethodID string `json:"payment_method_id"`
	SpecialRequests string `json:"special_requests" binding:"max=500"`
}

func (r *CreateBookingRequest) ToValidationInput() booking.RequestInput {
	return booking.RequestInput{
		CheckIn:               r.CheckIn,
		CheckOut:              r.CheckOut,
		GuestCount:            r.GuestCount,
		PaymentMethodSelected: r.PaymentMethodID != "",
	}
}

func (r *CreateBookingRequest) ToInput(v booking.ValidatedRequest) commands.BookRoomInput {
	return commands.BookRoomInput{
		HotelID:         r.HotelID,
		RoomTypeID:      r.RoomTypeID,
		CheckIn:         v.Dates.CheckIn(),
		CheckOut:        v.Dates.CheckOut(),
		GuestCount:      v.GuestCount.Int(),
		SpecialRequests: r.SpecialRequests,
	}
}
