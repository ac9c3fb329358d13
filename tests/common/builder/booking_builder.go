//go:build unit || e2e

package builder

import (
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/money"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	HotelID         string
	HotelName       string
	RoomTypeID      string
	RoomTypeName    string
	CheckIn         string
	CheckOut        string
	TotalPrice      int64
	Status          booking.Status
	GuestCount      int
	SpecialRequests string
	BookingDate     string
	PaymentMethodID string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:              uuid.New(),
		UserID:          uuid.New(),
		HotelID:         "1",
		HotelName:       "Grand Royal Hotel",
		RoomTypeID:      "1-1",
		RoomTypeName:    "Deluxe Room",
		CheckIn:         "2025-06-01",
		CheckOut:        "2025-06-03",
		TotalPrice:      3000000,
		Status:          booking.StatusConfirmed,
		GuestCount:      2,
		SpecialRequests: "",
		BookingDate:     "2025-05-20",
		PaymentMethodID: "1",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.Reconstruct(booking.Snapshot{
		ID:              b.ID,
		UserID:          b.UserID,
		HotelID:         b.HotelID,
		HotelName:       b.HotelName,
		RoomTypeID:      b.RoomTypeID,
		RoomTypeName:    b.RoomTypeName,
		CheckInDate:     b.CheckIn,
		CheckOutDate:    b.CheckOut,
		TotalPrice:      money.New(b.TotalPrice),
		Status:          b.Status,
		GuestCount:      b.GuestCount,
		SpecialRequests: b.SpecialRequests,
		BookingDate:     b.BookingDate,
	})
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:              b.ID,
		UserID:          b.UserID,
		HotelID:         b.HotelID,
		HotelName:       b.HotelName,
		RoomTypeID:      b.RoomTypeID,
		RoomTypeName:    b.RoomTypeName,
		CheckInDate:     b.CheckIn,
		CheckOutDate:    b.CheckOut,
		TotalPrice:      b.TotalPrice,
		Status:          b.Status.String(),
		GuestCount:      b.GuestCount,
		SpecialRequests: b.SpecialRequests,
		BookingDate:     b.BookingDate,
	}
}

func (b *BookingBuilder) BuildInput() commands.BookRoomInput {
	return commands.BookRoomInput{
		HotelID:         b.HotelID,
		RoomTypeID:      b.RoomTypeID,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		GuestCount:      b.GuestCount,
		SpecialRequests: b.SpecialRequests,
	}
}

func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		HotelID:         b.HotelID,
		RoomTypeID:      b.RoomTypeID,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		GuestCount:      b.GuestCount,
		PaymentMethodID: b.PaymentMethodID,
		SpecialRequests: b.SpecialRequests,
	}
}
