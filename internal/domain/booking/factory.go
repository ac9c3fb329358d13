package booking

import (
	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

type Request struct {
	Dates           StayDates
	GuestCount      int
	SpecialRequests string
}

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
	}
}

// CreateBooking prices the stay and returns a CONFIRMED booking. The guest
// count is stored as given.
func (f *Factory) CreateBooking(userID uuid.UUID, h *hotel.Hotel, room *hotel.RoomType, req Request) *Booking {
	return &Booking{
		id:              uuid.New(),
		userID:          userID,
		hotelID:         h.ID(),
		hotelName:       h.Name(),
		roomTypeID:      room.ID(),
		roomTypeName:    room.Name(),
		dates:           req.Dates,
		totalPrice:      f.PriceCalculator.CalculateTotal(room, req.Dates),
		status:          StatusConfirmed,
		guestCount:      req.GuestCount,
		specialRequests: NewSpecialRequests(req.SpecialRequests),
		bookingDate:     clock.TodayString(f.Clock),
	}
}
