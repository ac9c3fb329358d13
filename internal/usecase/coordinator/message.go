// Package coordinator sequences multi-step flows over the session API and
// exposes their state through subscriptions. Failures never escape as
// errors: they become display strings on the state.
package coordinator

import (
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/pkg/errs"
)

var knownMessages = []struct {
	err error
	msg string
}{
	{booking.ErrMissingPaymentMethod, "Please select a payment method"},
	{booking.ErrInvalidDateOrder, "Check-out date must be after check-in date"},
	{booking.ErrInvalidDateFormat, "Invalid date format"},
	{errs.ErrNotAuthenticated, "User not logged in"},
	{errs.ErrHotelNotFound, "Hotel not found"},
	{errs.ErrRoomTypeNotFound, "Room type not found"},
	{errs.ErrBookingNotFound, "Booking not found"},
}

// Message returns the display text for err, or fallback when err is not
// one of the known failures. A nil err yields "".
func Message(err error, fallback string) string {
	if err == nil {
		return ""
	}
	for _, k := range knownMessages {
		if errs.Is(err, k.err) {
			return k.msg
		}
	}
	return fallback
}
