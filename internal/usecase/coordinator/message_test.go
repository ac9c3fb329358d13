//go:build unit

package coordinator_test

import (
	"errors"
	"testing"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/coordinator"

	"github.com/stretchr/testify/assert"
)

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"missing payment", booking.ErrMissingPaymentMethod, "Please select a payment method"},
		{"date order", booking.ErrInvalidDateOrder, "Check-out date must be after check-in date"},
		{"joined date format", errors.Join(booking.ErrInvalidDateFormat, errors.New("parsing time")), "Invalid date format"},
		{"not authenticated", errs.ErrNotAuthenticated, "User not logged in"},
		{"marked hotel", errs.Mark(errors.New("lookup"), errs.ErrHotelNotFound), "Hotel not found"},
		{"room type", errs.ErrRoomTypeNotFound, "Room type not found"},
		{"wrapped booking", errs.Wrap(errs.ErrBookingNotFound, "cancel"), "Booking not found"},
		{"unknown", errors.New("boom"), "fallback"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, coordinator.Message(tt.err, "fallback"))
		})
	}
}
