package api

import (
	"net/http"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/coordinator"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errorStatuses = []struct {
	err    error
	status int
	msg    string
}{
	{errs.ErrNotAuthenticated, http.StatusUnauthorized, ""},
	{errs.ErrHotelNotFound, http.StatusNotFound, ""},
	{errs.ErrRoomTypeNotFound, http.StatusNotFound, ""},
	{errs.ErrBookingNotFound, http.StatusNotFound, ""},
	{queries.ErrPaymentMethodNotFound, http.StatusNotFound, "Payment method not found"},
	{booking.ErrMissingPaymentMethod, http.StatusBadRequest, ""},
	{booking.ErrInvalidDateOrder, http.StatusBadRequest, ""},
	{booking.ErrInvalidDateFormat, http.StatusBadRequest, ""},
	{commands.ErrBookingNotCancellable, http.StatusConflict, "Booking cannot be cancelled"},
}

// abortWithDomainError maps known failures to a status and display message.
// Anything else is a 500 carrying fallback.
func abortWithDomainError(c *gin.Context, err error, fallback string) {
	for _, e := range errorStatuses {
		if errs.Is(err, e.err) {
			msg := e.msg
			if msg == "" {
				msg = coordinator.Message(err, fallback)
			}
			httperr.AbortWithError(c, e.status, err, msg, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
}
