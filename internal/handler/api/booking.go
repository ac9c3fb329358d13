package api

import (
	"net/http"

	"hotel-booking/internal/domain/booking"
	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	validator *booking.Validator
	cfg       config.Config
}

func NewBookingHandler(validator *booking.Validator, cfg config.Config) *BookingHandler {
	return &BookingHandler{validator: validator, cfg: cfg}
}

// @Summary List bookings
// @Description Bookings made in this session, oldest first.
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} httperr.Response
// @Router /api/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}
	list, err := s.Account.ListBookings(c.Request.Context())
	if err != nil {
		abortWithDomainError(c, err, "Failed to load bookings")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(list, h.cfg.Booking.Currency))
}

// @Summary Book a room
// @Description Validates the request, then books it. Blank dates default to tomorrow for one night.
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	ctx := c.Request.Context()
	if req.PaymentMethodID != "" {
		if _, err := s.Payments.GetByID(ctx, req.PaymentMethodID); err != nil {
			abortWithDomainError(c, err, "Booking failed")
			return
		}
	}

	validated, err := h.validator.Validate(req.ToValidationInput())
	if err != nil {
		abortWithDomainError(c, err, "Booking failed")
		return
	}

	created, err := s.Bookings.BookRoom(ctx, req.ToInput(validated))
	if err != nil {
		abortWithDomainError(c, err, "Booking failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(created, h.cfg.Booking.Currency))
}

// @Summary Cancel a booking
// @Description Cancelling an already cancelled booking succeeds without change.
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := s.Bookings.CancelBooking(c.Request.Context(), id); err != nil {
		abortWithDomainError(c, err, "Cancellation failed")
		return
	}
	c.Status(http.StatusNoContent)
}
