//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/handler/api"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/tests/common/builder"
	"hotel-booking/tests/common/httptest"
	"hotel-booking/tests/common/testutil"
	commandsmock "hotel-booking/tests/mock/commands"
	queriesmock "hotel-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockBookings *commandsmock.MockBookingCommands
	mockAccount  *queriesmock.MockAccountQueries
	mockPayments *queriesmock.MockPaymentQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookings = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockAccount = queriesmock.NewMockAccountQueries(s.mockCtrl)
	s.mockPayments = queriesmock.NewMockPaymentQueries(s.mockCtrl)
	session := &usecase.Session{
		ID:       uuid.New(),
		Bookings: s.mockBookings,
		Account:  s.mockAccount,
		Payments: s.mockPayments,
	}
	s.handler = api.NewBookingHandler(booking.NewValidator(clock.NewMockClock(testNow)), config.NewTestConfig())

	s.router.Use(func(c *gin.Context) {
		// stands in for RequireSession
		middleware.SetSession(c, session)
	})
	s.router.GET("/bookings", s.handler.List)
	s.router.POST("/bookings", s.handler.Create)
	s.router.POST("/bookings/:id/cancel", s.handler.Cancel)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) expectPaymentMethod(id string) {
	s.mockPayments.EXPECT().GetByID(gomock.Any(), id).
		Return(&queries.PaymentMethodView{ID: id, Name: "Credit Card"}, nil)
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	b := builder.NewBookingBuilder()
	reqBody := b.BuildDTO()

	s.Run("success: returns 201 with the priced booking", func() {
		s.expectPaymentMethod("1")
		s.mockBookings.EXPECT().BookRoom(gomock.Any(), b.BuildInput()).
			Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var res resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(b.ID.String(), res.ID)
		s.Equal(int64(3000000), res.TotalPrice)
		s.Equal(money.New(3000000).Format("IDR"), res.FormattedTotalPrice)
		s.Equal("CONFIRMED", res.Status)
	})

	s.Run("success: blank dates default to tomorrow and guests to one", func() {
		s.expectPaymentMethod("1")
		s.mockBookings.EXPECT().BookRoom(gomock.Any(), commands.BookRoomInput{
			HotelID:    "1",
			RoomTypeID: "1-1",
			CheckIn:    "2025-05-21",
			CheckOut:   "2025-05-22",
			GuestCount: 1,
		}).Return(b.BuildView(), nil).Times(1)

		body := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("check_in", ""),
			testutil.Field("check_out", ""),
			testutil.Field("guest_count", 0),
		)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name       string
			mutate     func(m map[string]any)
			needMethod bool
			expectMsg  string
		}{
			{name: "missing hotel_id", mutate: testutil.Field("hotel_id", nil), expectMsg: "Invalid request format"},
			{name: "missing room_type_id", mutate: testutil.Field("room_type_id", nil), expectMsg: "Invalid request format"},
			{name: "no payment method", mutate: testutil.Field("payment_method_id", nil), expectMsg: "Please select a payment method"},
			{name: "check-out before check-in", mutate: testutil.Field("check_out", "2025-05-30"), needMethod: true, expectMsg: "Check-out date must be after check-in date"},
			{name: "same day", mutate: testutil.Field("check_out", "2025-06-01"), needMethod: true, expectMsg: "Check-out date must be after check-in date"},
			{name: "bad date format", mutate: testutil.Field("check_in", "01/06/2025"), needMethod: true, expectMsg: "Invalid date format"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				if tc.needMethod {
					s.expectPaymentMethod("1")
				}
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.expectMsg)
			})
		}
	})

	s.Run("error: 404 on unknown payment method", func() {
		s.mockPayments.EXPECT().GetByID(gomock.Any(), "9").Return(nil, queries.ErrPaymentMethodNotFound)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("payment_method_id", "9"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Payment method not found")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"not logged in", errs.ErrNotAuthenticated, http.StatusUnauthorized, "User not logged in"},
			{"hotel not found", errs.ErrHotelNotFound, http.StatusNotFound, "Hotel not found"},
			{"room type not found", errs.ErrRoomTypeNotFound, http.StatusNotFound, "Room type not found"},
			{"store failure", errs.Mark(errors.New("disk"), commands.ErrBookingStore), http.StatusInternalServerError, "Booking failed"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.expectPaymentMethod("1")
				s.mockBookings.EXPECT().BookRoom(gomock.Any(), gomock.Any()).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestList() {
	s.Run("success: returns bookings in order", func() {
		first := builder.NewBookingBuilder().BuildView()
		second := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = booking.StatusCancelled
		}).BuildView()
		s.mockAccount.EXPECT().ListBookings(gomock.Any()).Return([]*queries.BookingView{first, second}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")

		var res []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res, 2)
		s.Equal(first.ID.String(), res[0].ID)
		s.Equal("CANCELLED", res[1].Status)
	})

	s.Run("error: 401 when signed out", func() {
		s.mockAccount.EXPECT().ListBookings(gomock.Any()).Return(nil, errs.ErrNotAuthenticated)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "User not logged in")
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	id := uuid.New()
	url := "/bookings/" + id.String() + "/cancel"

	s.Run("success: returns 204", func() {
		s.mockBookings.EXPECT().CancelBooking(gomock.Any(), id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/abc/cancel", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 on unknown booking", func() {
		s.mockBookings.EXPECT().CancelBooking(gomock.Any(), id).Return(errs.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 409 on completed booking", func() {
		s.mockBookings.EXPECT().CancelBooking(gomock.Any(), id).
			Return(errs.Mark(booking.ErrInvalidStatusTransition, commands.ErrBookingNotCancellable))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Booking cannot be cancelled")
	})
}
