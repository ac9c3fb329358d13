package response

import (
	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID                  string `json:"id" copier:"-"`
	UserID              string `json:"user_id" copier:"-"`
	HotelID             string `json:"hotel_id"`
	HotelName           string `json:"hotel_name"`
	RoomTypeID          string `json:"room_type_id"`
	RoomTypeName        string `json:"room_type_name"`
	CheckInDate         string `json:"check_in_date"`
	CheckOutDate        string `json:"check_out_date"`
	TotalPrice          int64  `json:"total_price"`
	FormattedTotalPrice string `json:"formatted_total_price"`
	Status              string `json:"status"`
	GuestCount          int    `json:"guest_count"`
	SpecialRequests     string `json:"special_requests,omitempty"`
	BookingDate         string `json:"booking_date"`
}

func FromBookingView(v *queries.BookingView, currency string) *BookingResponse {
	res := &BookingResponse{}
	_ = copier.Copy(res, v)
	res.ID = v.ID.String()
	res.UserID = v.UserID.String()
	res.FormattedTotalPrice = money.New(v.TotalPrice).Format(currency)
	return res
}

func FromBookingViews(vs []*queries.BookingView, currency string) []*BookingResponse {
	res := make([]*BookingResponse, len(vs))
	for i, v := range vs {
		res[i] = FromBookingView(v, currency)
	}
	return res
}
