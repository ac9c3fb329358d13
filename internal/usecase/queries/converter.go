package queries

import (
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/domain/payment"
	"hotel-booking/internal/domain/user"
)

func ToHotelView(h *hotel.Hotel) *HotelView {
	rooms := h.RoomTypes()
	v := &HotelView{
		ID:            h.ID(),
		Name:          h.Name(),
		Description:   h.Description(),
		ImageURL:      h.ImageURL(),
		PricePerNight: h.PricePerNight().Amount(),
		Rating:        h.Rating(),
		Location:      h.Location(),
		Amenities:     h.Amenities(),
		RoomTypes:     make([]RoomTypeView, 0, len(rooms)),
	}
	for _, rt := range rooms {
		v.RoomTypes = append(v.RoomTypes, RoomTypeView{
			ID:            rt.ID(),
			Name:          rt.Name(),
			Description:   rt.Description(),
			PricePerNight: rt.PricePerNight().Amount(),
			MaxOccupancy:  rt.MaxOccupancy(),
			Amenities:     rt.Amenities(),
			ImageURLs:     rt.ImageURLs(),
		})
	}
	return v
}

func ToHotelViews(hotels []*hotel.Hotel) []*HotelView {
	out := make([]*HotelView, 0, len(hotels))
	for _, h := range hotels {
		out = append(out, ToHotelView(h))
	}
	return out
}

func ToPaymentMethodView(m *payment.Method) *PaymentMethodView {
	return &PaymentMethodView{
		ID:   m.ID(),
		Name: m.Name(),
		Type: m.Type().String(),
		Icon: m.Icon(),
	}
}

func ToUserView(u *user.User) *UserView {
	return &UserView{
		ID:              u.ID(),
		Email:           u.Email().Value(),
		Name:            u.Name(),
		PhoneNumber:     u.PhoneNumber(),
		ProfileImageURL: u.ProfileImageURL(),
	}
}

func ToBookingView(b *booking.Booking) *BookingView {
	return &BookingView{
		ID:              b.ID(),
		UserID:          b.UserID(),
		HotelID:         b.HotelID(),
		HotelName:       b.HotelName(),
		RoomTypeID:      b.RoomTypeID(),
		RoomTypeName:    b.RoomTypeName(),
		CheckInDate:     b.CheckInDate(),
		CheckOutDate:    b.CheckOutDate(),
		TotalPrice:      b.TotalPrice().Amount(),
		Status:          b.Status().String(),
		GuestCount:      b.GuestCount(),
		SpecialRequests: b.SpecialRequests().String(),
		BookingDate:     b.BookingDate(),
	}
}

func ToBookingViews(bookings []*booking.Booking) []*BookingView {
	out := make([]*BookingView, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, ToBookingView(b))
	}
	return out
}
