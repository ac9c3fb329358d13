package booking

import (
	"errors"

	"hotel-booking/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCancelled        = errors.New("booking is already cancelled")
	ErrInvalidStatusTransition = errors.New("invalid booking status transition")
)

// Booking snapshots the hotel and room names at creation time.
type Booking struct {
	id              uuid.UUID
	userID          uuid.UUID
	hotelID         string
	hotelName       string
	roomTypeID      string
	roomTypeName    string
	dates           StayDates
	totalPrice      money.Money
	status          Status
	guestCount      int
	specialRequests SpecialRequests
	bookingDate     string
}

type Snapshot struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	HotelID         string
	HotelName       string
	RoomTypeID      string
	RoomTypeName    string
	CheckInDate     string
	CheckOutDate    string
	TotalPrice      money.Money
	Status          Status
	GuestCount      int
	SpecialRequests string
	BookingDate     string
}

func Reconstruct(s Snapshot) *Booking {
	return &Booking{
		id:              s.ID,
		userID:          s.UserID,
		hotelID:         s.HotelID,
		hotelName:       s.HotelName,
		roomTypeID:      s.RoomTypeID,
		roomTypeName:    s.RoomTypeName,
		dates:           NewStayDates(s.CheckInDate, s.CheckOutDate),
		totalPrice:      s.TotalPrice,
		status:          s.Status,
		guestCount:      s.GuestCount,
		specialRequests: NewSpecialRequests(s.SpecialRequests),
		bookingDate:     s.BookingDate,
	}
}

// Cancel returns a cancelled copy; the receiver is left untouched.
func (b *Booking) Cancel() (*Booking, error) {
	if b.status == StatusCancelled {
		return nil, ErrAlreadyCancelled
	}
	if !b.status.CanTransitionTo(StatusCancelled) {
		return nil, ErrInvalidStatusTransition
	}
	next := *b
	next.status = StatusCancelled
	return &next, nil
}

func (b *Booking) IsActive() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) Snapshot() Snapshot {
	return Snapshot{
		ID:              b.id,
		UserID:          b.userID,
		HotelID:         b.hotelID,
		HotelName:       b.hotelName,
		RoomTypeID:      b.roomTypeID,
		RoomTypeName:    b.roomTypeName,
		CheckInDate:     b.dates.CheckIn(),
		CheckOutDate:    b.dates.CheckOut(),
		TotalPrice:      b.totalPrice,
		Status:          b.status,
		GuestCount:      b.guestCount,
		SpecialRequests: b.specialRequests.String(),
		BookingDate:     b.bookingDate,
	}
}

func (b *Booking) ID() uuid.UUID                    { return b.id }
func (b *Booking) UserID() uuid.UUID                { return b.userID }
func (b *Booking) HotelID() string                  { return b.hotelID }
func (b *Booking) HotelName() string                { return b.hotelName }
func (b *Booking) RoomTypeID() string               { return b.roomTypeID }
func (b *Booking) RoomTypeName() string             { return b.roomTypeName }
func (b *Booking) Dates() StayDates                 { return b.dates }
func (b *Booking) CheckInDate() string              { return b.dates.CheckIn() }
func (b *Booking) CheckOutDate() string             { return b.dates.CheckOut() }
func (b *Booking) TotalPrice() money.Money          { return b.totalPrice }
func (b *Booking) Status() Status                   { return b.status }
func (b *Booking) GuestCount() int                  { return b.guestCount }
func (b *Booking) SpecialRequests() SpecialRequests { return b.specialRequests }
func (b *Booking) BookingDate() string              { return b.bookingDate }
