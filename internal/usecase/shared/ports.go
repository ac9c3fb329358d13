package shared

import (
	"context"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/domain/payment"
	"hotel-booking/internal/domain/user"

	"github.com/google/uuid"
)

// CatalogReadStore serves the read-only catalog. Lookups that miss return an
// infra.RepositoryError of kind KindNotFound.
type CatalogReadStore interface {
	ListHotels(ctx context.Context) ([]*hotel.Hotel, error)
	FindHotelByID(ctx context.Context, id string) (*hotel.Hotel, error)
	ListPaymentMethods(ctx context.Context) ([]*payment.Method, error)
	FindPaymentMethodByID(ctx context.Context, id string) (*payment.Method, error)
}

// UserMutation receives the signed-in user and returns its replacement.
type UserMutation func(current *user.User) (*user.User, error)

// BookingMutation receives the stored booking and returns its replacement.
type BookingMutation func(current *booking.Booking) (*booking.Booking, error)

// SessionStore owns one session's user and booking list. Every method is
// atomic with respect to the others.
type SessionStore interface {
	// CurrentUser returns KindNotFound when nobody is signed in.
	CurrentUser(ctx context.Context) (*user.User, error)
	SetUser(ctx context.Context, u *user.User) error
	// UpdateUser returns KindNotFound when nobody is signed in.
	UpdateUser(ctx context.Context, fn UserMutation) (*user.User, error)
	// Clear drops the user and every booking.
	Clear(ctx context.Context) error

	AppendBooking(ctx context.Context, b *booking.Booking) error
	FindBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// UpdateBooking replaces the booking in place, keeping list order.
	UpdateBooking(ctx context.Context, id uuid.UUID, fn BookingMutation) (*booking.Booking, error)
	ListBookings(ctx context.Context) ([]*booking.Booking, error)
}

// BookingFeed pushes the full booking list after every change.
type BookingFeed interface {
	SubscribeBookings(fn func([]*booking.Booking)) (unsubscribe func())
}

// SessionBackend is what a session needs from its storage.
type SessionBackend interface {
	SessionStore
	BookingFeed
}
