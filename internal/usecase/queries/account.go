package queries

import (
	"context"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"
)

// AccountQueries reads the state of a single session.
type AccountQueries interface {
	CurrentUser(ctx context.Context) (*UserView, error)
	ListBookings(ctx context.Context) ([]*BookingView, error)
	// WatchBookings calls fn with the full list after every change.
	WatchBookings(fn func([]*BookingView)) (unsubscribe func())
}

type accountQueriesImpl struct {
	store shared.SessionStore
	feed  shared.BookingFeed
}

func NewAccountQueries(store shared.SessionStore, feed shared.BookingFeed) AccountQueries {
	return &accountQueriesImpl{
		store: store,
		feed:  feed,
	}
}

func (q *accountQueriesImpl) CurrentUser(ctx context.Context) (*UserView, error) {
	u, err := q.store.CurrentUser(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrNotAuthenticated
		}
		return nil, err
	}
	return ToUserView(u), nil
}

func (q *accountQueriesImpl) ListBookings(ctx context.Context) ([]*BookingView, error) {
	bookings, err := q.store.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	return ToBookingViews(bookings), nil
}

func (q *accountQueriesImpl) WatchBookings(fn func([]*BookingView)) func() {
	return q.feed.SubscribeBookings(func(list []*booking.Booking) {
		fn(ToBookingViews(list))
	})
}
