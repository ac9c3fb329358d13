package commands

import (
	"context"
	"errors"
	"log/slog"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotCancellable = errs.New("booking cannot be cancelled")
	ErrBookingStore          = errs.New("booking store failure")
)

type BookingCommands interface {
	// BookRoom never rejects a date range: it is priced for at least one
	// night. Callers wanting strict checks run booking.Validator first.
	// The guest count is clamped to the room's occupancy.
	BookRoom(ctx context.Context, in BookRoomInput) (*queries.BookingView, error)
	// CancelBooking is a no-op for an already cancelled booking.
	CancelBooking(ctx context.Context, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	catalog shared.CatalogReadStore
	store   shared.SessionStore
	factory *booking.Factory
}

func NewBookingCommands(catalog shared.CatalogReadStore, store shared.SessionStore, factory *booking.Factory) BookingCommands {
	return &bookingCommandsImpl{
		catalog: catalog,
		store:   store,
		factory: factory,
	}
}

func (b *bookingCommandsImpl) BookRoom(ctx context.Context, in BookRoomInput) (*queries.BookingView, error) {
	u, err := b.store.CurrentUser(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrNotAuthenticated
		}
		return nil, errs.Mark(err, ErrBookingStore)
	}

	h, err := b.catalog.FindHotelByID(ctx, in.HotelID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrHotelNotFound
		}
		return nil, errs.Mark(err, ErrBookingStore)
	}

	room, ok := h.FindRoomType(in.RoomTypeID)
	if !ok {
		return nil, errs.ErrRoomTypeNotFound
	}

	created := b.factory.CreateBooking(u.ID(), h, room, booking.Request{
		Dates:           booking.NewStayDates(in.CheckIn, in.CheckOut),
		GuestCount:      room.ClampGuests(in.GuestCount),
		SpecialRequests: in.SpecialRequests,
	})
	if err := b.store.AppendBooking(ctx, created); err != nil {
		return nil, errs.Mark(err, ErrBookingStore)
	}

	slog.Info("booking confirmed",
		slog.String("booking_id", created.ID().String()),
		slog.String("hotel_id", created.HotelID()),
		slog.String("room_type_id", created.RoomTypeID()),
		slog.Int64("total_price", created.TotalPrice().Amount()))

	return queries.ToBookingView(created), nil
}

func (b *bookingCommandsImpl) CancelBooking(ctx context.Context, id uuid.UUID) error {
	_, err := b.store.UpdateBooking(ctx, id, func(cur *booking.Booking) (*booking.Booking, error) {
		next, err := cur.Cancel()
		if errors.Is(err, booking.ErrAlreadyCancelled) {
			return cur, nil
		}
		return next, err
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return errs.ErrBookingNotFound
		case infra.IsKind(err, infra.KindInvalidState):
			return errs.Mark(err, ErrBookingNotCancellable)
		default:
			return errs.Mark(err, ErrBookingStore)
		}
	}

	slog.Info("booking cancelled", slog.String("booking_id", id.String()))
	return nil
}
