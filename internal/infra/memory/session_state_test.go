//go:build unit

package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func confirmedBooking(hotelID string) *booking.Booking {
	return booking.Reconstruct(booking.Snapshot{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		HotelID:      hotelID,
		HotelName:    "Hotel " + hotelID,
		RoomTypeID:   hotelID + "-1",
		RoomTypeName: "Room",
		CheckInDate:  "2025-06-01",
		CheckOutDate: "2025-06-03",
		TotalPrice:   money.New(3000000),
		Status:       booking.StatusConfirmed,
		GuestCount:   2,
		BookingDate:  "2025-05-20",
	})
}

func TestSessionState_User(t *testing.T) {
	ctx := context.Background()
	s := memory.NewSessionState(discardLogger())

	_, err := s.CurrentUser(ctx)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	u := user.NewUserFromEmail(user.NewEmail("budi@example.com"))
	require.NoError(t, s.SetUser(ctx, u))

	got, err := s.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, u.ID(), got.ID())
}

func TestSessionState_UpdateUser(t *testing.T) {
	ctx := context.Background()
	s := memory.NewSessionState(discardLogger())

	_, err := s.UpdateUser(ctx, func(u *user.User) (*user.User, error) { return u, nil })
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	u := user.NewUserFromEmail(user.NewEmail("budi@example.com"))
	require.NoError(t, s.SetUser(ctx, u))

	updated, err := s.UpdateUser(ctx, func(cur *user.User) (*user.User, error) {
		return cur.WithProfile("Budi Santoso", "0811"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Budi Santoso", updated.Name())

	got, err := s.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, u.ID(), got.ID())
	assert.Equal(t, "0811", got.PhoneNumber())
}

func TestSessionState_Clear(t *testing.T) {
	ctx := context.Background()
	s := memory.NewSessionState(discardLogger())
	require.NoError(t, s.SetUser(ctx, user.NewUserFromEmail(user.NewEmail("a@b.c"))))
	require.NoError(t, s.AppendBooking(ctx, confirmedBooking("1")))

	require.NoError(t, s.Clear(ctx))

	_, err := s.CurrentUser(ctx)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	list, err := s.ListBookings(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSessionState_UpdateBookingKeepsOrder(t *testing.T) {
	ctx := context.Background()
	s := memory.NewSessionState(discardLogger())
	a, b, c := confirmedBooking("1"), confirmedBooking("2"), confirmedBooking("3")
	for _, bk := range []*booking.Booking{a, b, c} {
		require.NoError(t, s.AppendBooking(ctx, bk))
	}
	before, err := s.ListBookings(ctx)
	require.NoError(t, err)

	updated, err := s.UpdateBooking(ctx, b.ID(), func(cur *booking.Booking) (*booking.Booking, error) {
		return cur.Cancel()
	})
	require.NoError(t, err)
	assert.Equal(t, booking.StatusCancelled, updated.Status())

	after, err := s.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, after, 3)
	assert.Equal(t, []uuid.UUID{a.ID(), b.ID(), c.ID()}, []uuid.UUID{after[0].ID(), after[1].ID(), after[2].ID()})
	assert.Equal(t, booking.StatusConfirmed, after[0].Status())
	assert.Equal(t, booking.StatusCancelled, after[1].Status())
	assert.Equal(t, booking.StatusConfirmed, after[2].Status())

	// Earlier copies are unaffected.
	assert.Equal(t, booking.StatusConfirmed, before[1].Status())
}

func TestSessionState_UpdateBookingErrors(t *testing.T) {
	ctx := context.Background()
	s := memory.NewSessionState(discardLogger())
	bk := confirmedBooking("1")
	require.NoError(t, s.AppendBooking(ctx, bk))

	_, err := s.UpdateBooking(ctx, uuid.New(), func(cur *booking.Booking) (*booking.Booking, error) {
		t.Fatal("mutation must not run for unknown id")
		return cur, nil
	})
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	reject := errors.New("rejected")
	_, err = s.UpdateBooking(ctx, bk.ID(), func(*booking.Booking) (*booking.Booking, error) {
		return nil, reject
	})
	assert.True(t, infra.IsKind(err, infra.KindInvalidState))
	assert.ErrorIs(t, err, reject)

	got, err := s.FindBooking(ctx, bk.ID())
	require.NoError(t, err)
	assert.Equal(t, booking.StatusConfirmed, got.Status())

	_, err = s.FindBooking(ctx, uuid.New())
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestSessionState_SubscribeBookings(t *testing.T) {
	ctx := context.Background()
	s := memory.NewSessionState(discardLogger())

	var got [][]*booking.Booking
	unsubscribe := s.SubscribeBookings(func(list []*booking.Booking) {
		got = append(got, list)
	})

	bk := confirmedBooking("1")
	require.NoError(t, s.AppendBooking(ctx, bk))
	_, err := s.UpdateBooking(ctx, bk.ID(), func(cur *booking.Booking) (*booking.Booking, error) {
		return cur.Cancel()
	})
	require.NoError(t, err)
	require.NoError(t, s.Clear(ctx))

	unsubscribe()
	require.NoError(t, s.AppendBooking(ctx, confirmedBooking("2")))

	require.Len(t, got, 3)
	assert.Len(t, got[0], 1)
	assert.Equal(t, booking.StatusCancelled, got[1][0].Status())
	assert.Empty(t, got[2])
}

func TestSessionState_ConcurrentReadersSeeWholeLists(t *testing.T) {
	ctx := context.Background()
	s := memory.NewSessionState(discardLogger())
	const writes = 100

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < writes; i++ {
			_ = s.AppendBooking(ctx, confirmedBooking("1"))
		}
	}()

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		list, err := s.ListBookings(ctx)
		require.NoError(t, err)
		for _, b := range list {
			require.NotNil(t, b)
		}
		if len(list) == writes {
			break
		}
	}
	wg.Wait()

	list, err := s.ListBookings(ctx)
	require.NoError(t, err)
	assert.Len(t, list, writes)
}

func TestSessionState_ConcurrentWritersPublishInOrder(t *testing.T) {
	ctx := context.Background()
	s := memory.NewSessionState(discardLogger())
	const writers, perWriter = 8, 25

	var lengths []int
	s.SubscribeBookings(func(list []*booking.Booking) {
		// subscribers may read the state back
		current, err := s.ListBookings(ctx)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, len(current), len(list))
		lengths = append(lengths, len(list))
	})

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				_ = s.AppendBooking(ctx, confirmedBooking("1"))
			}
		}()
	}
	wg.Wait()

	require.Len(t, lengths, writers*perWriter)
	for i, n := range lengths {
		assert.Equal(t, i+1, n, "publish %d out of order", i)
	}
}
