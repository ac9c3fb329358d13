package memory

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/observable"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var _ shared.SessionBackend = (*SessionState)(nil)

// SessionState holds one session's user and bookings. Readers get copies of
// the list; entities are immutable so sharing them is safe.
type SessionState struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	user     *user.User
	bookings []*booking.Booking
	// pubMu is taken before mu is released so snapshots reach the feed in
	// the order their writes happened.
	pubMu sync.Mutex
	feed  *observable.Value[[]*booking.Booking]
}

func NewSessionState(logger *slog.Logger) *SessionState {
	return &SessionState{
		logger: logger,
		feed:   observable.New[[]*booking.Booking](nil),
	}
}

func (s *SessionState) CurrentUser(_ context.Context) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "no current user", nil)
	}
	return s.user, nil
}

func (s *SessionState) SetUser(_ context.Context, u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
	return nil
}

func (s *SessionState) UpdateUser(_ context.Context, fn shared.UserMutation) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "no current user", nil)
	}
	next, err := fn(s.user)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindInvalidState, "user update rejected", err)
	}
	s.user = next
	return next, nil
}

func (s *SessionState) Clear(_ context.Context) error {
	s.mu.Lock()
	s.user = nil
	s.bookings = nil
	s.unlockAndPublish(nil)
	return nil
}

func (s *SessionState) AppendBooking(_ context.Context, b *booking.Booking) error {
	s.mu.Lock()
	s.bookings = append(s.bookings, b)
	s.unlockAndPublish(slices.Clone(s.bookings))
	return nil
}

func (s *SessionState) FindBooking(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexLocked(id); i >= 0 {
		return s.bookings[i], nil
	}
	return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "booking not found", nil)
}

func (s *SessionState) UpdateBooking(_ context.Context, id uuid.UUID, fn shared.BookingMutation) (*booking.Booking, error) {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "booking not found", nil)
	}
	next, err := fn(s.bookings[i])
	if err != nil {
		s.mu.Unlock()
		return nil, infra.WrapRepoErr(s.logger, infra.KindInvalidState, "booking update rejected", err)
	}
	updated := slices.Clone(s.bookings)
	updated[i] = next
	s.bookings = updated
	s.unlockAndPublish(slices.Clone(updated))
	return next, nil
}

func (s *SessionState) ListBookings(_ context.Context) ([]*booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.bookings), nil
}

func (s *SessionState) SubscribeBookings(fn func([]*booking.Booking)) func() {
	return s.feed.Subscribe(fn)
}

// unlockAndPublish releases mu and publishes snapshot. Subscribers run
// without mu held, so they may read the state back.
func (s *SessionState) unlockAndPublish(snapshot []*booking.Booking) {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()
	s.mu.Unlock()
	s.feed.Set(snapshot)
}

func (s *SessionState) indexLocked(id uuid.UUID) int {
	return slices.IndexFunc(s.bookings, func(b *booking.Booking) bool {
		return b.ID() == id
	})
}
