package usecase

import (
	"sync"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errs.New("session not found")

// Session bundles the operations bound to one session's state. Catalog
// queries are shared by every session.
type Session struct {
	ID       uuid.UUID
	Auth     commands.AuthCommands
	Profile  commands.ProfileCommands
	Bookings commands.BookingCommands
	Account  queries.AccountQueries
	Hotels   queries.HotelQueries
	Payments queries.PaymentQueries
}

// BackendFactory creates empty storage for a new session.
type BackendFactory func() shared.SessionBackend

type SessionRegistry struct {
	mu         sync.RWMutex
	sessions   map[uuid.UUID]*Session
	catalog    shared.CatalogReadStore
	newBackend BackendFactory
	factory    *booking.Factory
	hotels     queries.HotelQueries
	payments   queries.PaymentQueries
}

func NewSessionRegistry(
	catalog shared.CatalogReadStore,
	newBackend BackendFactory,
	factory *booking.Factory,
	hotels queries.HotelQueries,
	payments queries.PaymentQueries,
) *SessionRegistry {
	return &SessionRegistry{
		sessions:   make(map[uuid.UUID]*Session),
		catalog:    catalog,
		newBackend: newBackend,
		factory:    factory,
		hotels:     hotels,
		payments:   payments,
	}
}

// Open starts a session with no user and no bookings.
func (r *SessionRegistry) Open() *Session {
	backend := r.newBackend()
	s := &Session{
		ID:       uuid.New(),
		Auth:     commands.NewAuthCommands(backend),
		Profile:  commands.NewProfileCommands(backend),
		Bookings: commands.NewBookingCommands(r.catalog, backend, r.factory),
		Account:  queries.NewAccountQueries(backend, backend),
		Hotels:   r.hotels,
		Payments: r.payments,
	}

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

func (r *SessionRegistry) Get(id uuid.UUID) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Close forgets the session. Closing an unknown id is a no-op.
func (r *SessionRegistry) Close(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

func (r *SessionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
