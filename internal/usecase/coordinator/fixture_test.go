//go:build unit

package coordinator_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra/memory"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/usecase"
	"hotel-booking/internal/usecase/coordinator"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"
	"hotel-booking/tests/common/builder"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newValidator() *booking.Validator {
	return booking.NewValidator(clock.NewMockClock(testNow))
}

// openSession wires a session over the seeded in-memory catalog.
func openSession(t *testing.T) *usecase.Session {
	t.Helper()
	catalog, err := memory.NewSeededCatalogStore(discardLogger())
	require.NoError(t, err)

	registry := usecase.NewSessionRegistry(
		catalog,
		func() shared.SessionBackend { return memory.NewSessionState(discardLogger()) },
		booking.NewFactory(clock.NewMockClock(testNow), booking.NewNightlyPriceCalculator()),
		queries.NewHotelQueries(catalog, 3),
		queries.NewPaymentQueries(catalog),
	)
	return registry.Open()
}

func login(t *testing.T, s *usecase.Session) {
	t.Helper()
	_, err := s.Auth.Login(context.Background(), builder.NewAuthBuilder().BuildLoginInput())
	require.NoError(t, err)
}

func newSessionBookingFlow(t *testing.T, s *usecase.Session) *coordinator.BookingFlow {
	t.Helper()
	return coordinator.NewBookingFlow(context.Background(), coordinator.BookingFlowDeps{
		Bookings:  s.Bookings,
		Hotels:    s.Hotels,
		Payments:  s.Payments,
		Validator: newValidator(),
	})
}
