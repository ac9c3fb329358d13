package coordinator

import (
	"context"
	"log/slog"
	"strings"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/observable"
	"hotel-booking/internal/pkg/patch"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type Phase int

const (
	PhaseEditing Phase = iota
	PhaseSubmitting
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseEditing:
		return "editing"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// BookingState is the in-progress booking form. ErrorMessage is set when
// Phase is PhaseFailed, and also by failures outside submission (room
// selection, cancellation, loading payment methods).
type BookingState struct {
	Phase                 Phase
	Hotel                 *queries.HotelView
	Room                  *queries.RoomTypeView
	CheckIn               string
	CheckOut              string
	GuestCount            int
	SpecialRequests       string
	PaymentMethods        []*queries.PaymentMethodView
	SelectedPaymentMethod *queries.PaymentMethodView
	LastBooking           *queries.BookingView
	Loading               bool
	ErrorMessage          string
}

func initialBookingState() BookingState {
	return BookingState{Phase: PhaseEditing, GuestCount: 1}
}

// Nights previews the stay length; it is 1 until both dates are entered.
func (s BookingState) Nights() int {
	if s.CheckIn == "" || s.CheckOut == "" {
		return 1
	}
	return max(1, booking.NightsBetween(s.CheckIn, s.CheckOut))
}

// TotalPrice previews the price for the selected room, or zero without one.
func (s BookingState) TotalPrice() money.Money {
	if s.Room == nil {
		return money.New(0)
	}
	return booking.TotalPrice(s.Nights(), money.New(s.Room.PricePerNight))
}

func (s BookingState) IsDataValid() bool {
	return s.CheckIn != "" && s.CheckOut != "" && s.GuestCount > 0
}

func (s BookingState) HasError() bool {
	return s.ErrorMessage != ""
}

// DetailsPatch updates only the non-nil fields.
type DetailsPatch struct {
	CheckIn         *string
	CheckOut        *string
	GuestCount      *int
	SpecialRequests *string
}

type BookingFlowDeps struct {
	Bookings  commands.BookingCommands
	Hotels    queries.HotelQueries
	Payments  queries.PaymentQueries
	Validator *booking.Validator
}

type BookingFlow struct {
	deps  BookingFlowDeps
	state *observable.Value[BookingState]
}

// NewBookingFlow starts in PhaseEditing with payment methods loaded and
// the first one selected.
func NewBookingFlow(ctx context.Context, deps BookingFlowDeps) *BookingFlow {
	f := &BookingFlow{
		deps:  deps,
		state: observable.New(initialBookingState()),
	}
	f.loadPaymentMethods(ctx)
	return f
}

func (f *BookingFlow) State() BookingState {
	return f.state.Get()
}

func (f *BookingFlow) Subscribe(fn func(BookingState)) (unsubscribe func()) {
	return f.state.Subscribe(fn)
}

// SelectRoom loads the hotel and picks one of its room types. The guest
// count is re-clamped to the room's occupancy.
func (f *BookingFlow) SelectRoom(ctx context.Context, hotelID, roomTypeID string) {
	h, err := f.deps.Hotels.GetByID(ctx, hotelID)
	if err != nil {
		f.setError(Message(err, "Failed to load hotel"))
		return
	}
	room, ok := h.RoomType(roomTypeID)
	if !ok {
		f.setError(Message(errs.ErrRoomTypeNotFound, "Room type not found"))
		return
	}

	f.state.Update(func(s BookingState) BookingState {
		if !editable(s.Phase) {
			return s
		}
		s.Hotel, s.Room = h, room
		s.GuestCount = clampGuests(s.GuestCount, room)
		s.ErrorMessage = ""
		return s
	})
}

// UpdateDetails is ignored while submitting or after success.
func (f *BookingFlow) UpdateDetails(p DetailsPatch) {
	f.state.Update(func(s BookingState) BookingState {
		if !editable(s.Phase) {
			return s
		}
		s.CheckIn = patch.Coalesce(p.CheckIn, s.CheckIn)
		s.CheckOut = patch.Coalesce(p.CheckOut, s.CheckOut)
		s.GuestCount = clampGuests(patch.Coalesce(p.GuestCount, s.GuestCount), s.Room)
		s.SpecialRequests = patch.Coalesce(p.SpecialRequests, s.SpecialRequests)
		return s
	})
}

// SelectPaymentMethod picks one of the loaded methods; unknown ids are
// ignored.
func (f *BookingFlow) SelectPaymentMethod(id string) {
	f.state.Update(func(s BookingState) BookingState {
		if !editable(s.Phase) {
			return s
		}
		for _, m := range s.PaymentMethods {
			if m.ID == id {
				s.SelectedPaymentMethod = m
				break
			}
		}
		return s
	})
}

func (f *BookingFlow) ClearPaymentMethod() {
	f.state.Update(func(s BookingState) BookingState {
		if editable(s.Phase) {
			s.SelectedPaymentMethod = nil
		}
		return s
	})
}

// Submit validates the form and books the room. It only runs from
// PhaseEditing or PhaseFailed and returns the resulting state.
func (f *BookingFlow) Submit(ctx context.Context) BookingState {
	var (
		claimed bool
		form    BookingState
	)
	f.state.Update(func(s BookingState) BookingState {
		if !editable(s.Phase) {
			return s
		}
		claimed = true
		s.Phase = PhaseSubmitting
		s.Loading = true
		s.ErrorMessage = ""
		form = s
		return s
	})
	if !claimed {
		return f.State()
	}

	validated, err := f.deps.Validator.Validate(booking.RequestInput{
		CheckIn:               form.CheckIn,
		CheckOut:              form.CheckOut,
		GuestCount:            form.GuestCount,
		PaymentMethodSelected: form.SelectedPaymentMethod != nil,
	})
	if err != nil {
		return f.fail(Message(err, "Booking failed"))
	}

	in := commands.BookRoomInput{
		CheckIn:         validated.Dates.CheckIn(),
		CheckOut:        validated.Dates.CheckOut(),
		GuestCount:      validated.GuestCount.Int(),
		SpecialRequests: form.SpecialRequests,
	}
	if form.Hotel != nil {
		in.HotelID = form.Hotel.ID
	}
	if form.Room != nil {
		in.RoomTypeID = form.Room.ID
	}

	created, err := f.deps.Bookings.BookRoom(ctx, in)
	if err != nil {
		slog.Warn("booking submission failed", slog.String("error", err.Error()))
		return f.fail(Message(err, "Booking failed"))
	}

	return f.state.Update(func(s BookingState) BookingState {
		s.Phase = PhaseSucceeded
		s.Loading = false
		s.LastBooking = created
		return s
	})
}

// ClearError returns a failed submission to editing.
func (f *BookingFlow) ClearError() {
	f.state.Update(func(s BookingState) BookingState {
		s.ErrorMessage = ""
		if s.Phase == PhaseFailed {
			s.Phase = PhaseEditing
		}
		return s
	})
}

// ResetSuccess leaves PhaseSucceeded but keeps the entered details.
func (f *BookingFlow) ResetSuccess() {
	f.state.Update(func(s BookingState) BookingState {
		if s.Phase == PhaseSucceeded {
			s.Phase = PhaseEditing
		}
		s.LastBooking = nil
		return s
	})
}

// Reset empties the form and reloads payment methods.
func (f *BookingFlow) Reset(ctx context.Context) {
	f.state.Set(initialBookingState())
	f.loadPaymentMethods(ctx)
}

func (f *BookingFlow) CancelBooking(ctx context.Context, id string) {
	f.state.Update(func(s BookingState) BookingState {
		s.Loading = true
		s.ErrorMessage = ""
		return s
	})

	err := f.cancel(ctx, id)

	f.state.Update(func(s BookingState) BookingState {
		s.Loading = false
		s.ErrorMessage = Message(err, "Cancellation failed")
		return s
	})
}

func (f *BookingFlow) cancel(ctx context.Context, id string) error {
	bookingID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		// not a booking id the session could have issued
		return errs.Mark(err, errs.ErrBookingNotFound)
	}
	return f.deps.Bookings.CancelBooking(ctx, bookingID)
}

func (f *BookingFlow) loadPaymentMethods(ctx context.Context) {
	methods, err := f.deps.Payments.List(ctx)
	if err != nil {
		f.setError(Message(err, "Failed to load payment methods"))
		return
	}
	f.state.Update(func(s BookingState) BookingState {
		s.PaymentMethods = methods
		s.SelectedPaymentMethod = nil
		if len(methods) > 0 {
			s.SelectedPaymentMethod = methods[0]
		}
		return s
	})
}

func (f *BookingFlow) fail(msg string) BookingState {
	return f.state.Update(func(s BookingState) BookingState {
		s.Phase = PhaseFailed
		s.Loading = false
		s.ErrorMessage = msg
		return s
	})
}

func (f *BookingFlow) setError(msg string) {
	f.state.Update(func(s BookingState) BookingState {
		s.ErrorMessage = msg
		return s
	})
}

func editable(p Phase) bool {
	return p == PhaseEditing || p == PhaseFailed
}

func clampGuests(n int, room *queries.RoomTypeView) int {
	n = max(n, 1)
	if room != nil {
		n = min(n, room.MaxOccupancy)
	}
	return n
}
