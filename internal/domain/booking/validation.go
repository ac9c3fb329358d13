package booking

import (
	"errors"

	"hotel-booking/internal/pkg/clock"
)

var (
	ErrMissingPaymentMethod = errors.New("please select a payment method")
	ErrInvalidDateOrder     = errors.New("check-out date must be after check-in date")
	ErrInvalidDateFormat    = errors.New("invalid date format")
)

type RequestInput struct {
	CheckIn               string
	CheckOut              string
	GuestCount            int
	PaymentMethodSelected bool
}

type ValidatedRequest struct {
	Dates      StayDates
	GuestCount GuestCount
}

// Validator is stricter than NightlyPriceCalculator: it rejects a stay that
// does not end after it starts.
type Validator struct {
	clock clock.Clock
}

func NewValidator(c clock.Clock) *Validator {
	return &Validator{clock: c}
}

// Validate fills empty dates with tomorrow and the day after tomorrow.
func (v *Validator) Validate(in RequestInput) (ValidatedRequest, error) {
	if !in.PaymentMethodSelected {
		return ValidatedRequest{}, ErrMissingPaymentMethod
	}

	today := clock.Today(v.clock)
	dates := NewStayDates(in.CheckIn, in.CheckOut)
	checkIn, checkOut := dates.CheckIn(), dates.CheckOut()
	if checkIn == "" {
		checkIn = today.AddDate(0, 0, 1).Format(clock.DateLayout)
	}
	if checkOut == "" {
		checkOut = today.AddDate(0, 0, 2).Format(clock.DateLayout)
	}
	dates = NewStayDates(checkIn, checkOut)

	start, end, err := dates.Parse()
	if err != nil {
		return ValidatedRequest{}, err
	}
	if !end.After(start) {
		return ValidatedRequest{}, ErrInvalidDateOrder
	}

	return ValidatedRequest{
		Dates:      dates,
		GuestCount: NewGuestCount(in.GuestCount),
	}, nil
}
