package booking

import (
	"errors"
	"strings"
	"time"

	"hotel-booking/internal/pkg/clock"
)

// StayDates holds the check-in/check-out pair exactly as entered.
type StayDates struct {
	checkIn  string
	checkOut string
}

func NewStayDates(checkIn, checkOut string) StayDates {
	return StayDates{checkIn: strings.TrimSpace(checkIn), checkOut: strings.TrimSpace(checkOut)}
}

func (d StayDates) CheckIn() string  { return d.checkIn }
func (d StayDates) CheckOut() string { return d.checkOut }

// Parse returns both dates or ErrInvalidDateFormat.
func (d StayDates) Parse() (time.Time, time.Time, error) {
	in, err := ParseDate(d.checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	out, err := ParseDate(d.checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return in, out, nil
}

// Nights is the raw day count; see NightsBetween.
func (d StayDates) Nights() int {
	return NightsBetween(d.checkIn, d.checkOut)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(clock.DateLayout, s)
	if err != nil {
		return time.Time{}, errors.Join(ErrInvalidDateFormat, err)
	}
	return t, nil
}

const secondsPerDay = 24 * 60 * 60

// NightsBetween returns checkOut minus checkIn in whole days, which may be
// zero or negative. Unparseable input counts as one night.
func NightsBetween(checkIn, checkOut string) int {
	in, err := ParseDate(checkIn)
	if err != nil {
		return 1
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return 1
	}
	// Both are UTC midnights; time.Duration would saturate past ~292 years.
	return int((out.Unix() - in.Unix()) / secondsPerDay)
}

type GuestCount struct {
	value int
}

// NewGuestCount coerces non-positive counts to one guest.
func NewGuestCount(n int) GuestCount {
	if n <= 0 {
		n = 1
	}
	return GuestCount{value: n}
}

func (g GuestCount) Int() int {
	return g.value
}

type SpecialRequests struct {
	value string
}

func NewSpecialRequests(value string) SpecialRequests {
	return SpecialRequests{value: strings.TrimSpace(value)}
}

func (n SpecialRequests) String() string {
	return n.value
}

func (n SpecialRequests) IsEmpty() bool {
	return n.value == ""
}
