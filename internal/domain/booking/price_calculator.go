package booking

import (
	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/domain/money"
)

type PriceCalculator interface {
	CalculateTotal(room *hotel.RoomType, dates StayDates) money.Money
}

// TotalPrice charges at least one night.
func TotalPrice(nights int, pricePerNight money.Money) money.Money {
	return pricePerNight.Multiply(max(1, nights))
}

// NightlyPriceCalculator never rejects a stay: inverted, equal or
// unparseable dates are priced as a single night.
type NightlyPriceCalculator struct{}

func NewNightlyPriceCalculator() *NightlyPriceCalculator {
	return &NightlyPriceCalculator{}
}

func (NightlyPriceCalculator) CalculateTotal(room *hotel.RoomType, dates StayDates) money.Money {
	return TotalPrice(dates.Nights(), room.PricePerNight())
}
