//go:build unit || e2e

package builder

import (
	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/usecase/queries"
)

type RoomTypeBuilder struct {
	ID            string
	Name          string
	PricePerNight int64
	MaxOccupancy  int
}

type HotelBuilder struct {
	ID            string
	Name          string
	Location      string
	PricePerNight int64
	Rating        float64
	Amenities     []string
	RoomTypes     []RoomTypeBuilder
}

func NewHotelBuilder() *HotelBuilder {
	return &HotelBuilder{
		ID:            "1",
		Name:          "Grand Royal Hotel",
		Location:      "Jakarta Pusat",
		PricePerNight: 1500000,
		Rating:        4.8,
		Amenities:     []string{"WiFi", "Pool"},
		RoomTypes: []RoomTypeBuilder{
			{ID: "1-1", Name: "Deluxe Room", PricePerNight: 1500000, MaxOccupancy: 2},
			{ID: "1-2", Name: "Executive Suite", PricePerNight: 2500000, MaxOccupancy: 4},
		},
	}
}

func (h *HotelBuilder) With(mutate func(*HotelBuilder)) *HotelBuilder {
	mutate(h)
	return h
}

// Build methods
func (h *HotelBuilder) BuildDomain() (*hotel.Hotel, error) {
	rooms := make([]*hotel.RoomType, 0, len(h.RoomTypes))
	for _, rb := range h.RoomTypes {
		rt, err := hotel.NewRoomType(hotel.RoomTypeParams{
			ID:            rb.ID,
			Name:          rb.Name,
			PricePerNight: money.New(rb.PricePerNight),
			MaxOccupancy:  rb.MaxOccupancy,
		})
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, rt)
	}
	return hotel.NewHotel(hotel.Params{
		ID:            h.ID,
		Name:          h.Name,
		Location:      h.Location,
		PricePerNight: money.New(h.PricePerNight),
		Rating:        h.Rating,
		Amenities:     h.Amenities,
	}, rooms...)
}

func (h *HotelBuilder) BuildView() *queries.HotelView {
	v := &queries.HotelView{
		ID:            h.ID,
		Name:          h.Name,
		Location:      h.Location,
		PricePerNight: h.PricePerNight,
		Rating:        h.Rating,
		Amenities:     h.Amenities,
		RoomTypes:     make([]queries.RoomTypeView, 0, len(h.RoomTypes)),
	}
	for _, rb := range h.RoomTypes {
		v.RoomTypes = append(v.RoomTypes, queries.RoomTypeView{
			ID:            rb.ID,
			Name:          rb.Name,
			PricePerNight: rb.PricePerNight,
			MaxOccupancy:  rb.MaxOccupancy,
		})
	}
	return v
}
