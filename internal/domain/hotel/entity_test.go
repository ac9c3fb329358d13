//go:build unit

package hotel_test

import (
	"testing"

	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRoom(t *testing.T, id string, price int64, occupancy int) *hotel.RoomType {
	t.Helper()
	rt, err := hotel.NewRoomType(hotel.RoomTypeParams{
		ID:            id,
		Name:          "Room " + id,
		PricePerNight: money.New(price),
		MaxOccupancy:  occupancy,
		Amenities:     []string{"WiFi"},
	})
	require.NoError(t, err)
	return rt
}

func mustHotel(t *testing.T, id, name, location string, price int64, rating float64, rooms ...*hotel.RoomType) *hotel.Hotel {
	t.Helper()
	h, err := hotel.NewHotel(hotel.Params{
		ID:            id,
		Name:          name,
		Location:      location,
		PricePerNight: money.New(price),
		Rating:        rating,
		Amenities:     []string{"WiFi", "Pool"},
	}, rooms...)
	require.NoError(t, err)
	return h
}

func TestRoomType(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name   string
			params hotel.RoomTypeParams
			errIs  error
		}{
			{name: "valid", params: hotel.RoomTypeParams{ID: "1-1", MaxOccupancy: 2, PricePerNight: money.New(10)}},
			{name: "empty id", params: hotel.RoomTypeParams{ID: " ", MaxOccupancy: 2}, errIs: hotel.ErrEmptyID},
			{name: "zero occupancy", params: hotel.RoomTypeParams{ID: "1-1", MaxOccupancy: 0}, errIs: hotel.ErrInvalidOccupancy},
			{name: "negative price", params: hotel.RoomTypeParams{ID: "1-1", MaxOccupancy: 1, PricePerNight: money.New(-1)}, errIs: hotel.ErrNegativePrice},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				rt, err := hotel.NewRoomType(c.params)
				if c.errIs == nil {
					require.NoError(t, err)
					require.NotNil(t, rt)
					return
				}
				require.ErrorIs(t, err, c.errIs)
				require.Nil(t, rt)
			})
		}
	})

	t.Run("clamp guests", func(t *testing.T) {
		rt := mustRoom(t, "1-2", 2500000, 4)
		assert.Equal(t, 1, rt.ClampGuests(-3))
		assert.Equal(t, 1, rt.ClampGuests(0))
		assert.Equal(t, 3, rt.ClampGuests(3))
		assert.Equal(t, 4, rt.ClampGuests(9))
	})

	t.Run("slices are copied", func(t *testing.T) {
		amenities := []string{"King Bed"}
		rt, err := hotel.NewRoomType(hotel.RoomTypeParams{ID: "x", MaxOccupancy: 1, Amenities: amenities})
		require.NoError(t, err)

		amenities[0] = "changed"
		got := rt.Amenities()
		got[0] = "changed again"
		assert.Equal(t, []string{"King Bed"}, rt.Amenities())
	})
}

func TestHotel(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		_, err := hotel.NewHotel(hotel.Params{ID: ""})
		assert.ErrorIs(t, err, hotel.ErrEmptyID)

		_, err = hotel.NewHotel(hotel.Params{ID: "1", Rating: 5.1})
		assert.ErrorIs(t, err, hotel.ErrInvalidRating)

		_, err = hotel.NewHotel(hotel.Params{ID: "1", PricePerNight: money.New(-5)})
		assert.ErrorIs(t, err, hotel.ErrNegativePrice)

		_, err = hotel.NewHotel(hotel.Params{ID: "1"}, mustRoom(t, "a", 1, 1), mustRoom(t, "a", 2, 2))
		assert.ErrorIs(t, err, hotel.ErrDuplicateRoomType)
	})

	t.Run("find room type", func(t *testing.T) {
		h := mustHotel(t, "1", "Grand Royal Hotel", "Jakarta Pusat", 1500000, 4.8,
			mustRoom(t, "1-1", 1500000, 2), mustRoom(t, "1-2", 2500000, 4))

		rt, ok := h.FindRoomType("1-2")
		require.True(t, ok)
		assert.Equal(t, 4, rt.MaxOccupancy())

		_, ok = h.FindRoomType("2-1")
		assert.False(t, ok)
	})

	t.Run("matches query on name or location ignoring case", func(t *testing.T) {
		h := mustHotel(t, "3", "Mountain Lodge", "Bandung", 800000, 4.4)

		assert.True(t, h.MatchesQuery("bandung"))
		assert.True(t, h.MatchesQuery("LODGE"))
		assert.True(t, h.MatchesQuery(""))
		assert.False(t, h.MatchesQuery("bali"))
	})
}

func TestSearchAndFilter(t *testing.T) {
	hotels := []*hotel.Hotel{
		mustHotel(t, "1", "Grand Royal Hotel", "Jakarta Pusat", 1500000, 4.8),
		mustHotel(t, "2", "Oceanview Resort", "Bali", 1200000, 4.6),
		mustHotel(t, "3", "Mountain Lodge", "Bandung", 800000, 4.4),
		mustHotel(t, "4", "Business Center Hotel", "Jakarta Selatan", 1000000, 4.5),
		mustHotel(t, "5", "Boutique Heritage Hotel", "Yogyakarta", 900000, 4.7),
	}
	ids := func(hs []*hotel.Hotel) []string {
		out := make([]string, 0, len(hs))
		for _, h := range hs {
			out = append(out, h.ID())
		}
		return out
	}

	t.Run("search", func(t *testing.T) {
		assert.Equal(t, []string{"3"}, ids(hotel.Search(hotels, "bandung")))
		assert.Equal(t, []string{"1", "4"}, ids(hotel.Search(hotels, "jakarta")))
		assert.Equal(t, []string{"1", "4", "5"}, ids(hotel.Search(hotels, "hotel")))
		assert.Empty(t, hotel.Search(hotels, "surabaya"))
	})

	t.Run("filter", func(t *testing.T) {
		cases := []struct {
			name   string
			filter hotel.Filter
			want   []string
		}{
			{name: "no bounds", filter: hotel.Filter{}, want: []string{"1", "2", "3", "4", "5"}},
			{name: "all three bounds", filter: hotel.Filter{MinPrice: ptr.Of(1000000.0), MaxPrice: ptr.Of(1500000.0), MinRating: ptr.Of(4.5)}, want: []string{"1", "2", "4"}},
			{name: "min price only", filter: hotel.Filter{MinPrice: ptr.Of(1200000.0)}, want: []string{"1", "2"}},
			{name: "max price only", filter: hotel.Filter{MaxPrice: ptr.Of(900000.0)}, want: []string{"3", "5"}},
			{name: "rating only", filter: hotel.Filter{MinRating: ptr.Of(4.7)}, want: []string{"1", "5"}},
			{name: "empty range", filter: hotel.Filter{MinPrice: ptr.Of(2000000.0), MaxPrice: ptr.Of(1000000.0)}, want: []string{}},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				assert.Equal(t, c.want, ids(hotel.Apply(hotels, c.filter)))
			})
		}
		assert.True(t, hotel.Filter{}.IsEmpty())
		assert.False(t, hotel.Filter{MinRating: ptr.Of(1.0)}.IsEmpty())
	})
}
