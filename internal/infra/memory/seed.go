package memory

import (
	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/domain/payment"
)

type hotelSeed struct {
	hotel hotel.Params
	rooms []hotel.RoomTypeParams
}

var hotelSeeds = []hotelSeed{
	{
		hotel: hotel.Params{
			ID:            "1",
			Name:          "Grand Royal Hotel",
			Description:   "Luxury hotel in the heart of Jakarta with world-class amenities and exceptional service.",
			ImageURL:      "https://images.unsplash.com/photo-1564501049412-61c2a3083791?w=800",
			PricePerNight: money.New(1500000),
			Rating:        4.8,
			Location:      "Jakarta Pusat",
			Amenities:     []string{"WiFi", "Pool", "Spa", "Restaurant", "Gym", "Parking"},
		},
		rooms: []hotel.RoomTypeParams{
			{
				ID:            "1-1",
				Name:          "Deluxe Room",
				Description:   "Spacious room with city view",
				PricePerNight: money.New(1500000),
				MaxOccupancy:  2,
				Amenities:     []string{"King Bed", "City View", "Mini Bar", "WiFi"},
				ImageURLs:     []string{"https://images.unsplash.com/photo-1631049307264-da0ec9d70304?w=800"},
			},
			{
				ID:            "1-2",
				Name:          "Executive Suite",
				Description:   "Premium suite with living area",
				PricePerNight: money.New(2500000),
				MaxOccupancy:  4,
				Amenities:     []string{"King Bed", "Living Room", "Kitchen", "Balcony"},
				ImageURLs:     []string{"https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?w=800"},
			},
		},
	},
	{
		hotel: hotel.Params{
			ID:            "2",
			Name:          "Oceanview Resort",
			Description:   "Beautiful beachfront resort perfect for vacation and relaxation.",
			ImageURL:      "https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?w=800",
			PricePerNight: money.New(1200000),
			Rating:        4.6,
			Location:      "Bali",
			Amenities:     []string{"Beach Access", "WiFi", "Pool", "Restaurant", "Bar"},
		},
		rooms: []hotel.RoomTypeParams{
			{
				ID:            "2-1",
				Name:          "Ocean View Room",
				Description:   "Room with stunning ocean view",
				PricePerNight: money.New(1200000),
				MaxOccupancy:  2,
				Amenities:     []string{"Ocean View", "Queen Bed", "Balcony", "WiFi"},
				ImageURLs:     []string{"https://images.unsplash.com/photo-1571896349842-33c89424de2d?w=800"},
			},
			{
				ID:            "2-2",
				Name:          "Beach Villa",
				Description:   "Private villa with direct beach access",
				PricePerNight: money.New(3000000),
				MaxOccupancy:  6,
				Amenities:     []string{"Private Beach", "Pool", "Kitchen", "Living Room"},
				ImageURLs:     []string{"https://images.unsplash.com/photo-1540541338287-41700207dee6?w=800"},
			},
		},
	},
	{
		hotel: hotel.Params{
			ID:            "3",
			Name:          "Mountain Lodge",
			Description:   "Cozy lodge nestled in the mountains with breathtaking views.",
			ImageURL:      "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=800",
			PricePerNight: money.New(800000),
			Rating:        4.4,
			Location:      "Bandung",
			Amenities:     []string{"Mountain View", "WiFi", "Restaurant", "Hiking Trails"},
		},
		rooms: []hotel.RoomTypeParams{
			{
				ID:            "3-1",
				Name:          "Standard Room",
				Description:   "Comfortable room with mountain view",
				PricePerNight: money.New(800000),
				MaxOccupancy:  2,
				Amenities:     []string{"Mountain View", "Double Bed", "Heater", "WiFi"},
				ImageURLs:     []string{"https://images.unsplash.com/photo-1586611292717-f828b167408c?w=800"},
			},
		},
	},
	{
		hotel: hotel.Params{
			ID:            "4",
			Name:          "Business Center Hotel",
			Description:   "Modern business hotel with excellent conference facilities.",
			ImageURL:      "https://images.unsplash.com/photo-1551882547-ff40c63fe5fa?w=800",
			PricePerNight: money.New(1000000),
			Rating:        4.5,
			Location:      "Jakarta Selatan",
			Amenities:     []string{"Conference Room", "WiFi", "Business Center", "Restaurant"},
		},
		rooms: []hotel.RoomTypeParams{
			{
				ID:            "4-1",
				Name:          "Business Room",
				Description:   "Perfect for business travelers",
				PricePerNight: money.New(1000000),
				MaxOccupancy:  2,
				Amenities:     []string{"Work Desk", "King Bed", "Coffee Machine", "WiFi"},
				ImageURLs:     []string{"https://images.unsplash.com/photo-1584132967334-10e028bd69f7?w=800"},
			},
		},
	},
	{
		hotel: hotel.Params{
			ID:            "5",
			Name:          "Boutique Heritage Hotel",
			Description:   "Charming boutique hotel with rich cultural heritage and unique design.",
			ImageURL:      "https://images.unsplash.com/photo-1542314831-068cd1dbfeeb?w=800",
			PricePerNight: money.New(900000),
			Rating:        4.7,
			Location:      "Yogyakarta",
			Amenities:     []string{"Cultural Tours", "WiFi", "Traditional Restaurant", "Art Gallery"},
		},
		rooms: []hotel.RoomTypeParams{
			{
				ID:            "5-1",
				Name:          "Heritage Room",
				Description:   "Traditional room with modern comfort",
				PricePerNight: money.New(900000),
				MaxOccupancy:  2,
				Amenities:     []string{"Traditional Decor", "Queen Bed", "Garden View", "WiFi"},
				ImageURLs:     []string{"https://images.unsplash.com/photo-1595576508898-0ad5c879a061?w=800"},
			},
		},
	},
}

type paymentSeed struct {
	id   string
	name string
	typ  payment.Type
	icon string
}

var paymentSeeds = []paymentSeed{
	{"1", "Credit Card", payment.TypeCreditCard, "credit_card"},
	{"2", "Debit Card", payment.TypeDebitCard, "debit_card"},
	{"3", "OVO", payment.TypeEWallet, "ovo"},
	{"4", "GoPay", payment.TypeEWallet, "gopay"},
	{"5", "Bank Transfer", payment.TypeBankTransfer, "bank_transfer"},
}

// SeedHotels builds the demo catalog.
func SeedHotels() ([]*hotel.Hotel, error) {
	out := make([]*hotel.Hotel, 0, len(hotelSeeds))
	for _, s := range hotelSeeds {
		rooms := make([]*hotel.RoomType, 0, len(s.rooms))
		for _, rp := range s.rooms {
			rt, err := hotel.NewRoomType(rp)
			if err != nil {
				return nil, err
			}
			rooms = append(rooms, rt)
		}
		h, err := hotel.NewHotel(s.hotel, rooms...)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}

func SeedPaymentMethods() ([]*payment.Method, error) {
	out := make([]*payment.Method, 0, len(paymentSeeds))
	for _, s := range paymentSeeds {
		m, err := payment.NewMethod(s.id, s.name, s.typ, s.icon)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
