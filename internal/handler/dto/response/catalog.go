package response

import (
	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RoomTypeResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	PricePerNight  int64    `json:"price_per_night"`
	FormattedPrice string   `json:"formatted_price"`
	MaxOccupancy   int      `json:"max_occupancy"`
	Amenities      []string `json:"amenities"`
	ImageURLs      []string `json:"image_urls"`
}

type HotelResponse struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Description    string             `json:"description"`
	ImageURL       string             `json:"image_url"`
	PricePerNight  int64              `json:"price_per_night"`
	FormattedPrice string             `json:"formatted_price"`
	Rating         float64            `json:"rating"`
	Location       string             `json:"location"`
	Amenities      []string           `json:"amenities"`
	RoomTypes      []RoomTypeResponse `json:"room_types"`
}

// FromHotelView copies the view and renders prices in currency.
func FromHotelView(v *queries.HotelView, currency string) *HotelResponse {
	res := &HotelResponse{}
	_ = copier.CopyWithOption(res, v, copier.Option{DeepCopy: true})
	res.FormattedPrice = money.New(v.PricePerNight).Format(currency)
	for i := range res.RoomTypes {
		res.RoomTypes[i].FormattedPrice = money.New(res.RoomTypes[i].PricePerNight).Format(currency)
	}
	return res
}

func FromHotelViews(vs []*queries.HotelView, currency string) []*HotelResponse {
	res := make([]*HotelResponse, len(vs))
	for i, v := range vs {
		res[i] = FromHotelView(v, currency)
	}
	return res
}

type PaymentMethodResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Icon string `json:"icon"`
}

func FromPaymentMethodViews(vs []*queries.PaymentMethodView) []*PaymentMethodResponse {
	res := make([]*PaymentMethodResponse, 0, len(vs))
	_ = copier.Copy(&res, vs)
	return res
}

type SuggestionResponse struct {
	Text     string   `json:"text"`
	Field    string   `json:"field"`
	HotelIDs []string `json:"hotel_ids"`
	Score    float64  `json:"score"`
}

func FromSuggestionViews(vs []queries.SuggestionView) []SuggestionResponse {
	res := make([]SuggestionResponse, len(vs))
	for i, v := range vs {
		res[i] = SuggestionResponse{
			Text:     v.Text,
			Field:    string(v.Field),
			HotelIDs: v.HotelIDs,
			Score:    v.Score,
		}
	}
	return res
}
