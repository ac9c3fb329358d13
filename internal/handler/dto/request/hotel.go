package request

import (
	"strings"

	"hotel-booking/internal/domain/hotel"
)

type HotelListQuery struct {
	Q         string   `form:"q"`
	MinPrice  *float64 `form:"minPrice" binding:"omitempty,min=0"`
	MaxPrice  *float64 `form:"maxPrice" binding:"omitempty,min=0"`
	MinRating *float64 `form:"minRating" binding:"omitempty,min=0,max=5"`
}

func (q *HotelListQuery) ToFilter() hotel.Filter {
	return hotel.Filter{
		MinPrice:  q.MinPrice,
		MaxPrice:  q.MaxPrice,
		MinRating: q.MinRating,
	}
}

func (q *HotelListQuery) HasSearch() bool {
	return strings.TrimSpace(q.Q) != ""
}

type SuggestionQuery struct {
	Q     string `form:"q" binding:"required"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=10"`
}
