package hotel

// Filter bounds are independent; a nil bound places no constraint.
type Filter struct {
	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64
}

func (f Filter) IsEmpty() bool {
	return f.MinPrice == nil && f.MaxPrice == nil && f.MinRating == nil
}

func (f Filter) Matches(h *Hotel) bool {
	price := h.pricePerNight.Float64()
	if f.MinPrice != nil && price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && price > *f.MaxPrice {
		return false
	}
	if f.MinRating != nil && h.rating < *f.MinRating {
		return false
	}
	return true
}

func Search(hotels []*Hotel, query string) []*Hotel {
	out := make([]*Hotel, 0, len(hotels))
	for _, h := range hotels {
		if h.MatchesQuery(query) {
			out = append(out, h)
		}
	}
	return out
}

func Apply(hotels []*Hotel, f Filter) []*Hotel {
	out := make([]*Hotel, 0, len(hotels))
	for _, h := range hotels {
		if f.Matches(h) {
			out = append(out, h)
		}
	}
	return out
}
