package coordinator

import (
	"context"
	"log/slog"
	"strings"

	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/pkg/observable"
	"hotel-booking/internal/usecase/queries"
)

// BrowseState keeps the full catalog next to the currently shown subset.
// Search and filter each start from the full catalog.
type BrowseState struct {
	Hotels       []*queries.HotelView
	Visible      []*queries.HotelView
	SearchQuery  string
	Filter       hotel.Filter
	Suggestions  []queries.SuggestionView
	Loading      bool
	ErrorMessage string
}

type BrowseFlow struct {
	hotels queries.HotelQueries
	state  *observable.Value[BrowseState]
}

func NewBrowseFlow(hotels queries.HotelQueries) *BrowseFlow {
	return &BrowseFlow{
		hotels: hotels,
		state:  observable.New(BrowseState{}),
	}
}

func (f *BrowseFlow) State() BrowseState {
	return f.state.Get()
}

func (f *BrowseFlow) Subscribe(fn func(BrowseState)) (unsubscribe func()) {
	return f.state.Subscribe(fn)
}

func (f *BrowseFlow) Load(ctx context.Context) BrowseState {
	f.begin()
	list, err := f.hotels.List(ctx)
	return f.state.Update(func(s BrowseState) BrowseState {
		s.Loading = false
		if err != nil {
			s.ErrorMessage = Message(err, "Failed to load hotels")
			return s
		}
		s.Hotels, s.Visible = list, list
		return s
	})
}

// Search shows every loaded hotel for a blank query. When nothing matches,
// spelling suggestions are offered instead.
func (f *BrowseFlow) Search(ctx context.Context, query string) BrowseState {
	if strings.TrimSpace(query) == "" {
		return f.state.Update(func(s BrowseState) BrowseState {
			s.SearchQuery = query
			s.Visible = s.Hotels
			s.Suggestions = nil
			return s
		})
	}

	f.begin()
	found, err := f.hotels.Search(ctx, query)
	var suggestions []queries.SuggestionView
	if err == nil && len(found) == 0 {
		var suggestErr error
		suggestions, suggestErr = f.hotels.Suggest(ctx, query, 0)
		if suggestErr != nil {
			slog.Warn("hotel suggestions unavailable",
				slog.String("query", query),
				slog.String("error", suggestErr.Error()))
			suggestions = nil
		}
	}
	return f.state.Update(func(s BrowseState) BrowseState {
		s.Loading = false
		s.SearchQuery = query
		if err != nil {
			s.ErrorMessage = Message(err, "Search failed")
			return s
		}
		s.Visible = found
		s.Suggestions = suggestions
		return s
	})
}

func (f *BrowseFlow) ApplyFilter(ctx context.Context, filter hotel.Filter) BrowseState {
	f.begin()
	found, err := f.hotels.Filter(ctx, filter)
	return f.state.Update(func(s BrowseState) BrowseState {
		s.Loading = false
		s.Filter = filter
		if err != nil {
			s.ErrorMessage = Message(err, "Filter failed")
			return s
		}
		s.Visible = found
		return s
	})
}

func (f *BrowseFlow) ClearFilters() {
	f.state.Update(func(s BrowseState) BrowseState {
		s.Filter = hotel.Filter{}
		s.Visible = s.Hotels
		return s
	})
}

// HotelByID looks only at the loaded catalog.
func (f *BrowseFlow) HotelByID(id string) (*queries.HotelView, bool) {
	for _, h := range f.state.Get().Hotels {
		if h.ID == id {
			return h, true
		}
	}
	return nil, false
}

func (f *BrowseFlow) ClearError() {
	f.state.Update(func(s BrowseState) BrowseState {
		s.ErrorMessage = ""
		return s
	})
}

func (f *BrowseFlow) begin() {
	f.state.Update(func(s BrowseState) BrowseState {
		s.Loading = true
		s.ErrorMessage = ""
		return s
	})
}
