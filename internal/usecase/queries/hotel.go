package queries

import (
	"context"
	"strings"

	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"
)

type HotelQueries interface {
	List(ctx context.Context) ([]*HotelView, error)
	GetByID(ctx context.Context, id string) (*HotelView, error)
	Search(ctx context.Context, query string) ([]*HotelView, error)
	Filter(ctx context.Context, f hotel.Filter) ([]*HotelView, error)
	Suggest(ctx context.Context, query string, limit int) ([]SuggestionView, error)
}

type hotelQueriesImpl struct {
	catalog         shared.CatalogReadStore
	suggestionLimit int
}

func NewHotelQueries(catalog shared.CatalogReadStore, suggestionLimit int) HotelQueries {
	return &hotelQueriesImpl{
		catalog:         catalog,
		suggestionLimit: suggestionLimit,
	}
}

func (q *hotelQueriesImpl) List(ctx context.Context) ([]*HotelView, error) {
	hotels, err := q.catalog.ListHotels(ctx)
	if err != nil {
		return nil, err
	}
	return ToHotelViews(hotels), nil
}

func (q *hotelQueriesImpl) GetByID(ctx context.Context, id string) (*HotelView, error) {
	h, err := q.catalog.FindHotelByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrHotelNotFound
		}
		return nil, err
	}
	return ToHotelView(h), nil
}

// Search matches name or location case-insensitively. An empty query
// matches every hotel.
func (q *hotelQueriesImpl) Search(ctx context.Context, query string) ([]*HotelView, error) {
	hotels, err := q.catalog.ListHotels(ctx)
	if err != nil {
		return nil, err
	}
	return ToHotelViews(hotel.Search(hotels, query)), nil
}

func (q *hotelQueriesImpl) Filter(ctx context.Context, f hotel.Filter) ([]*HotelView, error) {
	hotels, err := q.catalog.ListHotels(ctx)
	if err != nil {
		return nil, err
	}
	return ToHotelViews(hotel.Apply(hotels, f)), nil
}

func (q *hotelQueriesImpl) Suggest(ctx context.Context, query string, limit int) ([]SuggestionView, error) {
	if limit <= 0 {
		limit = q.suggestionLimit
	}
	hotels, err := q.catalog.ListHotels(ctx)
	if err != nil {
		return nil, err
	}
	return newSuggester(hotels).suggest(query, limit), nil
}
