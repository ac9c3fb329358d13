package memory

import (
	"context"
	"log/slog"
	"slices"

	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/domain/payment"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/usecase/shared"
)

var _ shared.CatalogReadStore = (*CatalogStore)(nil)

// CatalogStore is immutable after construction and safe for concurrent use.
type CatalogStore struct {
	logger  *slog.Logger
	hotels  []*hotel.Hotel
	methods []*payment.Method
}

func NewCatalogStore(logger *slog.Logger, hotels []*hotel.Hotel, methods []*payment.Method) *CatalogStore {
	return &CatalogStore{
		logger:  logger,
		hotels:  slices.Clone(hotels),
		methods: slices.Clone(methods),
	}
}

func NewSeededCatalogStore(logger *slog.Logger) (*CatalogStore, error) {
	hotels, err := SeedHotels()
	if err != nil {
		return nil, infra.WrapRepoErr(logger, infra.KindCorruptSeed, "failed to seed hotels", err)
	}
	methods, err := SeedPaymentMethods()
	if err != nil {
		return nil, infra.WrapRepoErr(logger, infra.KindCorruptSeed, "failed to seed payment methods", err)
	}
	return NewCatalogStore(logger, hotels, methods), nil
}

func (s *CatalogStore) ListHotels(_ context.Context) ([]*hotel.Hotel, error) {
	return slices.Clone(s.hotels), nil
}

func (s *CatalogStore) FindHotelByID(_ context.Context, id string) (*hotel.Hotel, error) {
	for _, h := range s.hotels {
		if h.ID() == id {
			return h, nil
		}
	}
	return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "hotel not found", nil)
}

func (s *CatalogStore) ListPaymentMethods(_ context.Context) ([]*payment.Method, error) {
	return slices.Clone(s.methods), nil
}

func (s *CatalogStore) FindPaymentMethodByID(_ context.Context, id string) (*payment.Method, error) {
	for _, m := range s.methods {
		if m.ID() == id {
			return m, nil
		}
	}
	return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "payment method not found", nil)
}
