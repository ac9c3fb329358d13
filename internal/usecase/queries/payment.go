package queries

import (
	"context"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"
)

var ErrPaymentMethodNotFound = errs.New("payment method not found")

type PaymentQueries interface {
	List(ctx context.Context) ([]*PaymentMethodView, error)
	GetByID(ctx context.Context, id string) (*PaymentMethodView, error)
}

type paymentQueriesImpl struct {
	catalog shared.CatalogReadStore
}

func NewPaymentQueries(catalog shared.CatalogReadStore) PaymentQueries {
	return &paymentQueriesImpl{catalog: catalog}
}

func (q *paymentQueriesImpl) List(ctx context.Context) ([]*PaymentMethodView, error) {
	methods, err := q.catalog.ListPaymentMethods(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*PaymentMethodView, 0, len(methods))
	for _, m := range methods {
		out = append(out, ToPaymentMethodView(m))
	}
	return out, nil
}

func (q *paymentQueriesImpl) GetByID(ctx context.Context, id string) (*PaymentMethodView, error) {
	m, err := q.catalog.FindPaymentMethodByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentMethodNotFound
		}
		return nil, err
	}
	return ToPaymentMethodView(m), nil
}
