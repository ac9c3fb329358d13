package commands

import (
	"context"
	"log/slog"

	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"
)

type ProfileCommands interface {
	UpdateProfile(ctx context.Context, in UpdateProfileInput) (*queries.UserView, error)
}

type profileCommandsImpl struct {
	store shared.SessionStore
}

func NewProfileCommands(store shared.SessionStore) ProfileCommands {
	return &profileCommandsImpl{store: store}
}

// UpdateProfile replaces name and phone number; id, email and profile image
// are kept.
func (p *profileCommandsImpl) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*queries.UserView, error) {
	updated, err := p.store.UpdateUser(ctx, func(cur *user.User) (*user.User, error) {
		return cur.WithProfile(in.Name, in.PhoneNumber), nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrNotAuthenticated
		}
		return nil, errs.Mark(err, ErrSessionUpdate)
	}

	slog.Info("profile updated", slog.String("user_id", updated.ID().String()))
	return queries.ToUserView(updated), nil
}
