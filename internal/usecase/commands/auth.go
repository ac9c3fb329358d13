package commands

import (
	"context"
	"log/slog"

	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"
)

var ErrSessionUpdate = errs.New("session update failed")

// AuthCommands opens and closes the demo session. Credentials are never
// checked, so Login and Register succeed for any input.
type AuthCommands interface {
	Login(ctx context.Context, in LoginInput) (*queries.UserView, error)
	Register(ctx context.Context, in RegisterInput) (*queries.UserView, error)
	Logout(ctx context.Context) error
}

type authCommandsImpl struct {
	store shared.SessionStore
}

func NewAuthCommands(store shared.SessionStore) AuthCommands {
	return &authCommandsImpl{store: store}
}

func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*queries.UserView, error) {
	u := user.NewUserFromEmail(user.NewEmail(in.Email))
	if err := a.signIn(ctx, u); err != nil {
		return nil, err
	}
	return queries.ToUserView(u), nil
}

func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*queries.UserView, error) {
	u := user.NewUser(user.NewEmail(in.Email), in.Name)
	if err := a.signIn(ctx, u); err != nil {
		return nil, err
	}
	return queries.ToUserView(u), nil
}

func (a *authCommandsImpl) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return errs.Mark(err, ErrSessionUpdate)
	}
	slog.Info("user signed out")
	return nil
}

func (a *authCommandsImpl) signIn(ctx context.Context, u *user.User) error {
	if err := a.store.SetUser(ctx, u); err != nil {
		return errs.Mark(err, ErrSessionUpdate)
	}
	slog.Info("user signed in", slog.String("user_id", u.ID().String()))
	return nil
}
