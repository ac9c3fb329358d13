package coordinator

import (
	"context"

	"hotel-booking/internal/pkg/observable"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"
)

type AccountState struct {
	User          *queries.UserView
	Loading       bool
	Success       bool
	UpdateSuccess bool
	ErrorMessage  string
}

func (s AccountState) IsLoggedIn() bool {
	return s.User != nil
}

type AccountFlowDeps struct {
	Auth    commands.AuthCommands
	Profile commands.ProfileCommands
	Account queries.AccountQueries
}

// AccountFlow drives sign-in, registration and profile edits for one
// session.
type AccountFlow struct {
	deps  AccountFlowDeps
	state *observable.Value[AccountState]
}

func NewAccountFlow(ctx context.Context, deps AccountFlowDeps) *AccountFlow {
	f := &AccountFlow{
		deps:  deps,
		state: observable.New(AccountState{}),
	}
	if u, err := deps.Account.CurrentUser(ctx); err == nil {
		f.state.Set(AccountState{User: u})
	}
	return f
}

func (f *AccountFlow) State() AccountState {
	return f.state.Get()
}

func (f *AccountFlow) Subscribe(fn func(AccountState)) (unsubscribe func()) {
	return f.state.Subscribe(fn)
}

func (f *AccountFlow) Login(ctx context.Context, email, password string) AccountState {
	f.begin()
	u, err := f.deps.Auth.Login(ctx, commands.LoginInput{Email: email, Password: password})
	return f.signedIn(u, err, "Login failed")
}

func (f *AccountFlow) Register(ctx context.Context, email, password, name string) AccountState {
	f.begin()
	u, err := f.deps.Auth.Register(ctx, commands.RegisterInput{Email: email, Password: password, Name: name})
	return f.signedIn(u, err, "Registration failed")
}

// Logout resets the flow to its signed-out state.
func (f *AccountFlow) Logout(ctx context.Context) AccountState {
	if err := f.deps.Auth.Logout(ctx); err != nil {
		return f.state.Update(func(s AccountState) AccountState {
			s.ErrorMessage = Message(err, "Logout failed")
			return s
		})
	}
	return f.state.Update(func(AccountState) AccountState { return AccountState{} })
}

func (f *AccountFlow) UpdateProfile(ctx context.Context, name, phoneNumber string) AccountState {
	f.state.Update(func(s AccountState) AccountState {
		s.Loading = true
		s.UpdateSuccess = false
		s.ErrorMessage = ""
		return s
	})

	u, err := f.deps.Profile.UpdateProfile(ctx, commands.UpdateProfileInput{Name: name, PhoneNumber: phoneNumber})
	return f.state.Update(func(s AccountState) AccountState {
		s.Loading = false
		if err != nil {
			s.ErrorMessage = Message(err, "Update failed")
			return s
		}
		s.User = u
		s.UpdateSuccess = true
		return s
	})
}

func (f *AccountFlow) ClearError() {
	f.state.Update(func(s AccountState) AccountState {
		s.ErrorMessage = ""
		return s
	})
}

func (f *AccountFlow) ResetSuccess() {
	f.state.Update(func(s AccountState) AccountState {
		s.Success = false
		return s
	})
}

func (f *AccountFlow) ResetUpdateSuccess() {
	f.state.Update(func(s AccountState) AccountState {
		s.UpdateSuccess = false
		return s
	})
}

func (f *AccountFlow) begin() {
	f.state.Update(func(s AccountState) AccountState {
		s.Loading = true
		s.Success = false
		s.ErrorMessage = ""
		return s
	})
}

func (f *AccountFlow) signedIn(u *queries.UserView, err error, fallback string) AccountState {
	return f.state.Update(func(s AccountState) AccountState {
		s.Loading = false
		if err != nil {
			s.ErrorMessage = Message(err, fallback)
			return s
		}
		s.User = u
		s.Success = true
		return s
	})
}
