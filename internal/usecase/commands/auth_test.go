//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/memory"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/tests/common/builder"
	sharedmock "hotel-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name     string
		email    string
		wantName string
	}{
		{"local part capitalised", "budi@example.com", "Budi"},
		{"already capitalised", "Ani.Wijaya@mail.id", "Ani.Wijaya"},
		{"no at sign", "guest", "Guest"},
		{"empty input still succeeds", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			state := memory.NewSessionState(discardLogger())
			auth := commands.NewAuthCommands(state)

			got, err := auth.Login(ctx, commands.LoginInput{Email: tc.email, Password: "anything"})
			require.NoError(t, err)
			assert.Equal(t, tc.wantName, got.Name)
			assert.Equal(t, user.DefaultPhoneNumber, got.PhoneNumber)
			assert.NotEqual(t, uuid.Nil, got.ID)

			current, err := state.CurrentUser(ctx)
			require.NoError(t, err)
			assert.Equal(t, got.ID, current.ID())
		})
	}
}

func TestLogin_FreshIDEachTime(t *testing.T) {
	ctx := context.Background()
	auth := commands.NewAuthCommands(memory.NewSessionState(discardLogger()))
	in := builder.NewAuthBuilder().BuildLoginInput()

	first, err := auth.Login(ctx, in)
	require.NoError(t, err)
	second, err := auth.Login(ctx, in)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	state := memory.NewSessionState(discardLogger())
	auth := commands.NewAuthCommands(state)

	got, err := auth.Register(ctx, builder.NewAuthBuilder().BuildRegisterInput())
	require.NoError(t, err)
	assert.Equal(t, "Budi Santoso", got.Name)
	assert.Equal(t, "budi@example.com", got.Email)
	assert.Equal(t, user.DefaultPhoneNumber, got.PhoneNumber)

	current, err := state.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Budi Santoso", current.Name())
}

func TestLogout_ClearsSessionButNotCatalog(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)
	f.login(t)
	_, err := f.bookings.BookRoom(ctx, builder.NewBookingBuilder().BuildInput())
	require.NoError(t, err)

	require.NoError(t, f.auth.Logout(ctx))

	_, err = f.state.CurrentUser(ctx)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	list, err := f.state.ListBookings(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	hotels, err := f.catalog.ListHotels(ctx)
	require.NoError(t, err)
	assert.Len(t, hotels, 5)
}

func TestAuth_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := sharedmock.NewMockSessionStore(ctrl)
	storeErr := errors.New("locked")

	store.EXPECT().SetUser(gomock.Any(), gomock.Any()).Return(storeErr)
	store.EXPECT().Clear(gomock.Any()).Return(storeErr)

	auth := commands.NewAuthCommands(store)

	_, err := auth.Login(context.Background(), builder.NewAuthBuilder().BuildLoginInput())
	assert.True(t, errs.Is(err, commands.ErrSessionUpdate))

	err = auth.Logout(context.Background())
	assert.True(t, errs.Is(err, commands.ErrSessionUpdate))
}
