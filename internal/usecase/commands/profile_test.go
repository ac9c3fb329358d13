//go:build unit

package commands_test

import (
	"context"
	"testing"

	"hotel-booking/internal/infra/memory"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	state := memory.NewSessionState(discardLogger())
	profile := commands.NewProfileCommands(state)

	t.Run("requires a session", func(t *testing.T) {
		_, err := profile.UpdateProfile(ctx, commands.UpdateProfileInput{Name: "X", PhoneNumber: "1"})
		assert.ErrorIs(t, err, errs.ErrNotAuthenticated)
	})

	t.Run("keeps id, email and image", func(t *testing.T) {
		original := builder.NewUserBuilder().With(func(b *builder.UserBuilder) {
			b.ProfileImageURL = "https://img.example.com/budi.png"
		}).BuildDomain()
		require.NoError(t, state.SetUser(ctx, original))

		got, err := profile.UpdateProfile(ctx, commands.UpdateProfileInput{Name: "Budi S.", PhoneNumber: "0899"})
		require.NoError(t, err)

		assert.Equal(t, original.ID(), got.ID)
		assert.Equal(t, "budi@example.com", got.Email)
		assert.Equal(t, "https://img.example.com/budi.png", got.ProfileImageURL)
		assert.Equal(t, "Budi S.", got.Name)
		assert.Equal(t, "0899", got.PhoneNumber)

		current, err := state.CurrentUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Budi S.", current.Name())
	})
}
