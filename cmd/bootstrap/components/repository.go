package components

import (
	"log/slog"

	"hotel-booking/internal/infra/memory"
	"hotel-booking/internal/usecase"
	"hotel-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			memory.NewSeededCatalogStore,
			fx.As(new(shared.CatalogReadStore)),
		),
		NewSessionBackendFactory,
	),
)

// NewSessionBackendFactory gives every session its own empty state.
func NewSessionBackendFactory(logger *slog.Logger) usecase.BackendFactory {
	return func() shared.SessionBackend {
		return memory.NewSessionState(logger)
	}
}
