//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/bibliothecadao/desiege-cli/internal/adapters"
	"github.com/bibliothecadao/desiege-cli/internal/config"
	"github.com/bibliothecadao/desiege-cli/internal/logging"
	"github.com/bibliothecadao/desiege-cli/internal/usecase"
	"github.com/google/wire"
	"github.com/spf13/viper"
)

// InitApp creates a fully wired App instance
func InitApp(ctx context.Context, v *viper.Viper, sink usecase.ProgressSink) (*App, func(), error) {
	wire.Build(
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewDeployContract,
		usecase.NewDeployModuleController,
		usecase.NewResolveArtifact,
		usecase.NewListDeployments,
		usecase.NewShowDeployment,
		usecase.NewRegisterDeployment,
		usecase.NewTagDeployment,
		usecase.NewListNetworks,
		usecase.NewShowConfig,
		usecase.NewSetConfig,
		usecase.NewRemoveConfig,

		// App
		NewApp,
	)
	return nil, nil, nil
}
