package app

import (
	"log/slog"

	"github.com/bibliothecadao/desiege-cli/internal/domain/config"
	"github.com/bibliothecadao/desiege-cli/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Use cases
	DeployModuleController *usecase.DeployModuleController
	DeployContract         *usecase.DeployContract
	ResolveArtifact        *usecase.ResolveArtifact
	ListDeployments        *usecase.ListDeployments
	ShowDeployment         *usecase.ShowDeployment
	RegisterDeployment     *usecase.RegisterDeployment
	TagDeployment          *usecase.TagDeployment
	ListNetworks           *usecase.ListNetworks
	ShowConfig             *usecase.ShowConfig
	SetConfig              *usecase.SetConfig
	RemoveConfig           *usecase.RemoveConfig
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	deployModuleController *usecase.DeployModuleController,
	deployContract *usecase.DeployContract,
	resolveArtifact *usecase.ResolveArtifact,
	listDeployments *usecase.ListDeployments,
	showDeployment *usecase.ShowDeployment,
	registerDeployment *usecase.RegisterDeployment,
	tagDeployment *usecase.TagDeployment,
	listNetworks *usecase.ListNetworks,
	showConfig *usecase.ShowConfig,
	setConfig *usecase.SetConfig,
	removeConfig *usecase.RemoveConfig,
) (*App, error) {
	return &App{
		Config:                 cfg,
		Log:                    log,
		DeployModuleController: deployModuleController,
		DeployContract:         deployContract,
		ResolveArtifact:        resolveArtifact,
		ListDeployments:        listDeployments,
		ShowDeployment:         showDeployment,
		RegisterDeployment:     registerDeployment,
		TagDeployment:          tagDeployment,
		ListNetworks:           listNetworks,
		ShowConfig:             showConfig,
		SetConfig:              setConfig,
		RemoveConfig:           removeConfig,
	}, nil
}
