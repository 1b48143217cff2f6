package adapters

import (
	"log/slog"

	"github.com/bibliothecadao/desiege-cli/internal/adapters/blockchain"
	"github.com/bibliothecadao/desiege-cli/internal/adapters/contracts"
	"github.com/bibliothecadao/desiege-cli/internal/adapters/fs"
	"github.com/bibliothecadao/desiege-cli/internal/adapters/interactive"
	"github.com/bibliothecadao/desiege-cli/internal/adapters/repository/deployments"
	internalconfig "github.com/bibliothecadao/desiege-cli/internal/config"
	"github.com/bibliothecadao/desiege-cli/internal/domain/config"
	"github.com/bibliothecadao/desiege-cli/internal/usecase"
	"github.com/google/wire"
)

// ProvideNetworkResolver provides a resolver over the project's rpc_endpoints
func ProvideNetworkResolver(cfg *config.RuntimeConfig) *internalconfig.NetworkResolver {
	return internalconfig.NewNetworkResolver(cfg.DataDir, cfg.FoundryConfig)
}

// ProvideDeployer provides the deployer and closes its RPC connection on cleanup
func ProvideDeployer(
	cfg *config.RuntimeConfig,
	artifacts usecase.ArtifactRepository,
	repo usecase.DeploymentRepository,
	confirmer usecase.Confirmer,
	log *slog.Logger,
) (*blockchain.Deployer, func()) {
	d := blockchain.NewDeployer(cfg, artifacts, repo, confirmer, log)
	return d, d.Close
}

// RepositorySet provides the file-backed deployment registry
var RepositorySet = wire.NewSet(
	deployments.NewFileRepository,
	wire.Bind(new(usecase.DeploymentRepository), new(*deployments.FileRepository)),
	wire.Bind(new(usecase.AddressRegistry), new(*deployments.FileRepository)),
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	contracts.NewArtifactStore,
	wire.Bind(new(usecase.ArtifactRepository), new(*contracts.ArtifactStore)),

	fs.NewLocalConfigStoreAdapter,
	wire.Bind(new(usecase.LocalConfigStore), new(*fs.LocalConfigStoreAdapter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.Confirmer), new(*interactive.SelectorAdapter)),
	wire.Bind(new(usecase.ArtifactSelector), new(*interactive.SelectorAdapter)),
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	ProvideNetworkResolver,
	wire.Bind(new(usecase.NetworkResolver), new(*internalconfig.NetworkResolver)),
)

// BlockchainSet provides blockchain-based implementations
var BlockchainSet = wire.NewSet(
	ProvideDeployer,
	wire.Bind(new(usecase.ContractDeployer), new(*blockchain.Deployer)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	RepositorySet,
	FSSet,
	InteractiveSet,
	ConfigSet,
	BlockchainSet,
)
