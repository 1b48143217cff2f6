package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/bibliothecadao/desiege-cli/internal/domain"
	"github.com/bibliothecadao/desiege-cli/internal/domain/models"
)

// DeployContractParams contains parameters for a single contract deployment
type DeployContractParams struct {
	DisplayName  string   // Registry label for the new deployment
	ArtifactName string   // Foundry artifact, "Name" or "File.sol:Name"
	Dependencies []string // Deployed contracts whose addresses lead the constructor args
	Args         []string // Literal constructor args appended after the dependencies
}

// ResolvedDependency is a dependency name with its integer address
type ResolvedDependency struct {
	Name    string
	Address *big.Int
}

// DeployContractResult contains the result of a deployment
type DeployContractResult struct {
	DisplayName  string
	Dependencies []ResolvedDependency
	Deployment   *models.DeploymentResult
}

// DeployContract resolves the addresses a contract depends on, then deploys it
// exactly once. Resolution happens in order and stops at the first failure,
// in which case nothing is deployed.
type DeployContract struct {
	registry AddressRegistry
	deployer ContractDeployer
	progress ProgressSink
	log      *slog.Logger
}

// NewDeployContract creates a new DeployContract use case
func NewDeployContract(
	registry AddressRegistry,
	deployer ContractDeployer,
	progress ProgressSink,
	log *slog.Logger,
) *DeployContract {
	if progress == nil {
		progress = NopProgress{}
	}
	return &DeployContract{
		registry: registry,
		deployer: deployer,
		progress: progress,
		log:      log.With("component", "DeployContract"),
	}
}

// Run executes the deployment
func (uc *DeployContract) Run(ctx context.Context, params DeployContractParams) (*DeployContractResult, error) {
	if params.ArtifactName == "" {
		return nil, fmt.Errorf("artifact name is required")
	}
	if params.DisplayName == "" {
		params.DisplayName = params.ArtifactName
	}

	result := &DeployContractResult{DisplayName: params.DisplayName}
	args := make([]any, 0, len(params.Dependencies)+len(params.Args))

	for _, name := range params.Dependencies {
		uc.progress.OnProgress(ctx, ProgressEvent{
			Stage:   StageResolving,
			Message: fmt.Sprintf("Resolving %s", name),
			Spinner: true,
		})

		address, err := uc.registry.ResolveDeployedAddress(ctx, name)
		if err != nil {
			uc.progress.Error(fmt.Sprintf("Resolving %s", name))
			return nil, fmt.Errorf("failed to resolve %s: %w", name, err)
		}
		uc.log.Debug("resolved dependency", "name", name, "address", domain.FormatAddressInt(address))

		result.Dependencies = append(result.Dependencies, ResolvedDependency{Name: name, Address: address})
		args = append(args, address)
	}

	for _, arg := range params.Args {
		args = append(args, arg)
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageDeploying,
		Message: fmt.Sprintf("Deploying %s", params.DisplayName),
	})

	deployment, err := uc.deployer.Deploy(ctx, params.DisplayName, params.ArtifactName, args)
	if err != nil {
		uc.progress.Error(fmt.Sprintf("Deploying %s", params.DisplayName))
		return nil, fmt.Errorf("failed to deploy %s: %w", params.DisplayName, err)
	}
	result.Deployment = deployment

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageCompleted,
		Message: fmt.Sprintf("Deployed %s", params.DisplayName),
	})

	return result, nil
}
