package usecase

import (
	"context"
	"math/big"

	"github.com/bibliothecadao/desiege-cli/internal/domain"
	"github.com/bibliothecadao/desiege-cli/internal/domain/config"
	"github.com/bibliothecadao/desiege-cli/internal/domain/models"
)

// AddressRegistry resolves contract names to the integer value of their
// recorded deployment address.
type AddressRegistry interface {
	ResolveDeployedAddress(ctx context.Context, name string) (*big.Int, error)
}

// DeploymentRepository handles persistence of deployments
type DeploymentRepository interface {
	AddressRegistry
	GetDeployment(ctx context.Context, name string) (*models.Deployment, error)
	GetDeploymentByAddress(ctx context.Context, address string) (*models.Deployment, error)
	ListDeployments(ctx context.Context, filter domain.DeploymentFilter) ([]*models.Deployment, error)
	SaveDeployment(ctx context.Context, deployment *models.Deployment) error
	RemoveDeployment(ctx context.Context, name string) error
}

// ArtifactRepository provides access to compiled contracts
type ArtifactRepository interface {
	GetArtifact(ctx context.Context, name string) (*models.Artifact, error)
}

// ContractDeployer performs a deployment and records the result. The
// arguments are coerced to the artifact's constructor inputs.
type ContractDeployer interface {
	Deploy(ctx context.Context, displayName, artifactName string, args []any) (*models.DeploymentResult, error)
}

// ArtifactSelector picks one of several artifacts sharing a contract name
type ArtifactSelector interface {
	SelectArtifact(ctx context.Context, name string, matches []string) (string, error)
}

// Confirmer asks the user before an irreversible action
type Confirmer interface {
	Confirm(ctx context.Context, message string) (bool, error)
}

// LocalConfigStore persists the per-checkout context defaults
type LocalConfigStore interface {
	Exists() bool
	Load(ctx context.Context) (*domain.LocalConfig, error)
	Save(ctx context.Context, config *domain.LocalConfig) error
	GetPath() string
}

// NetworkResolver maps [rpc_endpoints] names to networks
type NetworkResolver interface {
	GetNetworks(ctx context.Context) []string
	Resolve(ctx context.Context, name string) (*config.Network, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

const (
	StageResolving = "resolving"
	StageDeploying = "deploying"
	StageCompleted = "completed"
)
