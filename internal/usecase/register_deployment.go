package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bibliothecadao/desiege-cli/internal/domain"
	"github.com/bibliothecadao/desiege-cli/internal/domain/config"
	"github.com/bibliothecadao/desiege-cli/internal/domain/models"
	"github.com/ethereum/go-ethereum/common"
)

// RegisterDeploymentParams contains parameters for registering an external deployment
type RegisterDeploymentParams struct {
	Name      string // Registry name, e.g. "DesiegeArbiter"
	Address   string // Hex address or integer (decimal or 0x hex)
	Overwrite bool   // Replace an existing record with the same name
	Tags      []string
}

// RegisterDeployment records a contract deployed outside this tool so that
// later deployments can depend on it.
type RegisterDeployment struct {
	config *config.RuntimeConfig
	repo   DeploymentRepository
}

// NewRegisterDeployment creates a new RegisterDeployment use case
func NewRegisterDeployment(cfg *config.RuntimeConfig, repo DeploymentRepository) *RegisterDeployment {
	return &RegisterDeployment{
		config: cfg,
		repo:   repo,
	}
}

// Run executes the register deployment use case
func (uc *RegisterDeployment) Run(ctx context.Context, params RegisterDeploymentParams) (*models.Deployment, error) {
	if uc.config.Network == nil {
		return nil, domain.ErrNetworkRequired
	}
	if params.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	address, err := parseAddress(params.Address)
	if err != nil {
		return nil, err
	}

	if !params.Overwrite {
		_, err := uc.repo.GetDeployment(ctx, params.Name)
		if err == nil {
			return nil, fmt.Errorf("%s: %w (use --overwrite to replace it)", params.Name, domain.ErrAlreadyExists)
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}

	// One address, one name per namespace and chain
	existing, err := uc.repo.GetDeploymentByAddress(ctx, address.Hex())
	if err == nil && existing.ContractName != params.Name {
		return nil, fmt.Errorf("%s is already registered as %s: %w", address.Hex(), existing.ContractName, domain.ErrAlreadyExists)
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	deployment := &models.Deployment{
		ID:           models.DeploymentID(uc.config.Namespace, uc.config.Network.ChainID, params.Name),
		Namespace:    uc.config.Namespace,
		ChainID:      uc.config.Network.ChainID,
		ContractName: params.Name,
		Address:      address.Hex(),
		Source:       models.SourceRegistered,
		Artifact:     models.ArtifactInfo{Name: params.Name},
		Tags:         params.Tags,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.repo.SaveDeployment(ctx, deployment); err != nil {
		return nil, fmt.Errorf("failed to save deployment: %w", err)
	}

	return deployment, nil
}

// parseAddress accepts a hex address or an integer in decimal or hex form
func parseAddress(s string) (common.Address, error) {
	if common.IsHexAddress(s) {
		return common.HexToAddress(s), nil
	}
	v, err := domain.ParseInt(s)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, s)
	}
	return domain.IntToAddress(v)
}
