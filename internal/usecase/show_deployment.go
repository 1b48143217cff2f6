package usecase

import (
	"context"
	"math/big"

	"github.com/bibliothecadao/desiege-cli/internal/domain"
	"github.com/bibliothecadao/desiege-cli/internal/domain/models"
	"github.com/ethereum/go-ethereum/common"
)

// ShowDeploymentResult pairs a registry record with its integer address
type ShowDeploymentResult struct {
	Deployment *models.Deployment
	AddressInt *big.Int
}

// ShowDeployment looks a single deployment up by name
type ShowDeployment struct {
	repo DeploymentRepository
}

// NewShowDeployment creates a new ShowDeployment use case
func NewShowDeployment(repo DeploymentRepository) *ShowDeployment {
	return &ShowDeployment{repo: repo}
}

// Run looks the deployment up by name, full registry ID or hex address
func (uc *ShowDeployment) Run(ctx context.Context, ref string) (*ShowDeploymentResult, error) {
	var (
		deployment *models.Deployment
		err        error
	)
	if common.IsHexAddress(ref) {
		deployment, err = uc.repo.GetDeploymentByAddress(ctx, ref)
	} else {
		deployment, err = uc.repo.GetDeployment(ctx, ref)
	}
	if err != nil {
		return nil, err
	}

	addressInt, err := domain.AddressToInt(deployment.Address)
	if err != nil {
		return nil, err
	}

	return &ShowDeploymentResult{
		Deployment: deployment,
		AddressInt: addressInt,
	}, nil
}
