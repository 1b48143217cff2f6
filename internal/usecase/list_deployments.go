package usecase

import (
	"context"
	"sort"

	"github.com/bibliothecadao/desiege-cli/internal/domain"
	"github.com/bibliothecadao/desiege-cli/internal/domain/config"
	"github.com/bibliothecadao/desiege-cli/internal/domain/models"
	"github.com/samber/lo"
)

// ListDeploymentsParams contains parameters for listing deployments
type ListDeploymentsParams struct {
	// Namespace and chain come from RuntimeConfig
	ContractName string
	Tag          string
	AllChains    bool
}

// DeploymentListResult contains the result of listing deployments
type DeploymentListResult struct {
	Deployments []*models.Deployment
	Summary     DeploymentSummary
}

// DeploymentSummary provides summary statistics
type DeploymentSummary struct {
	Total   int
	ByChain map[uint64]int
}

// ListDeployments is the use case for listing deployments
type ListDeployments struct {
	config *config.RuntimeConfig
	repo   DeploymentRepository
}

// NewListDeployments creates a new ListDeployments use case
func NewListDeployments(cfg *config.RuntimeConfig, repo DeploymentRepository) *ListDeployments {
	return &ListDeployments{
		config: cfg,
		repo:   repo,
	}
}

// Run executes the list deployments use case
func (uc *ListDeployments) Run(ctx context.Context, params ListDeploymentsParams) (*DeploymentListResult, error) {
	filter := domain.DeploymentFilter{
		Namespace:    uc.config.Namespace,
		ContractName: params.ContractName,
		Tag:          params.Tag,
	}
	if !params.AllChains {
		filter.ChainID = uc.config.ChainID()
	}

	deployments, err := uc.repo.ListDeployments(ctx, filter)
	if err != nil {
		return nil, err
	}

	// Sort by chain, then name for consistent output
	sort.SliceStable(deployments, func(i, j int) bool {
		if deployments[i].ChainID != deployments[j].ChainID {
			return deployments[i].ChainID < deployments[j].ChainID
		}
		return deployments[i].ContractName < deployments[j].ContractName
	})

	byChain := lo.CountValuesBy(deployments, func(d *models.Deployment) uint64 {
		return d.ChainID
	})

	return &DeploymentListResult{
		Deployments: deployments,
		Summary: DeploymentSummary{
			Total:   len(deployments),
			ByChain: byChain,
		},
	}, nil
}
