package usecase

import (
	"context"
	"fmt"

	"github.com/bibliothecadao/desiege-cli/internal/domain"
	"github.com/bibliothecadao/desiege-cli/internal/domain/config"
)

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Namespace string
	Networks  []NetworkStatus
}

// NetworkStatus is one foundry.toml endpoint with its registry footprint
type NetworkStatus struct {
	Name        string
	RPCURL      string
	ChainID     uint64
	Active      bool // selected with --network or config
	Deployments int  // registry entries in the active namespace on this chain
	Error       error
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	cfg      *config.RuntimeConfig
	resolver NetworkResolver
	repo     DeploymentRepository
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(cfg *config.RuntimeConfig, resolver NetworkResolver, repo DeploymentRepository) *ListNetworks {
	return &ListNetworks{
		cfg:      cfg,
		resolver: resolver,
		repo:     repo,
	}
}

// Run resolves every configured network and counts its deployments.
// Resolution failures are reported per network rather than failing the
// whole listing.
func (uc *ListNetworks) Run(ctx context.Context) (*ListNetworksResult, error) {
	networkNames := uc.resolver.GetNetworks(ctx)

	active := ""
	if uc.cfg.Network != nil {
		active = uc.cfg.Network.Name
	}

	networks := make([]NetworkStatus, 0, len(networkNames))
	for _, name := range networkNames {
		status := NetworkStatus{
			Name:   name,
			Active: name == active,
		}

		info, err := uc.resolver.Resolve(ctx, name)
		if err != nil {
			status.Error = err
			networks = append(networks, status)
			continue
		}
		status.RPCURL = info.RPCURL
		status.ChainID = info.ChainID

		deployments, err := uc.repo.ListDeployments(ctx, domain.DeploymentFilter{
			Namespace: uc.cfg.Namespace,
			ChainID:   info.ChainID,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to count deployments on %s: %w", name, err)
		}
		status.Deployments = len(deployments)

		networks = append(networks, status)
	}

	return &ListNetworksResult{
		Namespace: uc.cfg.Namespace,
		Networks:  networks,
	}, nil
}
