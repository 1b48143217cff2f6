package usecase

import (
	"context"

	"github.com/bibliothecadao/desiege-cli/internal/domain"
	"github.com/bibliothecadao/desiege-cli/internal/domain/config"
)

// ShowConfigResult holds the stored local config next to the context a
// deploy would actually run with after flags and env are applied
type ShowConfigResult struct {
	Config     *domain.LocalConfig `json:"config"`
	ConfigPath string              `json:"path"`
	Exists     bool                `json:"exists"`
	Effective  EffectiveContext    `json:"effective"`
}

// EffectiveContext is the resolved namespace, network and sender
type EffectiveContext struct {
	Namespace string        `json:"namespace"`
	Network   string        `json:"network,omitempty"`
	ChainID   uint64        `json:"chainId,omitempty"`
	Sender    SenderSummary `json:"sender"`
}

// SenderSummary describes the sender deployments are signed with
type SenderSummary struct {
	Name    string            `json:"name"`
	Defined bool              `json:"defined"`
	Type    config.SenderType `json:"type,omitempty"`
	Address string            `json:"address,omitempty"`
}

// ShowConfig is a use case for showing configuration
type ShowConfig struct {
	cfg   *config.RuntimeConfig
	store LocalConfigStore
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(cfg *config.RuntimeConfig, store LocalConfigStore) *ShowConfig {
	return &ShowConfig{
		cfg:   cfg,
		store: store,
	}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	stored, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	effective := EffectiveContext{
		Namespace: uc.cfg.Namespace,
		Sender:    uc.senderSummary(),
	}
	if uc.cfg.Network != nil {
		effective.Network = uc.cfg.Network.Name
		effective.ChainID = uc.cfg.Network.ChainID
	}

	return &ShowConfigResult{
		Config:     stored,
		ConfigPath: uc.store.GetPath(),
		Exists:     uc.store.Exists(),
		Effective:  effective,
	}, nil
}

func (uc *ShowConfig) senderSummary() SenderSummary {
	name := uc.cfg.Sender
	if name == "" {
		name = config.DefaultSender
	}

	summary := SenderSummary{Name: name}
	if uc.cfg.DesiegeConfig == nil {
		return summary
	}
	sender, ok := uc.cfg.DesiegeConfig.Senders[name]
	if !ok {
		return summary
	}

	summary.Defined = true
	summary.Type = sender.Type
	summary.Address = sender.AddressHex()
	return summary
}
