package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/bibliothecadao/desiege-cli/internal/domain"
	"github.com/bibliothecadao/desiege-cli/internal/domain/config"
	"github.com/bibliothecadao/desiege-cli/internal/usecase"
	"github.com/samber/lo"
)

// LocalConfigFile is read by viper as "config.local" with type json
const LocalConfigFile = "config.local.json"

// LocalConfigStoreAdapter stores .desiege/config.local.json, the file
// SetupViper reads the context defaults from. Saved values must name a
// network from foundry.toml and a sender from desiege.toml.
type LocalConfigStoreAdapter struct {
	configPath string
	networks   []string
	senders    []string
}

// NewLocalConfigStoreAdapter creates a new LocalConfigStoreAdapter
func NewLocalConfigStoreAdapter(cfg *config.RuntimeConfig) *LocalConfigStoreAdapter {
	s := &LocalConfigStoreAdapter{
		configPath: filepath.Join(cfg.DataDir, LocalConfigFile),
	}
	if cfg.FoundryConfig != nil {
		s.networks = lo.Keys(cfg.FoundryConfig.RpcEndpoints)
		slices.Sort(s.networks)
	}
	if cfg.DesiegeConfig != nil {
		s.senders = lo.Keys(cfg.DesiegeConfig.Senders)
		slices.Sort(s.senders)
	}
	return s
}

// Exists checks if the config file exists
func (s *LocalConfigStoreAdapter) Exists() bool {
	_, err := os.Stat(s.configPath)
	return !os.IsNotExist(err)
}

// Load reads the config file. A missing file or namespace yields the defaults.
func (s *LocalConfigStoreAdapter) Load(ctx context.Context) (*domain.LocalConfig, error) {
	cfg := domain.DefaultLocalConfig()

	data, err := os.ReadFile(s.configPath)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Namespace == "" {
		cfg.Namespace = domain.DefaultLocalConfig().Namespace
	}

	return cfg, nil
}

// Save validates cfg against the project and writes it atomically
func (s *LocalConfigStoreAdapter) Save(ctx context.Context, cfg *domain.LocalConfig) error {
	if cfg.Network != "" && !slices.Contains(s.networks, cfg.Network) {
		return fmt.Errorf("network %q is not in foundry.toml [rpc_endpoints] (have: %v)", cfg.Network, s.networks)
	}
	// Senders are only checked once desiege.toml defines some
	if cfg.Sender != "" && len(s.senders) > 0 && !slices.Contains(s.senders, cfg.Sender) {
		return fmt.Errorf("sender %q is not defined in desiege.toml (have: %v)", cfg.Sender, s.senders)
	}

	if err := os.MkdirAll(filepath.Dir(s.configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	tmpPath := s.configPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return os.Rename(tmpPath, s.configPath)
}

// GetPath returns the path to the config file
func (s *LocalConfigStoreAdapter) GetPath() string {
	return s.configPath
}

var _ usecase.LocalConfigStore = (*LocalConfigStoreAdapter)(nil)
