package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/bibliothecadao/desiege-cli/internal/domain/config"
	"github.com/joho/godotenv"
)

// loadDotEnv loads .env files into the environment, where both DESIEGE_*
// settings and ${VAR} references in the TOML files pick them up. Variables
// already present in the environment win.
func loadDotEnv(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}

// loadFoundryConfig loads and parses foundry.toml
func loadFoundryConfig(projectRoot string) (*config.FoundryConfig, error) {
	foundryPath := filepath.Join(projectRoot, "foundry.toml")

	var cfg config.FoundryConfig
	if _, err := toml.DecodeFile(foundryPath, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse foundry.toml: %w", err)
	}

	if cfg.RpcEndpoints == nil {
		cfg.RpcEndpoints = make(map[string]string)
	}
	if cfg.Profile == nil {
		cfg.Profile = make(map[string]config.ProfileConfig)
	}

	for name, url := range cfg.RpcEndpoints {
		cfg.RpcEndpoints[name] = os.ExpandEnv(url)
	}

	return &cfg, nil
}

// loadDesiegeConfig loads desiege.toml. A missing file yields an empty config.
func loadDesiegeConfig(projectRoot string) (*config.DesiegeConfig, error) {
	cfg := &config.DesiegeConfig{
		Senders: make(map[string]config.SenderConfig),
	}

	path := filepath.Join(projectRoot, "desiege.toml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse desiege.toml: %w", err)
	}

	for name, sender := range cfg.Senders {
		if sender.Type == "" {
			return nil, fmt.Errorf("sender %s: type is required", name)
		}
		sender.PrivateKey = os.ExpandEnv(sender.PrivateKey)
		sender.Address = os.ExpandEnv(sender.Address)
		cfg.Senders[name] = sender
	}

	return cfg, nil
}
