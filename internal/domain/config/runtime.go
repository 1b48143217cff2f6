package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string

	// Context settings
	Namespace string   // Registry namespace, also the foundry profile
	Network   *Network // nil if not specified
	Sender    string   // Sender name from desiege.toml

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool // Output in JSON format
	Timeout        time.Duration
	DryRun         bool
	Strict         bool // Deployment failures produce a non-zero exit status

	// Resolved configurations
	FoundryConfig *FoundryConfig
	DesiegeConfig *DesiegeConfig
}

// Network represents network configuration
type Network struct {
	Name    string `json:"name"`
	RPCURL  string `json:"rpcUrl"`
	ChainID uint64 `json:"chainId"`
}

// ArtifactsDir returns the Foundry output directory for the active profile
func (c *RuntimeConfig) ArtifactsDir() string {
	out := "out"
	if c.FoundryConfig != nil {
		if p, ok := c.FoundryConfig.Profile[c.Namespace]; ok && p.OutPath != "" {
			out = p.OutPath
		} else if p, ok := c.FoundryConfig.Profile["default"]; ok && p.OutPath != "" {
			out = p.OutPath
		}
	}
	return out
}

// ChainID returns the active chain ID, or 0 when no network is selected
func (c *RuntimeConfig) ChainID() uint64 {
	if c.Network == nil {
		return 0
	}
	return c.Network.ChainID
}
