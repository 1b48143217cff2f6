package models

import (
	"fmt"
	"time"
)

// DeploymentSource records how a registry entry came to exist
type DeploymentSource string

const (
	SourceDeployed   DeploymentSource = "DEPLOYED"
	SourceRegistered DeploymentSource = "REGISTERED"
)

// Deployment represents a contract deployment record
type Deployment struct {
	// Core identification
	ID           string           `json:"id" yaml:"id"`               // e.g., "default/5/DesiegeArbiter"
	Namespace    string           `json:"namespace" yaml:"namespace"` // e.g., "default", "staging"
	ChainID      uint64           `json:"chainId" yaml:"chainId"`
	ContractName string           `json:"contractName" yaml:"contractName"` // registry label, e.g., "DesiegeModuleController"
	Address      string           `json:"address" yaml:"address"`
	Source       DeploymentSource `json:"source" yaml:"source"`

	// Transaction details (empty for registered deployments)
	TransactionHash string `json:"transactionHash,omitempty" yaml:"transactionHash,omitempty"`
	BlockNumber     uint64 `json:"blockNumber,omitempty" yaml:"blockNumber,omitempty"`
	Deployer        string `json:"deployer,omitempty" yaml:"deployer,omitempty"`
	ConstructorArgs string `json:"constructorArgs,omitempty" yaml:"constructorArgs,omitempty"` // Hex encoded

	Artifact ArtifactInfo `json:"artifact" yaml:"artifact"`

	// Metadata
	Tags      []string  `json:"tags" yaml:"tags"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// ArtifactInfo contains contract artifact information
type ArtifactInfo struct {
	Name            string `json:"name" yaml:"name"`                     // e.g., "DesiegeModuleController"
	Path            string `json:"path,omitempty" yaml:"path,omitempty"` // e.g., "out/DesiegeModuleController.sol/DesiegeModuleController.json"
	CompilerVersion string `json:"compilerVersion,omitempty" yaml:"compilerVersion,omitempty"`
	BytecodeHash    string `json:"bytecodeHash,omitempty" yaml:"bytecodeHash,omitempty"`
}

// DeploymentResult is what a deployer hands back after a deployment attempt
type DeploymentResult struct {
	Deployment *Deployment
	GasUsed    uint64
	DryRun     bool
}

// DeploymentID builds the registry key for a deployment
func DeploymentID(namespace string, chainID uint64, name string) string {
	return fmt.Sprintf("%s/%d/%s", namespace, chainID, name)
}

// HasTag reports whether the deployment carries tag
func (d *Deployment) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
