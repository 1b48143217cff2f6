package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/bibliothecadao/desiege-cli/internal/domain/models"
	"github.com/bibliothecadao/desiege-cli/internal/usecase"
	"github.com/fatih/color"
)

// DeploymentRenderer renders detailed information about a single deployment
type DeploymentRenderer struct {
	out io.Writer
}

// NewDeploymentRenderer creates a new deployment renderer
func NewDeploymentRenderer(out io.Writer) *DeploymentRenderer {
	return &DeploymentRenderer{out: out}
}

// RenderDeployment renders detailed deployment information
func (r *DeploymentRenderer) RenderDeployment(result *usecase.ShowDeploymentResult) error {
	deployment := result.Deployment

	color.New(color.FgCyan, color.Bold).Fprintf(r.out, "Deployment: %s\n", deployment.ID)
	fmt.Fprintln(r.out, strings.Repeat("=", 80))

	fmt.Fprintln(r.out, "\nBasic Information:")
	fmt.Fprintf(r.out, "  Contract: %s\n", color.New(color.FgYellow).Sprint(deployment.ContractName))
	fmt.Fprintf(r.out, "  Address: %s\n", deployment.Address)
	fmt.Fprintf(r.out, "  Address (int): %s\n", result.AddressInt.String())
	fmt.Fprintf(r.out, "  Namespace: %s\n", deployment.Namespace)
	fmt.Fprintf(r.out, "  Chain ID: %d\n", deployment.ChainID)
	fmt.Fprintf(r.out, "  Source: %s\n", deployment.Source)

	if deployment.Source == models.SourceDeployed {
		fmt.Fprintln(r.out, "\nTransaction:")
		fmt.Fprintf(r.out, "  Hash: %s\n", deployment.TransactionHash)
		fmt.Fprintf(r.out, "  Block: %d\n", deployment.BlockNumber)
		fmt.Fprintf(r.out, "  Deployer: %s\n", deployment.Deployer)
		if deployment.ConstructorArgs != "" && deployment.ConstructorArgs != "0x" {
			fmt.Fprintf(r.out, "  Constructor Args: %s\n", deployment.ConstructorArgs)
		}
	}

	if deployment.Artifact.Path != "" || deployment.Artifact.CompilerVersion != "" {
		fmt.Fprintln(r.out, "\nArtifact Information:")
		fmt.Fprintf(r.out, "  Name: %s\n", deployment.Artifact.Name)
		fmt.Fprintf(r.out, "  Path: %s\n", relativePath(deployment.Artifact.Path))
		fmt.Fprintf(r.out, "  Compiler: %s\n", deployment.Artifact.CompilerVersion)
		if deployment.Artifact.BytecodeHash != "" {
			fmt.Fprintf(r.out, "  Bytecode Hash: %s\n", deployment.Artifact.BytecodeHash)
		}
	}

	if len(deployment.Tags) > 0 {
		fmt.Fprintf(r.out, "\nTags: %s\n", color.New(color.FgCyan).Sprint(strings.Join(deployment.Tags, ", ")))
	}

	fmt.Fprintf(r.out, "\nCreated: %s\n", deployment.CreatedAt.Format("2006-01-02 15:04:05"))
	return nil
}
