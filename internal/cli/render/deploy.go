package render

import (
	"fmt"
	"io"

	"github.com/bibliothecadao/desiege-cli/internal/domain"
	"github.com/bibliothecadao/desiege-cli/internal/usecase"
	"github.com/fatih/color"
)

// DeployRenderer writes the outcome of a deploy command
type DeployRenderer struct {
	out io.Writer
}

// NewDeployRenderer creates a new deploy renderer
func NewDeployRenderer(out io.Writer) *DeployRenderer {
	return &DeployRenderer{out: out}
}

// RenderResult renders a successful (or dry run) deployment
func (r *DeployRenderer) RenderResult(result *usecase.DeployContractResult) error {
	d := result.Deployment.Deployment

	if result.Deployment.DryRun {
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("Dry run: %s would be deployed at %s", result.DisplayName, d.Address)))
	} else {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Deployed %s at %s", result.DisplayName, d.Address)))
	}

	labelStyle := color.New(color.Faint)
	for _, dep := range result.Dependencies {
		fmt.Fprintf(r.out, "  %s %s = %s\n", labelStyle.Sprint("dependency"), dep.Name, domain.FormatAddressInt(dep.Address))
	}
	if d.Deployer != "" {
		fmt.Fprintf(r.out, "  %s %s\n", labelStyle.Sprint("deployer  "), d.Deployer)
	}
	if d.TransactionHash != "" {
		fmt.Fprintf(r.out, "  %s %s (block %d, gas %d)\n", labelStyle.Sprint("tx        "), d.TransactionHash, d.BlockNumber, result.Deployment.GasUsed)
	}
	return nil
}

// RenderError renders a failed deployment
func (r *DeployRenderer) RenderError(err error) {
	fmt.Fprintln(r.out, FormatError(err.Error()))
}
