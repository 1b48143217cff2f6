package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/bibliothecadao/desiege-cli/internal/cli/render"
	"github.com/bibliothecadao/desiege-cli/internal/domain"
	"github.com/bibliothecadao/desiege-cli/internal/domain/models"
	"github.com/bibliothecadao/desiege-cli/internal/usecase"
)

// reportedError marks an error that has already been written to the user
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error { return e.error }

// IsReported reports whether err was already printed by a command
func IsReported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}

// deployRun performs one deployment attempt
type deployRun func() (*usecase.DeployContractResult, error)

// completion handles the outcome of a deploy command. The outcome, success
// summary or error, is written to errOut; only --json output goes to out.
// Unless strict is set a failure is only logged and the command still
// succeeds.
type completion struct {
	out    io.Writer
	errOut io.Writer
	strict bool
	json   bool
}

func (c completion) handle(run deployRun) error {
	result, err := guard(run)
	if err != nil {
		render.NewDeployRenderer(c.errOut).RenderError(err)
		if c.strict {
			return reportedError{err}
		}
		return nil
	}

	if c.json {
		return render.JSON(c.out, newDeployOutput(result))
	}
	return render.NewDeployRenderer(c.errOut).RenderResult(result)
}

// guard turns a panic inside run into an error
func guard(run deployRun) (result *usecase.DeployContractResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("deployment panicked: %v", r)
		}
	}()

	result, err = run()
	if err == nil && (result == nil || result.Deployment == nil || result.Deployment.Deployment == nil) {
		err = fmt.Errorf("deployment returned no result")
	}
	return result, err
}

type deployOutput struct {
	Name            string             `json:"name"`
	Address         string             `json:"address"`
	AddressInt      string             `json:"addressInt"`
	DryRun          bool               `json:"dryRun"`
	Dependencies    map[string]string  `json:"dependencies,omitempty"`
	TransactionHash string             `json:"transactionHash,omitempty"`
	BlockNumber     uint64             `json:"blockNumber,omitempty"`
	GasUsed         uint64             `json:"gasUsed,omitempty"`
	Deployment      *models.Deployment `json:"deployment,omitempty"`
}

func newDeployOutput(result *usecase.DeployContractResult) deployOutput {
	d := result.Deployment.Deployment
	out := deployOutput{
		Name:            result.DisplayName,
		Address:         d.Address,
		DryRun:          result.Deployment.DryRun,
		TransactionHash: d.TransactionHash,
		BlockNumber:     d.BlockNumber,
		GasUsed:         result.Deployment.GasUsed,
	}
	if v, err := domain.AddressToInt(d.Address); err == nil {
		out.AddressInt = v.String()
	}
	if !out.DryRun {
		out.Deployment = d
	}
	if len(result.Dependencies) > 0 {
		out.Dependencies = make(map[string]string, len(result.Dependencies))
		for _, dep := range result.Dependencies {
			out.Dependencies[dep.Name] = domain.FormatAddressInt(dep.Address)
		}
	}
	return out
}
