package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/bibliothecadao/desiege-cli/internal/domain"
	"github.com/bibliothecadao/desiege-cli/internal/domain/models"
	"github.com/bibliothecadao/desiege-cli/internal/usecase"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func deployedResult() *usecase.DeployContractResult {
	return &usecase.DeployContractResult{
		DisplayName: "DesiegeModuleController",
		Dependencies: []usecase.ResolvedDependency{
			{Name: "DesiegeArbiter", Address: big.NewInt(0xabc)},
		},
		Deployment: &models.DeploymentResult{
			Deployment: &models.Deployment{
				ID:              "default/1337/DesiegeModuleController",
				ContractName:    "DesiegeModuleController",
				Address:         "0x5FbDB2315678afecb367f032d93F642f64180aa3",
				TransactionHash: "0x1111111111111111111111111111111111111111111111111111111111111111",
				BlockNumber:     1,
			},
			GasUsed: 53000,
		},
	}
}

func TestCompletionHandle(t *testing.T) {
	tests := []struct {
		name       string
		strict     bool
		run        deployRun
		wantErr    bool
		wantErrOut []string
	}{
		{
			name:       "success prints the deployed address to stderr",
			run:        func() (*usecase.DeployContractResult, error) { return deployedResult(), nil },
			wantErrOut: []string{"Deployed DesiegeModuleController at 0x5FbDB2315678afecb367f032d93F642f64180aa3", "DesiegeArbiter = 0xabc", "gas 53000"},
		},
		{
			name: "failure is logged but not returned",
			run: func() (*usecase.DeployContractResult, error) {
				return nil, &domain.DeploymentNotFoundError{Name: "DesiegeArbiter", Namespace: "default", ChainID: 1337}
			},
			wantErrOut: []string{"DesiegeArbiter not found in default/1337"},
		},
		{
			name:   "strict failure is returned",
			strict: true,
			run: func() (*usecase.DeployContractResult, error) {
				return nil, fmt.Errorf("send transaction: %w", errors.New("insufficient funds"))
			},
			wantErr:    true,
			wantErrOut: []string{"insufficient funds"},
		},
		{
			name:       "panic is recovered",
			run:        func() (*usecase.DeployContractResult, error) { panic("boom") },
			wantErrOut: []string{"panicked: boom"},
		},
		{
			name:       "missing result is a failure",
			run:        func() (*usecase.DeployContractResult, error) { return nil, nil },
			wantErrOut: []string{"returned no result"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			c := completion{out: &out, errOut: &errOut, strict: tt.strict}

			err := c.handle(tt.run)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsReported(err))
			} else {
				require.NoError(t, err)
			}
			for _, s := range tt.wantErrOut {
				assert.Contains(t, errOut.String(), s)
			}
			assert.Empty(t, out.String())
		})
	}
}

func TestCompletionHandleRunsOnce(t *testing.T) {
	calls := 0
	c := completion{out: &bytes.Buffer{}, errOut: &bytes.Buffer{}}

	require.NoError(t, c.handle(func() (*usecase.DeployContractResult, error) {
		calls++
		return nil, errors.New("rpc down")
	}))
	assert.Equal(t, 1, calls)
}

func TestCompletionHandleJSON(t *testing.T) {
	var out, errOut bytes.Buffer
	c := completion{out: &out, errOut: &errOut, json: true}

	require.NoError(t, c.handle(func() (*usecase.DeployContractResult, error) { return deployedResult(), nil }))
	assert.Empty(t, errOut.String())

	var decoded deployOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, "DesiegeModuleController", decoded.Name)
	assert.Equal(t, "0x5FbDB2315678afecb367f032d93F642f64180aa3", decoded.Address)
	assert.Equal(t, map[string]string{"DesiegeArbiter": "0xabc"}, decoded.Dependencies)
	assert.False(t, decoded.DryRun)
	require.NotNil(t, decoded.Deployment)
	assert.Equal(t, "default/1337/DesiegeModuleController", decoded.Deployment.ID)

	want, err := domain.AddressToInt(decoded.Address)
	require.NoError(t, err)
	assert.Equal(t, want.String(), decoded.AddressInt)
}

func TestIsReported(t *testing.T) {
	base := errors.New("failed")
	assert.False(t, IsReported(base))
	assert.True(t, IsReported(reportedError{base}))
	assert.True(t, IsReported(fmt.Errorf("wrapped: %w", reportedError{base})))
	assert.ErrorIs(t, reportedError{base}, base)
}

func TestContractNameOf(t *testing.T) {
	assert.Equal(t, "DesiegeArbiter", contractNameOf("DesiegeArbiter"))
	assert.Equal(t, "DesiegeArbiter", contractNameOf("src/Desiege.sol:DesiegeArbiter"))
}
