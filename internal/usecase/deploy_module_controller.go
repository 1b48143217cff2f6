package usecase

import (
	"context"
)

const (
	ModuleControllerContract = "DesiegeModuleController"
	ArbiterContract          = "DesiegeArbiter"
)

// DeployModuleController deploys DesiegeModuleController with the address of
// the already deployed DesiegeArbiter as its only constructor argument.
type DeployModuleController struct {
	deploy *DeployContract
}

// NewDeployModuleController creates a new DeployModuleController use case
func NewDeployModuleController(deploy *DeployContract) *DeployModuleController {
	return &DeployModuleController{deploy: deploy}
}

// Run executes the deployment
func (uc *DeployModuleController) Run(ctx context.Context) (*DeployContractResult, error) {
	return uc.deploy.Run(ctx, DeployContractParams{
		DisplayName:  ModuleControllerContract,
		ArtifactName: ModuleControllerContract,
		Dependencies: []string{ArbiterContract},
	})
}
