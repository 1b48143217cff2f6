package usecase_test

import (
	"context"
	"math/big"

	"github.com/bibliothecadao/desiege-cli/internal/domain"
	"github.com/bibliothecadao/desiege-cli/internal/domain/models"
	"github.com/bibliothecadao/desiege-cli/internal/usecase"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of DeploymentRepository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ResolveDeployedAddress(ctx context.Context, name string) (*big.Int, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockRepository) GetDeployment(ctx context.Context, name string) (*models.Deployment, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Deployment), args.Error(1)
}

func (m *MockRepository) GetDeploymentByAddress(ctx context.Context, address string) (*models.Deployment, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Deployment), args.Error(1)
}

func (m *MockRepository) ListDeployments(ctx context.Context, filter domain.DeploymentFilter) ([]*models.Deployment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Deployment), args.Error(1)
}

func (m *MockRepository) SaveDeployment(ctx context.Context, deployment *models.Deployment) error {
	args := m.Called(ctx, deployment)
	return args.Error(0)
}

func (m *MockRepository) RemoveDeployment(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

// MockDeployer is a mock implementation of ContractDeployer
type MockDeployer struct {
	mock.Mock
}

func (m *MockDeployer) Deploy(ctx context.Context, displayName, artifactName string, args []any) (*models.DeploymentResult, error) {
	ret := m.Called(ctx, displayName, artifactName, args)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).(*models.DeploymentResult), ret.Error(1)
}

// MockArtifacts is a mock implementation of ArtifactRepository
type MockArtifacts struct {
	mock.Mock
}

func (m *MockArtifacts) GetArtifact(ctx context.Context, name string) (*models.Artifact, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Artifact), args.Error(1)
}

// MockSelector is a mock implementation of ArtifactSelector
type MockSelector struct {
	mock.Mock
}

func (m *MockSelector) SelectArtifact(ctx context.Context, name string, matches []string) (string, error) {
	args := m.Called(ctx, name, matches)
	return args.String(0), args.Error(1)
}

// recordingSink collects progress events
type recordingSink struct {
	events []usecase.ProgressEvent
	errors []string
}

func (s *recordingSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	s.events = append(s.events, event)
}

func (s *recordingSink) Info(string) {}
func (s *recordingSink) Error(message string) {
	s.errors = append(s.errors, message)
}

func (s *recordingSink) stages() []string {
	stages := make([]string, 0, len(s.events))
	for _, e := range s.events {
		stages = append(stages, e.Stage)
	}
	return stages
}
