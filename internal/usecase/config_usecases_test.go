package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bibliothecadao/desiege-cli/internal/domain"
	"github.com/bibliothecadao/desiege-cli/internal/domain/config"
	"github.com/bibliothecadao/desiege-cli/internal/domain/models"
	"github.com/bibliothecadao/desiege-cli/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memoryConfigStore keeps the local config in memory
type memoryConfigStore struct {
	config *domain.LocalConfig
}

func (s *memoryConfigStore) Exists() bool { return s.config != nil }

func (s *memoryConfigStore) Load(context.Context) (*domain.LocalConfig, error) {
	if s.config == nil {
		return domain.DefaultLocalConfig(), nil
	}
	clone := *s.config
	return &clone, nil
}

func (s *memoryConfigStore) Save(_ context.Context, cfg *domain.LocalConfig) error {
	clone := *cfg
	s.config = &clone
	return nil
}

func (s *memoryConfigStore) GetPath() string { return ".desiege/config.local.json" }

func TestConfigUseCases(t *testing.T) {
	ctx := context.Background()

	t.Run("set then show", func(t *testing.T) {
		store := &memoryConfigStore{}

		result, err := usecase.NewSetConfig(store).Run(ctx, usecase.SetConfigParams{Key: "ns", Value: "staging"})
		require.NoError(t, err)
		assert.Equal(t, domain.ConfigKeyNamespace, result.Key)

		_, err = usecase.NewSetConfig(store).Run(ctx, usecase.SetConfigParams{Key: "Network", Value: "goerli"})
		require.NoError(t, err)

		shown, err := usecase.NewShowConfig(&config.RuntimeConfig{Namespace: "default"}, store).Run(ctx)
		require.NoError(t, err)
		assert.True(t, shown.Exists)
		assert.Equal(t, &domain.LocalConfig{Namespace: "staging", Network: "goerli"}, shown.Config)
	})

	t.Run("show reports the effective sender", func(t *testing.T) {
		cfg := &config.RuntimeConfig{
			Namespace: "staging",
			Sender:    "deployer",
			Network:   &config.Network{Name: "goerli", ChainID: 5},
			DesiegeConfig: &config.DesiegeConfig{Senders: map[string]config.SenderConfig{
				"deployer": {
					Type:       config.SenderTypePrivateKey,
					PrivateKey: "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80",
				},
			}},
		}

		shown, err := usecase.NewShowConfig(cfg, &memoryConfigStore{}).Run(ctx)
		require.NoError(t, err)
		assert.False(t, shown.Exists)
		assert.Equal(t, usecase.EffectiveContext{
			Namespace: "staging",
			Network:   "goerli",
			ChainID:   5,
			Sender: usecase.SenderSummary{
				Name:    "deployer",
				Defined: true,
				Type:    config.SenderTypePrivateKey,
				Address: "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
			},
		}, shown.Effective)
	})

	t.Run("show flags an undefined sender", func(t *testing.T) {
		cfg := &config.RuntimeConfig{Namespace: "default", Sender: "ops", DesiegeConfig: &config.DesiegeConfig{}}

		shown, err := usecase.NewShowConfig(cfg, &memoryConfigStore{}).Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, usecase.SenderSummary{Name: "ops"}, shown.Effective.Sender)
		assert.Empty(t, shown.Effective.Network)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := usecase.NewSetConfig(&memoryConfigStore{}).Run(ctx, usecase.SetConfigParams{Key: "rpc", Value: "x"})
		assert.ErrorContains(t, err, "unknown config key: rpc")
	})

	t.Run("remove resets namespace to default", func(t *testing.T) {
		store := &memoryConfigStore{config: &domain.LocalConfig{Namespace: "staging", Sender: "ops"}}

		result, err := usecase.NewRemoveConfig(store).Run(ctx, usecase.RemoveConfigParams{Key: "namespace"})
		require.NoError(t, err)
		assert.Equal(t, "staging", result.RemovedValue)
		assert.Equal(t, "default", store.config.Namespace)

		result, err = usecase.NewRemoveConfig(store).Run(ctx, usecase.RemoveConfigParams{Key: "sender"})
		require.NoError(t, err)
		assert.Equal(t, "ops", result.RemovedValue)
		assert.Empty(t, store.config.Sender)
	})

	t.Run("remove needs a config file", func(t *testing.T) {
		_, err := usecase.NewRemoveConfig(&memoryConfigStore{}).Run(ctx, usecase.RemoveConfigParams{Key: "network"})
		assert.ErrorContains(t, err, "no config file found")
	})
}

type stubResolver struct {
	networks map[string]*config.Network
}

func (s stubResolver) GetNetworks(context.Context) []string {
	return []string{"goerli", "mainnet"}
}

func (s stubResolver) Resolve(_ context.Context, name string) (*config.Network, error) {
	if n, ok := s.networks[name]; ok {
		return n, nil
	}
	return nil, errors.New("connection refused")
}

func TestListNetworks(t *testing.T) {
	resolver := stubResolver{networks: map[string]*config.Network{
		"goerli": {Name: "goerli", RPCURL: "https://goerli.example", ChainID: 5},
	}}

	cfg := &config.RuntimeConfig{
		Namespace: "staging",
		Network:   &config.Network{Name: "goerli", ChainID: 5},
	}

	repo := new(MockRepository)
	repo.On("ListDeployments", mock.Anything, domain.DeploymentFilter{Namespace: "staging", ChainID: 5}).
		Return([]*models.Deployment{{ContractName: "DesiegeArbiter"}, {ContractName: "DesiegeModuleController"}}, nil).Once()

	result, err := usecase.NewListNetworks(cfg, resolver, repo).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "staging", result.Namespace)
	require.Len(t, result.Networks, 2)

	goerli := result.Networks[0]
	assert.Equal(t, uint64(5), goerli.ChainID)
	assert.NoError(t, goerli.Error)
	assert.True(t, goerli.Active)
	assert.Equal(t, 2, goerli.Deployments)

	mainnet := result.Networks[1]
	assert.EqualError(t, mainnet.Error, "connection refused")
	assert.False(t, mainnet.Active)
	assert.Zero(t, mainnet.Deployments)

	repo.AssertExpectations(t)
}

func TestTagDeployment(t *testing.T) {
	ctx := context.Background()

	t.Run("add", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetDeployment", ctx, "DesiegeArbiter").Return(&models.Deployment{ID: "default/5/DesiegeArbiter", Tags: []string{}}, nil)
		repo.On("SaveDeployment", ctx, mock.MatchedBy(func(d *models.Deployment) bool {
			return d.HasTag("core")
		})).Return(nil).Once()

		result, err := usecase.NewTagDeployment(repo, nil).Run(ctx, usecase.TagDeploymentParams{
			Name: "DesiegeArbiter", Tag: "core", Operation: usecase.TagAdd,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"core"}, result.CurrentTags)
		repo.AssertExpectations(t)
	})

	t.Run("remove missing tag", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetDeployment", ctx, "DesiegeArbiter").Return(&models.Deployment{Tags: []string{"v1"}}, nil)

		_, err := usecase.NewTagDeployment(repo, nil).Run(ctx, usecase.TagDeploymentParams{
			Name: "DesiegeArbiter", Tag: "core", Operation: usecase.TagRemove,
		})
		assert.ErrorContains(t, err, "does not exist")
		repo.AssertNotCalled(t, "SaveDeployment", mock.Anything, mock.Anything)
	})

	t.Run("remove", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetDeployment", ctx, "DesiegeArbiter").Return(&models.Deployment{Tags: []string{"v1", "core"}}, nil)
		repo.On("SaveDeployment", ctx, mock.Anything).Return(nil)

		result, err := usecase.NewTagDeployment(repo, nil).Run(ctx, usecase.TagDeploymentParams{
			Name: "DesiegeArbiter", Tag: "core", Operation: usecase.TagRemove,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"v1"}, result.CurrentTags)
	})
}
