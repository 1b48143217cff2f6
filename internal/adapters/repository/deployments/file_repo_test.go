package deployments_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bibliothecadao/desiege-cli/internal/adapters/repository/deployments"
	"github.com/bibliothecadao/desiege-cli/internal/domain"
	"github.com/bibliothecadao/desiege-cli/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const arbiterAddress = "0x0000000000000000000000000000000000000ABC"

func TestFileRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("save and resolve", func(t *testing.T) {
		dir := t.TempDir()
		repo, err := deployments.OpenFileRepository(dir, "default", 5)
		require.NoError(t, err)

		err = repo.SaveDeployment(ctx, &models.Deployment{
			ContractName: "DesiegeArbiter",
			Address:      arbiterAddress,
			Source:       models.SourceRegistered,
		})
		require.NoError(t, err)

		addr, err := repo.ResolveDeployedAddress(ctx, "DesiegeArbiter")
		require.NoError(t, err)
		assert.Equal(t, int64(0xabc), addr.Int64())

		dep, err := repo.GetDeployment(ctx, "DesiegeArbiter")
		require.NoError(t, err)
		assert.Equal(t, "default/5/DesiegeArbiter", dep.ID)
		assert.False(t, dep.CreatedAt.IsZero())
		assert.NotNil(t, dep.Tags)

		byAddr, err := repo.GetDeploymentByAddress(ctx, "0x0000000000000000000000000000000000000abc")
		require.NoError(t, err)
		assert.Equal(t, dep.ID, byAddr.ID)
	})

	t.Run("persists across instances", func(t *testing.T) {
		dir := t.TempDir()
		repo, err := deployments.OpenFileRepository(dir, "default", 5)
		require.NoError(t, err)
		require.NoError(t, repo.SaveDeployment(ctx, &models.Deployment{
			ContractName: "DesiegeArbiter",
			Address:      arbiterAddress,
		}))

		data, err := os.ReadFile(filepath.Join(dir, deployments.DeploymentsFile))
		require.NoError(t, err)
		var raw map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(data, &raw))
		assert.Contains(t, raw, "default/5/DesiegeArbiter")

		reopened, err := deployments.OpenFileRepository(dir, "default", 5)
		require.NoError(t, err)
		_, err = reopened.ResolveDeployedAddress(ctx, "DesiegeArbiter")
		require.NoError(t, err)
	})

	t.Run("lookups are scoped to namespace and chain", func(t *testing.T) {
		dir := t.TempDir()
		goerli, err := deployments.OpenFileRepository(dir, "default", 5)
		require.NoError(t, err)
		require.NoError(t, goerli.SaveDeployment(ctx, &models.Deployment{
			ContractName: "DesiegeArbiter",
			Address:      arbiterAddress,
		}))

		mainnet, err := deployments.OpenFileRepository(dir, "default", 1)
		require.NoError(t, err)
		_, err = mainnet.ResolveDeployedAddress(ctx, "DesiegeArbiter")
		assert.ErrorIs(t, err, domain.ErrNotFound)

		staging, err := deployments.OpenFileRepository(dir, "staging", 5)
		require.NoError(t, err)
		_, err = staging.ResolveDeployedAddress(ctx, "DesiegeArbiter")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("full registry IDs bypass the active scope", func(t *testing.T) {
		dir := t.TempDir()
		sepolia, err := deployments.OpenFileRepository(dir, "default", 11155111)
		require.NoError(t, err)
		require.NoError(t, sepolia.SaveDeployment(ctx, &models.Deployment{
			ContractName: "DesiegeArbiter",
			Address:      arbiterAddress,
		}))

		dep, err := sepolia.GetDeployment(ctx, "default/11155111/DesiegeArbiter")
		require.NoError(t, err)
		assert.Equal(t, "DesiegeArbiter", dep.ContractName)

		// Another chain, and no chain at all, still find it by ID
		local, err := deployments.OpenFileRepository(dir, "staging", 0)
		require.NoError(t, err)
		dep, err = local.GetDeployment(ctx, "default/11155111/DesiegeArbiter")
		require.NoError(t, err)
		assert.Equal(t, uint64(11155111), dep.ChainID)

		_, err = local.GetDeployment(ctx, "default/1/DesiegeArbiter")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("address lookups are scoped to namespace and chain", func(t *testing.T) {
		dir := t.TempDir()
		goerli, err := deployments.OpenFileRepository(dir, "default", 5)
		require.NoError(t, err)
		require.NoError(t, goerli.SaveDeployment(ctx, &models.Deployment{
			ContractName: "DesiegeArbiter",
			Address:      arbiterAddress,
		}))

		staging, err := deployments.OpenFileRepository(dir, "staging", 5)
		require.NoError(t, err)
		_, err = staging.GetDeploymentByAddress(ctx, arbiterAddress)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		require.NoError(t, goerli.RemoveDeployment(ctx, "DesiegeArbiter"))
		_, err = goerli.GetDeploymentByAddress(ctx, arbiterAddress)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		noChain, err := deployments.OpenFileRepository(dir, "default", 0)
		require.NoError(t, err)
		_, err = noChain.GetDeploymentByAddress(ctx, arbiterAddress)
		assert.ErrorIs(t, err, domain.ErrNetworkRequired)
	})

	t.Run("not found suggests close names", func(t *testing.T) {
		dir := t.TempDir()
		repo, err := deployments.OpenFileRepository(dir, "default", 5)
		require.NoError(t, err)
		require.NoError(t, repo.SaveDeployment(ctx, &models.Deployment{
			ContractName: "DesiegeArbiter",
			Address:      arbiterAddress,
		}))
		require.NoError(t, repo.SaveDeployment(ctx, &models.Deployment{
			ContractName: "Lords",
			Address:      "0x0000000000000000000000000000000000000001",
		}))

		_, err = repo.ResolveDeployedAddress(ctx, "DesiegeArbitr")
		var notFound *domain.DeploymentNotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, []string{"DesiegeArbiter"}, notFound.Suggestions)

		_, err = repo.ResolveDeployedAddress(ctx, "DesiegeArbiterV2")
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, []string{"DesiegeArbiter"}, notFound.Suggestions)
	})

	t.Run("resolution requires a chain", func(t *testing.T) {
		repo, err := deployments.OpenFileRepository(t.TempDir(), "default", 0)
		require.NoError(t, err)

		_, err = repo.ResolveDeployedAddress(ctx, "DesiegeArbiter")
		assert.ErrorIs(t, err, domain.ErrNetworkRequired)
	})

	t.Run("list applies filters", func(t *testing.T) {
		dir := t.TempDir()
		goerli, err := deployments.OpenFileRepository(dir, "default", 5)
		require.NoError(t, err)
		require.NoError(t, goerli.SaveDeployment(ctx, &models.Deployment{
			ContractName: "DesiegeArbiter",
			Address:      arbiterAddress,
			Tags:         []string{"core"},
		}))
		require.NoError(t, goerli.SaveDeployment(ctx, &models.Deployment{
			ContractName: "DesiegeModuleController",
			Address:      "0x0000000000000000000000000000000000000DEF",
		}))
		require.NoError(t, goerli.SaveDeployment(ctx, &models.Deployment{
			ContractName: "DesiegeArbiter",
			ChainID:      1,
			Address:      arbiterAddress,
		}))

		all, err := goerli.ListDeployments(ctx, domain.DeploymentFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 3)

		onGoerli, err := goerli.ListDeployments(ctx, domain.DeploymentFilter{ChainID: 5})
		require.NoError(t, err)
		assert.Len(t, onGoerli, 2)

		tagged, err := goerli.ListDeployments(ctx, domain.DeploymentFilter{Tag: "core"})
		require.NoError(t, err)
		require.Len(t, tagged, 1)
		assert.Equal(t, "default/5/DesiegeArbiter", tagged[0].ID)
	})

	t.Run("save keeps creation time and rejects bad data", func(t *testing.T) {
		repo, err := deployments.OpenFileRepository(t.TempDir(), "default", 5)
		require.NoError(t, err)

		first := &models.Deployment{ContractName: "DesiegeArbiter", Address: arbiterAddress}
		require.NoError(t, repo.SaveDeployment(ctx, first))

		second := &models.Deployment{ContractName: "DesiegeArbiter", Address: arbiterAddress}
		require.NoError(t, repo.SaveDeployment(ctx, second))
		assert.Equal(t, first.CreatedAt, second.CreatedAt)

		err = repo.SaveDeployment(ctx, &models.Deployment{ContractName: "X", Address: "0x12"})
		assert.ErrorIs(t, err, domain.ErrInvalidAddress)

		err = repo.SaveDeployment(ctx, &models.Deployment{Address: arbiterAddress})
		assert.ErrorIs(t, err, domain.ErrInvalidDeployment)
	})

	t.Run("remove", func(t *testing.T) {
		repo, err := deployments.OpenFileRepository(t.TempDir(), "default", 5)
		require.NoError(t, err)
		require.NoError(t, repo.SaveDeployment(ctx, &models.Deployment{ContractName: "DesiegeArbiter", Address: arbiterAddress}))

		require.NoError(t, repo.RemoveDeployment(ctx, "DesiegeArbiter"))
		_, err = repo.GetDeployment(ctx, "DesiegeArbiter")
		assert.ErrorIs(t, err, domain.ErrNotFound)

		assert.ErrorIs(t, repo.RemoveDeployment(ctx, "DesiegeArbiter"), domain.ErrNotFound)
	})

	t.Run("corrupt registry fails to open", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, deployments.DeploymentsFile), []byte("{"), 0644))

		_, err := deployments.OpenFileRepository(dir, "default", 5)
		assert.Error(t, err)
	})
}
