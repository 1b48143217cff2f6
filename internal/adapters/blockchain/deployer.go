package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/bibliothecadao/desiege-cli/internal/domain"
	"github.com/bibliothecadao/desiege-cli/internal/domain/config"
	"github.com/bibliothecadao/desiege-cli/internal/domain/models"
	"github.com/bibliothecadao/desiege-cli/internal/usecase"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// Deployer sends contract creation transactions and records the results in
// the deployment registry.
type Deployer struct {
	cfg       *config.RuntimeConfig
	artifacts usecase.ArtifactRepository
	repo      usecase.DeploymentRepository
	confirmer usecase.Confirmer
	dial      Dialer
	log       *slog.Logger

	backend Backend
}

// NewDeployer creates a deployer for the configured network
func NewDeployer(
	cfg *config.RuntimeConfig,
	artifacts usecase.ArtifactRepository,
	repo usecase.DeploymentRepository,
	confirmer usecase.Confirmer,
	log *slog.Logger,
) *Deployer {
	return &Deployer{
		cfg:       cfg,
		artifacts: artifacts,
		repo:      repo,
		confirmer: confirmer,
		dial:      DialRPC,
		log:       log.With("component", "Deployer"),
	}
}

// Deploy deploys artifactName with args and records it under displayName
func (d *Deployer) Deploy(ctx context.Context, displayName, artifactName string, args []any) (*models.DeploymentResult, error) {
	network := d.cfg.Network
	if network == nil {
		return nil, domain.ErrNetworkRequired
	}

	artifact, err := d.artifacts.GetArtifact(ctx, artifactName)
	if err != nil {
		return nil, err
	}
	contractABI, err := artifact.ParseABI()
	if err != nil {
		return nil, err
	}
	bytecode, err := artifact.CreationCode()
	if err != nil {
		return nil, err
	}

	params, err := CoerceArgs(contractABI.Constructor.Inputs, args)
	if err != nil {
		return nil, err
	}
	packed, err := contractABI.Pack("", params...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidArgs, err)
	}

	if !d.cfg.NonInteractive && !d.cfg.DryRun {
		ok, err := d.confirmer.Confirm(ctx, fmt.Sprintf("Deploy %s to %s (chain %d)?", displayName, network.Name, network.ChainID))
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrAborted
		}
	}

	backend, err := d.connect(ctx)
	if err != nil {
		return nil, err
	}

	auth, err := NewTransactor(d.cfg.DesiegeConfig, d.cfg.Sender, new(big.Int).SetUint64(network.ChainID))
	if err != nil {
		return nil, err
	}
	auth.Context = ctx

	deployment := &models.Deployment{
		Namespace:       d.cfg.Namespace,
		ChainID:         network.ChainID,
		ContractName:    displayName,
		Source:          models.SourceDeployed,
		Deployer:        auth.From.Hex(),
		ConstructorArgs: hexutil.Encode(packed),
		Artifact:        artifact.Info(),
	}

	if d.cfg.DryRun {
		nonce, err := backend.PendingNonceAt(ctx, auth.From)
		if err != nil {
			return nil, fmt.Errorf("failed to get nonce: %w", err)
		}
		deployment.Address = crypto.CreateAddress(auth.From, nonce).Hex()
		d.log.Debug("dry run", "contract", displayName, "address", deployment.Address, "nonce", nonce)
		return &models.DeploymentResult{Deployment: deployment, DryRun: true}, nil
	}

	address, tx, _, err := bind.DeployContract(auth, contractABI, bytecode, backend, params...)
	if err != nil {
		return nil, fmt.Errorf("failed to send deployment transaction: %w", err)
	}
	d.log.Info("deployment transaction sent", "contract", displayName, "address", address.Hex(), "tx", tx.Hash().Hex())

	receipt, err := bind.WaitMined(ctx, backend, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to wait for transaction %s: %w", tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("deployment transaction %s reverted", tx.Hash().Hex())
	}

	code, err := backend.CodeAt(ctx, address, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check code: %w", err)
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("no contract code at %s after deployment", address.Hex())
	}

	deployment.Address = address.Hex()
	deployment.TransactionHash = tx.Hash().Hex()
	deployment.BlockNumber = receipt.BlockNumber.Uint64()

	if err := d.repo.SaveDeployment(ctx, deployment); err != nil {
		return nil, fmt.Errorf("deployed at %s but failed to record it: %w", deployment.Address, err)
	}

	return &models.DeploymentResult{Deployment: deployment, GasUsed: receipt.GasUsed}, nil
}

// connect dials the network once and checks the chain ID
func (d *Deployer) connect(ctx context.Context) (Backend, error) {
	if d.backend != nil {
		return d.backend, nil
	}

	backend, err := d.dial(ctx, d.cfg.Network.RPCURL)
	if err != nil {
		return nil, err
	}

	chainID, err := backend.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}
	if chainID.Uint64() != d.cfg.Network.ChainID {
		return nil, fmt.Errorf("chain ID mismatch: expected %d, got %d", d.cfg.Network.ChainID, chainID.Uint64())
	}

	d.backend = backend
	return backend, nil
}

// Close releases the RPC connection, if one was opened
func (d *Deployer) Close() {
	if c, ok := d.backend.(interface{ Close() }); ok {
		c.Close()
	}
}

var _ usecase.ContractDeployer = (*Deployer)(nil)
