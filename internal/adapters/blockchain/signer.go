package blockchain

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/bibliothecadao/desiege-cli/internal/domain"
	"github.com/bibliothecadao/desiege-cli/internal/domain/config"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// NewTransactor builds signing options for the named sender
func NewTransactor(cfg *config.DesiegeConfig, name string, chainID *big.Int) (*bind.TransactOpts, error) {
	if name == "" {
		name = config.DefaultSender
	}
	if cfg == nil || len(cfg.Senders) == 0 {
		return nil, fmt.Errorf("%w: add [senders.%s] to desiege.toml", domain.ErrNoSender, name)
	}
	sender, ok := cfg.Senders[name]
	if !ok {
		return nil, fmt.Errorf("%w: sender %q is not defined in desiege.toml", domain.ErrNoSender, name)
	}

	switch sender.Type {
	case config.SenderTypePrivateKey:
		if sender.PrivateKey == "" {
			return nil, fmt.Errorf("%w: sender %q has an empty private_key (is the env var set?)", domain.ErrNoSender, name)
		}
		key, err := crypto.HexToECDSA(strings.TrimPrefix(sender.PrivateKey, "0x"))
		if err != nil {
			return nil, fmt.Errorf("invalid private key for sender %q: %w", name, err)
		}
		auth, err := bind.NewKeyedTransactorWithChainID(key, chainID)
		if err != nil {
			return nil, fmt.Errorf("failed to create transactor: %w", err)
		}
		if sender.Address != "" && !strings.EqualFold(common.HexToAddress(sender.Address).Hex(), auth.From.Hex()) {
			return nil, fmt.Errorf("sender %q: private key belongs to %s, not %s", name, auth.From.Hex(), sender.Address)
		}
		return auth, nil
	default:
		return nil, fmt.Errorf("sender %q: type %q is not supported for direct deployments", name, sender.Type)
	}
}
