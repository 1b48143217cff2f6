package config

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// DefaultSender is used when no --sender flag is given
const DefaultSender = "deployer"

// DesiegeConfig represents desiege.toml
type DesiegeConfig struct {
	Senders map[string]SenderConfig `toml:"senders"`
}

type SenderType string

// SenderTypePrivateKey is the only sender type deployments can sign with
const SenderTypePrivateKey SenderType = "private_key"

// SenderConfig represents a sender configuration
type SenderConfig struct {
	Type       SenderType `toml:"type"`
	Address    string     `toml:"address,omitempty"`
	PrivateKey string     `toml:"private_key,omitempty"` //nolint:gosec // holds env var reference, not a literal secret
}

// AddressHex returns the checksummed sender address. Without a configured
// address it is derived from the private key; it is empty when neither works.
func (s SenderConfig) AddressHex() string {
	if s.Address != "" {
		return common.HexToAddress(s.Address).Hex()
	}
	if s.Type != SenderTypePrivateKey || s.PrivateKey == "" {
		return ""
	}
	key, err := crypto.HexToECDSA(strings.TrimPrefix(s.PrivateKey, "0x"))
	if err != nil {
		return ""
	}
	return crypto.PubkeyToAddress(key.PublicKey).Hex()
}
