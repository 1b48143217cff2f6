package domain

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// maxAddress is the largest value that fits in a 20 byte address.
var maxAddress = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 160), big.NewInt(1))

// AddressToInt returns the integer value of a hex encoded address.
func AddressToInt(address string) (*big.Int, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	return common.HexToAddress(address).Big(), nil
}

// IntToAddress converts an integer back into an address. Negative values and
// values wider than 160 bits are rejected rather than truncated.
func IntToAddress(v *big.Int) (common.Address, error) {
	if v == nil || v.Sign() < 0 || v.Cmp(maxAddress) > 0 {
		return common.Address{}, fmt.Errorf("%w: %v out of range", ErrInvalidAddress, v)
	}
	return common.BigToAddress(v), nil
}

// ParseInt parses a decimal or 0x-prefixed hex string.
func ParseInt(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	return v, nil
}

// FormatAddressInt renders an integer address in 0x-prefixed hex.
func FormatAddressInt(v *big.Int) string {
	if v == nil {
		return "0x0"
	}
	return "0x" + v.Text(16)
}
