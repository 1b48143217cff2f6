package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSenderConfigAddressHex(t *testing.T) {
	const anvilKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	const anvilAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"

	tests := []struct {
		name   string
		sender SenderConfig
		want   string
	}{
		{"derived from key", SenderConfig{Type: SenderTypePrivateKey, PrivateKey: anvilKey}, anvilAddress},
		{"configured address wins", SenderConfig{Type: SenderTypePrivateKey, PrivateKey: anvilKey, Address: "0x70997970c51812dc3a010c7d01b50e0d17dc79c8"}, "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"},
		{"unset key", SenderConfig{Type: SenderTypePrivateKey}, ""},
		{"bad key", SenderConfig{Type: SenderTypePrivateKey, PrivateKey: "0xnope"}, ""},
		{"other type", SenderConfig{Type: SenderType("ledger"), PrivateKey: anvilKey}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sender.AddressHex())
		})
	}
}
