package blockchain

import (
	"math/big"
	"testing"

	"github.com/bibliothecadao/desiege-cli/internal/domain"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func arguments(t *testing.T, types ...string) abi.Arguments {
	t.Helper()
	args := make(abi.Arguments, 0, len(types))
	for _, typ := range types {
		at, err := abi.NewType(typ, "", nil)
		require.NoError(t, err)
		args = append(args, abi.Argument{Name: typ + "Arg", Type: at})
	}
	return args
}

func TestCoerceArgs(t *testing.T) {
	t.Run("integer to address", func(t *testing.T) {
		out, err := CoerceArgs(arguments(t, "address"), []any{big.NewInt(0xABC)})
		require.NoError(t, err)
		assert.Equal(t, common.HexToAddress("0xabc"), out[0])
	})

	t.Run("address from strings", func(t *testing.T) {
		out, err := CoerceArgs(arguments(t, "address", "address"), []any{
			"0x0000000000000000000000000000000000000abc",
			"2748",
		})
		require.NoError(t, err)
		assert.Equal(t, out[0], out[1])
	})

	t.Run("sized integers", func(t *testing.T) {
		out, err := CoerceArgs(arguments(t, "uint8", "int64", "uint256", "int24"), []any{
			"255", big.NewInt(-5), "0x10", "-8388608",
		})
		require.NoError(t, err)
		assert.Equal(t, uint8(255), out[0])
		assert.Equal(t, int64(-5), out[1])
		assert.Equal(t, big.NewInt(16), out[2])
		assert.Equal(t, big.NewInt(-8388608), out[3])
	})

	t.Run("out of range integers", func(t *testing.T) {
		cases := []struct {
			typ string
			arg any
		}{
			{"uint8", "256"},
			{"uint256", big.NewInt(-1)},
			{"int8", "128"},
			{"int8", "-129"},
			{"address", new(big.Int).Lsh(big.NewInt(1), 160)},
		}
		for _, tc := range cases {
			_, err := CoerceArgs(arguments(t, tc.typ), []any{tc.arg})
			assert.ErrorIs(t, err, domain.ErrInvalidArgs, "%s %v", tc.typ, tc.arg)
		}
	})

	t.Run("bool string and bytes", func(t *testing.T) {
		out, err := CoerceArgs(arguments(t, "bool", "string", "bytes", "bytes32"), []any{
			"true", "Desiege", "0x0102", "0xff",
		})
		require.NoError(t, err)
		assert.Equal(t, true, out[0])
		assert.Equal(t, "Desiege", out[1])
		assert.Equal(t, []byte{1, 2}, out[2])

		word, ok := out[3].([32]byte)
		require.True(t, ok)
		assert.Equal(t, byte(0xff), word[0])
		assert.Equal(t, byte(0), word[31])
	})

	t.Run("arity mismatch", func(t *testing.T) {
		_, err := CoerceArgs(arguments(t, "address"), nil)
		assert.ErrorIs(t, err, domain.ErrInvalidArgs)

		_, err = CoerceArgs(nil, []any{big.NewInt(1)})
		assert.ErrorIs(t, err, domain.ErrInvalidArgs)
	})

	t.Run("unsupported value", func(t *testing.T) {
		_, err := CoerceArgs(arguments(t, "address"), []any{3.5})
		assert.ErrorIs(t, err, domain.ErrInvalidArgs)
		assert.Contains(t, err.Error(), "addressArg")
	})
}
