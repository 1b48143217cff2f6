package blockchain

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/bibliothecadao/desiege-cli/internal/domain"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// CoerceArgs converts loosely typed constructor arguments into the Go values
// the ABI packer expects. Integers may be given as *big.Int or as decimal or
// 0x-prefixed strings; addresses additionally accept common.Address.
func CoerceArgs(inputs abi.Arguments, args []any) ([]any, error) {
	if len(inputs) != len(args) {
		return nil, fmt.Errorf("%w: constructor takes %d arguments, got %d", domain.ErrInvalidArgs, len(inputs), len(args))
	}

	out := make([]any, len(args))
	for i, input := range inputs {
		v, err := coerce(input.Type, args[i])
		if err != nil {
			name := input.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i)
			}
			return nil, fmt.Errorf("%w: argument %s (%s): %v", domain.ErrInvalidArgs, name, input.Type.String(), err)
		}
		out[i] = v
	}
	return out, nil
}

func coerce(t abi.Type, arg any) (any, error) {
	switch t.T {
	case abi.AddressTy:
		return coerceAddress(arg)
	case abi.IntTy, abi.UintTy:
		return coerceInteger(t, arg)
	case abi.BoolTy:
		switch v := arg.(type) {
		case bool:
			return v, nil
		case string:
			return strconv.ParseBool(v)
		}
	case abi.StringTy:
		if v, ok := arg.(string); ok {
			return v, nil
		}
		return fmt.Sprint(arg), nil
	case abi.BytesTy:
		switch v := arg.(type) {
		case []byte:
			return v, nil
		case string:
			return hexutil.Decode(v)
		}
	case abi.FixedBytesTy:
		return coerceFixedBytes(t, arg)
	}

	if arg != nil && reflect.TypeOf(arg) == t.GetType() {
		return arg, nil
	}
	return nil, fmt.Errorf("cannot use %T", arg)
}

func coerceAddress(arg any) (any, error) {
	switch v := arg.(type) {
	case common.Address:
		return v, nil
	case *big.Int:
		return domain.IntToAddress(v)
	case string:
		if common.IsHexAddress(v) {
			return common.HexToAddress(v), nil
		}
		n, err := domain.ParseInt(v)
		if err != nil {
			return nil, err
		}
		return domain.IntToAddress(n)
	}
	return nil, fmt.Errorf("cannot use %T as address", arg)
}

func coerceInteger(t abi.Type, arg any) (any, error) {
	var n *big.Int
	switch v := arg.(type) {
	case *big.Int:
		n = new(big.Int).Set(v)
	case string:
		parsed, err := domain.ParseInt(v)
		if err != nil {
			return nil, err
		}
		n = parsed
	case int:
		n = big.NewInt(int64(v))
	case int64:
		n = big.NewInt(v)
	case uint64:
		n = new(big.Int).SetUint64(v)
	default:
		return nil, fmt.Errorf("cannot use %T as integer", arg)
	}

	if t.T == abi.UintTy {
		if n.Sign() < 0 || n.BitLen() > t.Size {
			return nil, fmt.Errorf("%s out of range", n)
		}
	} else {
		limit := new(big.Int).Lsh(big.NewInt(1), uint(t.Size-1))
		if n.Cmp(limit) >= 0 || n.Cmp(new(big.Int).Neg(limit)) < 0 {
			return nil, fmt.Errorf("%s out of range", n)
		}
	}

	goType := t.GetType()
	if goType == reflect.TypeOf(n) {
		return n, nil
	}
	if t.T == abi.UintTy {
		return reflect.ValueOf(n.Uint64()).Convert(goType).Interface(), nil
	}
	return reflect.ValueOf(n.Int64()).Convert(goType).Interface(), nil
}

func coerceFixedBytes(t abi.Type, arg any) (any, error) {
	var raw []byte
	switch v := arg.(type) {
	case []byte:
		raw = v
	case string:
		if !strings.HasPrefix(v, "0x") {
			raw = []byte(v)
			break
		}
		decoded, err := hexutil.Decode(v)
		if err != nil {
			return nil, err
		}
		raw = decoded
	default:
		if arg != nil && reflect.TypeOf(arg) == t.GetType() {
			return arg, nil
		}
		return nil, fmt.Errorf("cannot use %T as bytes%d", arg, t.Size)
	}
	if len(raw) > t.Size {
		return nil, fmt.Errorf("%d bytes do not fit in bytes%d", len(raw), t.Size)
	}

	// Left aligned, zero padded
	out := reflect.New(t.GetType()).Elem()
	reflect.Copy(out, reflect.ValueOf(raw))
	return out.Interface(), nil
}
