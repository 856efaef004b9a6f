package abicall

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"ethToolBox/internal/convert"
)

var bigIntType = reflect.TypeOf(&big.Int{})

// EncodeCall ABI-encodes calldata for desc. Array parameters take a JSON
// array literal; scalar parameters take the raw token.
func EncodeCall(desc *Descriptor, args []string) (string, error) {
	if desc == nil {
		return "", fmt.Errorf("no function signature")
	}
	if len(args) != len(desc.Params) {
		return "", fmt.Errorf("%s expects %d arguments, got %d", desc.Signature(), len(desc.Params), len(args))
	}

	values := make([]interface{}, 0, len(args))
	for i, param := range desc.Params {
		value, err := param.coerce(args[i])
		if err != nil {
			return "", fmt.Errorf("argument %d (%s): %w", i, param.label(), err)
		}
		values = append(values, value)
	}

	packed, err := desc.method.Inputs.Pack(values...)
	if err != nil {
		return "", fmt.Errorf("pack %s: %w", desc.Signature(), err)
	}

	calldata := make([]byte, 0, len(desc.method.ID)+len(packed))
	calldata = append(calldata, desc.method.ID...)
	calldata = append(calldata, packed...)
	return hexutil.Encode(calldata), nil
}

func (p Param) label() string {
	if p.Name == "" {
		return p.Type
	}
	return p.Type + " " + p.Name
}

func (p Param) coerce(text string) (interface{}, error) {
	if p.Kind == Array {
		items, err := decodeJSONArray(text)
		if err != nil {
			return nil, err
		}
		return coerceValue(p.abiType, items)
	}
	if p.abiType.T == abi.StringTy {
		return coerceValue(p.abiType, text)
	}
	return coerceValue(p.abiType, strings.TrimSpace(text))
}

func decodeJSONArray(text string) ([]interface{}, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var items []interface{}
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("expected a JSON array: %w", err)
	}
	if items == nil {
		return nil, fmt.Errorf("expected a JSON array, got null")
	}
	return items, nil
}

func coerceValue(typ abi.Type, raw interface{}) (interface{}, error) {
	switch typ.T {
	case abi.SliceTy, abi.ArrayTy:
		return coerceArray(typ, raw)
	}

	token, err := scalarToken(raw)
	if err != nil {
		return nil, err
	}

	switch typ.T {
	case abi.IntTy, abi.UintTy:
		return coerceInteger(typ, token)
	case abi.BoolTy:
		b, err := strconv.ParseBool(token)
		if err != nil {
			return nil, fmt.Errorf("invalid bool %q", token)
		}
		return b, nil
	case abi.StringTy:
		return token, nil
	case abi.AddressTy:
		if !common.IsHexAddress(token) {
			return nil, fmt.Errorf("invalid address %q", token)
		}
		return common.HexToAddress(token), nil
	case abi.BytesTy:
		return decodeBytes(token)
	case abi.FixedBytesTy:
		data, err := decodeBytes(token)
		if err != nil {
			return nil, err
		}
		if len(data) != typ.Size {
			return nil, fmt.Errorf("%s needs %d bytes, got %d", typ, typ.Size, len(data))
		}
		out := reflect.New(typ.GetType()).Elem()
		reflect.Copy(out, reflect.ValueOf(data))
		return out.Interface(), nil
	default:
		return nil, fmt.Errorf("unsupported type %s", typ)
	}
}

func coerceArray(typ abi.Type, raw interface{}) (interface{}, error) {
	items, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("expected array for %s", typ)
	}
	if typ.T == abi.ArrayTy && len(items) != typ.Size {
		return nil, fmt.Errorf("%s needs %d elements, got %d", typ, typ.Size, len(items))
	}

	var out reflect.Value
	if typ.T == abi.SliceTy {
		out = reflect.MakeSlice(typ.GetType(), len(items), len(items))
	} else {
		out = reflect.New(typ.GetType()).Elem()
	}
	for i, item := range items {
		value, err := coerceValue(*typ.Elem, item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out.Index(i).Set(reflect.ValueOf(value))
	}
	return out.Interface(), nil
}

func scalarToken(raw interface{}) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	case nil:
		return "", fmt.Errorf("unexpected null")
	default:
		return "", fmt.Errorf("unexpected %T where a scalar was expected", raw)
	}
}

func coerceInteger(typ abi.Type, token string) (interface{}, error) {
	n, err := convert.ParseBigInt(token)
	if err != nil {
		return nil, fmt.Errorf("invalid integer %q", token)
	}

	if typ.T == abi.UintTy {
		if n.Sign() < 0 {
			return nil, fmt.Errorf("negative value %s for %s", n, typ)
		}
		if n.BitLen() > typ.Size {
			return nil, fmt.Errorf("value %s overflows %s", n, typ)
		}
	} else {
		limit := new(big.Int).Lsh(big.NewInt(1), uint(typ.Size-1))
		if n.Cmp(limit) >= 0 || n.Cmp(new(big.Int).Neg(limit)) < 0 {
			return nil, fmt.Errorf("value %s overflows %s", n, typ)
		}
	}

	rt := typ.GetType()
	if rt == bigIntType {
		return n, nil
	}
	out := reflect.New(rt).Elem()
	if typ.T == abi.UintTy {
		out.SetUint(n.Uint64())
	} else {
		out.SetInt(n.Int64())
	}
	return out.Interface(), nil
}

func decodeBytes(token string) ([]byte, error) {
	if !strings.HasPrefix(token, "0x") && !strings.HasPrefix(token, "0X") {
		token = "0x" + token
	}
	data, err := hexutil.Decode(token)
	if err != nil {
		return nil, fmt.Errorf("invalid bytes %q: %w", token, err)
	}
	return data, nil
}
