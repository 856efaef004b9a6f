package abicall

import (
	"bytes"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Value is one decoded argument rendered for display.
type Value struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Text string `json:"text"`
}

// DecodeCall checks the selector of calldata against desc and unpacks its
// arguments.
func DecodeCall(desc *Descriptor, calldata string) ([]Value, error) {
	if desc == nil {
		return nil, fmt.Errorf("no function signature")
	}
	data, err := decodeBytes(strings.TrimSpace(calldata))
	if err != nil {
		return nil, err
	}
	if len(data) < 4 {
		return nil, fmt.Errorf("calldata is %d bytes, shorter than a selector", len(data))
	}
	if !bytes.Equal(data[:4], desc.method.ID) {
		return nil, fmt.Errorf("selector mismatch: got %s, want %s", hexutil.Encode(data[:4]), desc.Selector())
	}

	values, err := desc.method.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", desc.Signature(), err)
	}
	if len(values) != len(desc.Params) {
		return nil, fmt.Errorf("unexpected %s values: %d", desc.Name, len(values))
	}

	out := make([]Value, 0, len(values))
	for i, param := range desc.Params {
		out = append(out, Value{Name: param.Name, Type: param.Type, Text: formatValue(param.abiType, values[i])})
	}
	return out, nil
}

func formatValue(typ abi.Type, value interface{}) string {
	rv := reflect.ValueOf(value)
	switch typ.T {
	case abi.AddressTy:
		if addr, ok := value.(common.Address); ok {
			return addr.Hex()
		}
	case abi.BytesTy, abi.FixedBytesTy:
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			data := make([]byte, rv.Len())
			for i := range data {
				data[i] = byte(rv.Index(i).Uint())
			}
			return hexutil.Encode(data)
		}
	case abi.StringTy:
		if str, ok := value.(string); ok {
			return strconv.Quote(str)
		}
	case abi.SliceTy, abi.ArrayTy:
		parts := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			parts = append(parts, formatValue(*typ.Elem, rv.Index(i).Interface()))
		}
		return "[" + strings.Join(parts, ",") + "]"
	}
	return fmt.Sprint(value)
}
