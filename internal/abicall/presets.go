package abicall

import (
	"sort"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const erc20ABIJSON = `[
  {"inputs": [{"name": "to", "type": "address"}, {"name": "amount", "type": "uint256"}], "name": "transfer", "outputs": [{"type": "bool"}], "stateMutability": "nonpayable", "type": "function"},
  {"inputs": [{"name": "spender", "type": "address"}, {"name": "amount", "type": "uint256"}], "name": "approve", "outputs": [{"type": "bool"}], "stateMutability": "nonpayable", "type": "function"},
  {"inputs": [{"name": "from", "type": "address"}, {"name": "to", "type": "address"}, {"name": "amount", "type": "uint256"}], "name": "transferFrom", "outputs": [{"type": "bool"}], "stateMutability": "nonpayable", "type": "function"},
  {"inputs": [{"name": "account", "type": "address"}], "name": "balanceOf", "outputs": [{"type": "uint256"}], "stateMutability": "view", "type": "function"},
  {"inputs": [{"name": "owner", "type": "address"}, {"name": "spender", "type": "address"}], "name": "allowance", "outputs": [{"type": "uint256"}], "stateMutability": "view", "type": "function"},
  {"inputs": [], "name": "decimals", "outputs": [{"type": "uint8"}], "stateMutability": "view", "type": "function"},
  {"inputs": [], "name": "totalSupply", "outputs": [{"type": "uint256"}], "stateMutability": "view", "type": "function"}
]`

const erc721ABIJSON = `[
  {"inputs": [{"name": "from", "type": "address"}, {"name": "to", "type": "address"}, {"name": "tokenId", "type": "uint256"}], "name": "safeTransferFrom", "outputs": [], "stateMutability": "nonpayable", "type": "function"},
  {"inputs": [{"name": "operator", "type": "address"}, {"name": "approved", "type": "bool"}], "name": "setApprovalForAll", "outputs": [], "stateMutability": "nonpayable", "type": "function"},
  {"inputs": [{"name": "tokenId", "type": "uint256"}], "name": "ownerOf", "outputs": [{"type": "address"}], "stateMutability": "view", "type": "function"}
]`

const wethABIJSON = `[
  {"inputs": [], "name": "deposit", "outputs": [], "stateMutability": "payable", "type": "function"},
  {"inputs": [{"name": "wad", "type": "uint256"}], "name": "withdraw", "outputs": [], "stateMutability": "nonpayable", "type": "function"}
]`

var (
	presets     map[string]string
	presetsOnce sync.Once
	presetsErr  error
)

func loadPresets() (map[string]string, error) {
	presetsOnce.Do(func() {
		presets = make(map[string]string)
		for prefix, src := range map[string]string{
			"erc20":  erc20ABIJSON,
			"erc721": erc721ABIJSON,
			"weth":   wethABIJSON,
		} {
			parsed, err := abi.JSON(strings.NewReader(src))
			if err != nil {
				presetsErr = err
				return
			}
			for name, method := range parsed.Methods {
				presets[prefix+"."+strings.ToLower(name)] = signatureText(method)
			}
		}
	})
	return presets, presetsErr
}

// signatureText renders method as an editable signature with parameter names.
func signatureText(method abi.Method) string {
	params := make([]string, len(method.Inputs))
	for i, arg := range method.Inputs {
		params[i] = arg.Type.String()
		if arg.Name != "" {
			params[i] += " " + arg.Name
		}
	}
	return method.RawName + "(" + strings.Join(params, ", ") + ")"
}

// Preset returns the signature registered under name, such as
// "erc20.transfer". Lookup is case-insensitive.
func Preset(name string) (string, bool) {
	table, err := loadPresets()
	if err != nil {
		return "", false
	}
	text, ok := table[strings.ToLower(strings.TrimSpace(name))]
	return text, ok
}

// PresetNames lists the registered preset names in sorted order.
func PresetNames() []string {
	table, err := loadPresets()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
