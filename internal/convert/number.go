package convert

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ParseBigInt parses an arbitrary-precision integer written in decimal or
// 0x-prefixed hex, with an optional leading minus sign.
func ParseBigInt(text string) (*big.Int, error) {
	return parseInteger("number", text)
}

// DecimalOf renders a decimal or hex integer in base 10.
func DecimalOf(text string) (string, error) {
	n, err := parseInteger("toString(10)", text)
	if err != nil {
		return "", err
	}
	return n.String(), nil
}

// HexOf renders a decimal or hex integer as 0x-prefixed hex.
func HexOf(text string) (string, error) {
	n, err := parseInteger("toString(16)", text)
	if err != nil {
		return "", err
	}
	return hexutil.EncodeBig(n), nil
}

func parseInteger(op, text string) (*big.Int, error) {
	s := strings.TrimSpace(text)
	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}

	base := 10
	if has0xPrefix(s) {
		base = 16
		s = s[2:]
	}
	if s == "" {
		return nil, newError(op, "invalid number %q", text)
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i], base) {
			return nil, newError(op, "invalid number %q", text)
		}
	}

	n, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, newError(op, "invalid number %q", text)
	}
	if negative {
		n.Neg(n)
	}
	return n, nil
}

func isDigit(c byte, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case base == 16 && c >= 'a' && c <= 'f':
		return true
	case base == 16 && c >= 'A' && c <= 'F':
		return true
	default:
		return false
	}
}
