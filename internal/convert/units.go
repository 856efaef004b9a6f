package convert

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	etherDecimals = 18
	gweiDecimals  = 9

	// maxWeiDigits is the decimal width of the largest uint256.
	maxWeiDigits = 78
	// maxFractionDigits bounds the exponent of inputs like "1e-100".
	maxFractionDigits = 96
)

// WeiFromEther converts a decimal ether amount into an integer wei amount.
func WeiFromEther(text string) (string, error) {
	return parseUnits("ether", text, etherDecimals)
}

// WeiFromGwei converts a decimal gwei amount into an integer wei amount.
func WeiFromGwei(text string) (string, error) {
	return parseUnits("gwei", text, gweiDecimals)
}

// EtherFromWei formats an integer wei amount as ether. The result always
// carries at least one fraction digit, e.g. "1.0".
func EtherFromWei(text string) (string, error) {
	wei, err := parseInteger("wei", text)
	if err != nil {
		return "", err
	}
	return formatUnits(wei, etherDecimals), nil
}

func parseUnits(op, text string, decimals int32) (string, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return "", newError(op, "empty amount")
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return "", newError(op, "invalid decimal amount %q", text)
	}
	exp := int64(amount.Exponent())
	if exp < -maxFractionDigits {
		return "", newError(op, "amount %q has more than %d fraction digits", text, decimals)
	}
	if int64(amount.NumDigits())+exp+int64(decimals) > maxWeiDigits {
		return "", newError(op, "amount %q exceeds 256 bits of wei", text)
	}
	scaled := amount.Shift(decimals)
	if !scaled.IsInteger() {
		return "", newError(op, "amount %q has more than %d fraction digits", text, decimals)
	}
	return scaled.BigInt().String(), nil
}

func formatUnits(value *big.Int, decimals int) string {
	sign := value.Sign()
	abs := new(big.Int).Abs(value)
	denom := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	text := new(big.Rat).SetFrac(abs, denom).FloatString(decimals)
	text = strings.TrimRight(text, "0")
	if strings.HasSuffix(text, ".") {
		text += "0"
	}
	if sign < 0 {
		return "-" + text
	}
	return text
}
