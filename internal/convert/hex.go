package convert

import (
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

func has0xPrefix(text string) bool {
	return len(text) >= 2 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X')
}

// trimHexPrefix drops a leading 0x if present.
func trimHexPrefix(text string) string {
	if has0xPrefix(text) {
		return text[2:]
	}
	return text
}

// hexDigits returns the lower-case hex digits of text, prefix removed.
func hexDigits(op, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", newError(op, "empty hex value")
	}
	digits := strings.ToLower(trimHexPrefix(text))
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return "", newError(op, "invalid hex character %q at position %d", c, i)
		}
	}
	return digits, nil
}

// decodeHex decodes hex text with or without the 0x prefix.
func decodeHex(op, text string) ([]byte, error) {
	digits, err := hexDigits(op, text)
	if err != nil {
		return nil, err
	}
	data, decodeErr := hexutil.Decode("0x" + digits)
	if decodeErr != nil {
		return nil, newError(op, "invalid hex data: %v", decodeErr)
	}
	return data, nil
}

func decodeHexExact(op, what, text string, size int) ([]byte, error) {
	data, err := decodeHex(op, text)
	if err != nil {
		return nil, err
	}
	if len(data) != size {
		return nil, newError(op, "%s must be %d bytes, got %d", what, size, len(data))
	}
	return data, nil
}
