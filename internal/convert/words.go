package convert

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const wordHexLen = 64

// Word is one 32-byte slot of an ABI payload.
type Word struct {
	Index  int    `json:"index"`
	Offset int    `json:"offset"`
	Hex    string `json:"hex"`
}

// BreakIntoWords splits hex data into 32-byte words. The final word may be
// shorter when the payload is not word aligned, e.g. calldata with a selector.
func BreakIntoWords(text string) ([]Word, error) {
	digits, err := hexDigits("words", text)
	if err != nil {
		return nil, err
	}
	if digits == "" {
		return nil, newError("words", "no data")
	}
	if len(digits)%2 != 0 {
		return nil, newError("words", "odd number of hex digits")
	}

	words := make([]Word, 0, (len(digits)+wordHexLen-1)/wordHexLen)
	for start := 0; start < len(digits); start += wordHexLen {
		end := start + wordHexLen
		if end > len(digits) {
			end = len(digits)
		}
		index := len(words)
		words = append(words, Word{
			Index:  index,
			Offset: index * 32,
			Hex:    "0x" + digits[start:end],
		})
	}
	return words, nil
}

// ZeroPad32 left-pads a hex value to exactly 32 bytes.
func ZeroPad32(text string) (string, error) {
	digits, err := hexDigits("pad32", text)
	if err != nil {
		return "", err
	}
	if len(digits) > wordHexLen {
		return "", newError("pad32", "value is %d hex digits, exceeds 32 bytes", len(digits))
	}
	if len(digits)%2 != 0 {
		digits = "0" + digits
	}
	data, err := decodeHex("pad32", digits)
	if err != nil {
		return "", err
	}
	return hexutil.Encode(common.LeftPadBytes(data, 32)), nil
}
