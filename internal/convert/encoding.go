package convert

import (
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// UTF8ToHex encodes the UTF-8 bytes of text as 0x-prefixed hex.
func UTF8ToHex(text string) (string, error) {
	return hexutil.Encode([]byte(text)), nil
}

// HexToUTF8 decodes hex bytes and interprets them as UTF-8 text.
func HexToUTF8(text string) (string, error) {
	data, err := decodeHex("utf8", text)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", newError("utf8", "invalid utf-8 byte sequence")
	}
	return string(data), nil
}
