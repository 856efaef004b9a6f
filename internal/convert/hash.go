package convert

import (
	"crypto/sha256"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// Keccak256 hashes the bytes a 0x-prefixed input represents, or the UTF-8
// bytes of any other text.
func Keccak256(text string) (string, error) {
	data, err := inputBytes("keccak256", text)
	if err != nil {
		return "", err
	}
	return crypto.Keccak256Hash(data).Hex(), nil
}

// SHA256 always hashes the UTF-8 bytes of text.
func SHA256(text string) (string, error) {
	sum := sha256.Sum256([]byte(text))
	return hexutil.Encode(sum[:]), nil
}

// FunctionSelector returns the first four bytes of Keccak256(text).
func FunctionSelector(text string) (string, error) {
	data, err := inputBytes("sig", text)
	if err != nil {
		return "", err
	}
	return hexutil.Encode(crypto.Keccak256(data)[:4]), nil
}

// ByteLength reports how many bytes the input stands for.
func ByteLength(text string) int {
	if has0xPrefix(text) {
		if data, err := decodeHex("bytes", text); err == nil {
			return len(data)
		}
	}
	return len(text)
}

func inputBytes(op, text string) ([]byte, error) {
	if !has0xPrefix(text) {
		return []byte(text), nil
	}
	return decodeHex(op, text)
}
