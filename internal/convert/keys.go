package convert

import (
	"crypto/ecdsa"
	"crypto/rand"
	"io"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip39"
)

const (
	maxEntropyBytes = 1024
	maxKeyAttempts  = 8
)

// randReader is the secure random source; tests may swap it.
var randReader io.Reader = rand.Reader

// KeyPair is a freshly generated secp256k1 key and its chain address.
type KeyPair struct {
	PrivateKey string `json:"private_key"`
	Address    string `json:"address"`
}

// RandomEntropy returns length bytes from the secure random source.
func RandomEntropy(length int) (string, error) {
	if length <= 0 || length > maxEntropyBytes {
		return "", newError("entropy", "length must be between 1 and %d bytes, got %d", maxEntropyBytes, length)
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(randReader, buf); err != nil {
		return "", newError("entropy", "read random source: %v", err)
	}
	return hexutil.Encode(buf), nil
}

// GenerateKeyPair draws 32 bytes of secure entropy as a private key and
// derives its address. Draws outside the curve order are retried.
func GenerateKeyPair() (KeyPair, error) {
	seed := make([]byte, 32)
	for attempt := 0; attempt < maxKeyAttempts; attempt++ {
		if _, err := io.ReadFull(randReader, seed); err != nil {
			return KeyPair{}, newError("keygen", "read random source: %v", err)
		}
		key, err := crypto.ToECDSA(seed)
		if err != nil {
			continue
		}
		return KeyPair{
			PrivateKey: hexutil.Encode(crypto.FromECDSA(key)),
			Address:    crypto.PubkeyToAddress(key.PublicKey).Hex(),
		}, nil
	}
	return KeyPair{}, newError("keygen", "no valid key after %d attempts", maxKeyAttempts)
}

// AddressOf derives the checksummed address of a hex private key.
func AddressOf(privateKeyHex string) (string, error) {
	key, err := parsePrivateKey("address", privateKeyHex)
	if err != nil {
		return "", err
	}
	return crypto.PubkeyToAddress(key.PublicKey).Hex(), nil
}

// MnemonicFromEntropy renders 16 to 32 bytes of entropy as a BIP-39 phrase.
func MnemonicFromEntropy(text string) (string, error) {
	entropy, err := decodeHex("mnemonic", text)
	if err != nil {
		return "", err
	}
	if len(entropy) < 16 || len(entropy) > 32 || len(entropy)%4 != 0 {
		return "", newError("mnemonic", "entropy must be 16, 20, 24, 28 or 32 bytes, got %d", len(entropy))
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", newError("mnemonic", "%v", err)
	}
	return mnemonic, nil
}

func parsePrivateKey(op, text string) (*ecdsa.PrivateKey, error) {
	raw, err := decodeHexExact(op, "private key", text, 32)
	if err != nil {
		return nil, err
	}
	key, keyErr := crypto.ToECDSA(raw)
	if keyErr != nil {
		return nil, newError(op, "invalid private key: %v", keyErr)
	}
	return key, nil
}
