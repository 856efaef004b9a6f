package convert

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// Signature is a recoverable secp256k1 signature. V is 27 or 28.
type Signature struct {
	R [32]byte
	S [32]byte
	V byte
}

// Packed returns r || s || v as 65 bytes of hex.
func (s Signature) Packed() string {
	out := make([]byte, 0, 65)
	out = append(out, s.R[:]...)
	out = append(out, s.S[:]...)
	out = append(out, s.V)
	return hexutil.Encode(out)
}

// Solidity returns v left-padded to 32 bytes followed by r and s, the
// layout expected by ecrecover(bytes32,uint8,bytes32,bytes32) callers.
func (s Signature) Solidity() string {
	out := make([]byte, 0, 96)
	out = append(out, common.LeftPadBytes([]byte{s.V}, 32)...)
	out = append(out, s.R[:]...)
	out = append(out, s.S[:]...)
	return hexutil.Encode(out)
}

func (s Signature) RHex() string { return hexutil.Encode(s.R[:]) }

func (s Signature) SHex() string { return hexutil.Encode(s.S[:]) }

func (s Signature) String() string {
	return fmt.Sprintf("packed %s r %s s %s v %d solidity %s", s.Packed(), s.RHex(), s.SHex(), s.V, s.Solidity())
}

// SignDigest signs a 32-byte digest. Signing is deterministic (RFC 6979), so
// the same key and digest always produce the same signature.
func SignDigest(privateKeyHex, digestHex string) (Signature, error) {
	key, err := parsePrivateKey("sign", privateKeyHex)
	if err != nil {
		return Signature{}, err
	}
	digest, err := decodeHexExact("sign", "digest", digestHex, 32)
	if err != nil {
		return Signature{}, err
	}

	raw, signErr := crypto.Sign(digest, key)
	if signErr != nil {
		return Signature{}, newError("sign", "%v", signErr)
	}

	var sig Signature
	copy(sig.R[:], raw[:32])
	copy(sig.S[:], raw[32:64])
	sig.V = raw[64] + 27
	return sig, nil
}

// ParseSignature decodes a packed 65-byte signature. A recovery id of 0 or 1
// is normalized to 27 or 28.
func ParseSignature(text string) (Signature, error) {
	raw, err := decodeHexExact("signature", "signature", text, 65)
	if err != nil {
		return Signature{}, err
	}
	var sig Signature
	copy(sig.R[:], raw[:32])
	copy(sig.S[:], raw[32:64])
	sig.V = raw[64]
	if sig.V < 27 {
		sig.V += 27
	}
	if sig.V != 27 && sig.V != 28 {
		return Signature{}, newError("signature", "invalid recovery id %d", raw[64])
	}
	return sig, nil
}

// RecoverAddress returns the address that produced signature over digest.
func RecoverAddress(digestHex, signatureHex string) (string, error) {
	digest, err := decodeHexExact("recover", "digest", digestHex, 32)
	if err != nil {
		return "", err
	}
	sig, err := ParseSignature(signatureHex)
	if err != nil {
		return "", err
	}

	raw := make([]byte, 65)
	copy(raw[:32], sig.R[:])
	copy(raw[32:64], sig.S[:])
	raw[64] = sig.V - 27

	pub, recoverErr := crypto.SigToPub(digest, raw)
	if recoverErr != nil {
		return "", newError("recover", "%v", recoverErr)
	}
	return crypto.PubkeyToAddress(*pub).Hex(), nil
}
