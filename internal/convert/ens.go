package convert

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Namehash computes the ENS node of a dot separated name:
// node(name) = keccak256(node(parent) || keccak256(label)), node("") = 0.
// Labels are lower-cased; full UTS-46 normalization is not applied.
func Namehash(name string) (string, error) {
	var node common.Hash
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return node.Hex(), nil
	}

	labels := strings.Split(name, ".")
	for i := len(labels) - 1; i >= 0; i-- {
		if labels[i] == "" {
			return "", newError("namehash", "empty label in %q", name)
		}
		labelHash := crypto.Keccak256([]byte(labels[i]))
		node = crypto.Keccak256Hash(node[:], labelHash)
	}
	return node.Hex(), nil
}
