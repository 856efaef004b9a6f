package model

import (
	"fmt"
	"strings"
)

// Kind names one toolbox operation.
type Kind string

const (
	KindKeccak256 Kind = "keccak256"
	KindSHA256    Kind = "sha256"
	KindSelector  Kind = "sig"
	KindHex       Kind = "hex"
	KindUTF8      Kind = "utf8"
	KindBytes     Kind = "bytes"
	KindPad32     Kind = "pad32"
	KindWords     Kind = "words"

	KindToInt   Kind = "toint"
	KindToHex   Kind = "tohex"
	KindToWei   Kind = "towei"
	KindToGwei  Kind = "togwei"
	KindToEther Kind = "toether"

	KindEntropy  Kind = "entropy"
	KindMnemonic Kind = "mnemonic"
	KindKeygen   Kind = "keygen"
	KindAddress  Kind = "address"
	KindSign     Kind = "sign"
	KindRecover  Kind = "recover"

	KindNamehash Kind = "namehash"

	KindEncode Kind = "encode"
	KindDecode Kind = "decode"

	KindDate      Kind = "date"
	KindTimestamp Kind = "timestamp"
	KindNow       Kind = "now"

	KindChainID Kind = "chainid"
	KindBlock   Kind = "block"
	KindBalance Kind = "balance"
)

var kinds = []Kind{
	KindKeccak256, KindSHA256, KindSelector, KindHex, KindUTF8, KindBytes, KindPad32, KindWords,
	KindToInt, KindToHex, KindToWei, KindToGwei, KindToEther,
	KindEntropy, KindMnemonic, KindKeygen, KindAddress, KindSign, KindRecover,
	KindNamehash,
	KindEncode, KindDecode,
	KindDate, KindTimestamp, KindNow,
	KindChainID, KindBlock, KindBalance,
}

// Kinds lists every operation in display order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// ParseKind resolves a case-insensitive operation name.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, kind := range kinds {
		if string(kind) == name {
			return kind, nil
		}
	}
	return "", fmt.Errorf("unknown operation %q", name)
}
