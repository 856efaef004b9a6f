package session

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"ethToolBox/internal/abicall"
	"ethToolBox/internal/convert"
	"ethToolBox/internal/model"
)

// ChainReader is the read-only node access used by the chain operations.
type ChainReader interface {
	GetChainID(ctx context.Context) (*big.Int, error)
	LatestBlockNumber(ctx context.Context) (uint64, error)
	BalanceAt(ctx context.Context, account common.Address) (*big.Int, error)
}

var errNoChain = errors.New("chain: no rpc endpoint configured")

// Dispatcher maps an operation kind onto one conversion and records the
// outcome as a single log line.
type Dispatcher struct {
	chain  ChainReader
	logger *zap.Logger
	now    func() time.Time
}

// NewDispatcher creates a dispatcher. chainReader may be nil, in which case
// the chain operations fail with an error line.
func NewDispatcher(chainReader ChainReader, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		chain:  chainReader,
		logger: logger,
		now:    time.Now,
	}
}

// Now returns the dispatcher clock reading.
func (d *Dispatcher) Now() time.Time {
	return d.now()
}

// Dispatch runs kind over the current inputs of state and returns the state
// with exactly one more log line.
func (d *Dispatcher) Dispatch(ctx context.Context, state State, kind model.Kind) State {
	req := state.Request(kind)
	line, err := d.run(ctx, req, state.Descriptor, state.AbiError)
	if err != nil {
		d.logger.Debug("conversion failed", zap.String("kind", string(kind)), zap.Error(err))
		return Reduce(state, Record{Line: err.Error(), Failed: true, At: d.now()})
	}
	d.logger.Debug("conversion done", zap.String("kind", string(kind)))
	return Reduce(state, Record{Line: line, At: d.now()})
}

// Convert runs a standalone request and returns its result line. Encode and
// decode parse req.Input as the function signature.
func (d *Dispatcher) Convert(ctx context.Context, req model.ConversionRequest) (string, error) {
	var (
		desc   *abicall.Descriptor
		abiErr string
	)
	if req.Kind == model.KindEncode || req.Kind == model.KindDecode {
		parsed, err := abicall.ParseSignature(req.Input)
		if err != nil {
			abiErr = err.Error()
		} else {
			desc = parsed
		}
	}
	return d.run(ctx, req, desc, abiErr)
}

func (d *Dispatcher) run(ctx context.Context, req model.ConversionRequest, desc *abicall.Descriptor, abiErr string) (string, error) {
	in := req.Input
	switch req.Kind {
	case model.KindKeccak256:
		out, err := convert.Keccak256(in)
		return result(err, "keccak256(%q) => %s", in, out)
	case model.KindSHA256:
		out, err := convert.SHA256(in)
		return result(err, "sha256(%q) => %s", in, out)
	case model.KindSelector:
		out, err := convert.FunctionSelector(in)
		return result(err, "bytes4(keccak256(%q)) => %s", in, out)
	case model.KindHex:
		out, err := convert.UTF8ToHex(in)
		return result(err, "hex(%q) => %s", in, out)
	case model.KindUTF8:
		out, err := convert.HexToUTF8(in)
		return result(err, "utf8(%q) => %q", in, out)
	case model.KindBytes:
		return result(nil, "bytes(%q) => %d", in, convert.ByteLength(in))
	case model.KindPad32:
		out, err := convert.ZeroPad32(in)
		return result(err, "pad32(%q) => %s", in, out)
	case model.KindWords:
		words, err := convert.BreakIntoWords(in)
		if err != nil {
			return "", err
		}
		var b strings.Builder
		fmt.Fprintf(&b, "words(%q) => %d", in, len(words))
		for _, w := range words {
			fmt.Fprintf(&b, "\n  [%d] 0x%04x: %s", w.Index, w.Offset, w.Hex)
		}
		return b.String(), nil

	case model.KindToInt:
		out, err := convert.DecimalOf(in)
		return result(err, "BN(%q).toString(10) => %s", in, out)
	case model.KindToHex:
		out, err := convert.HexOf(in)
		return result(err, "BN(%q).toString(16) => %s", in, out)
	case model.KindToWei:
		out, err := convert.WeiFromEther(in)
		return result(err, "wei(ether(%q)) => %s wei", in, out)
	case model.KindToGwei:
		out, err := convert.WeiFromGwei(in)
		return result(err, "gwei(%q) => %s wei", in, out)
	case model.KindToEther:
		out, err := convert.EtherFromWei(in)
		return result(err, "wei(%q) => %s ether", in, out)

	case model.KindEntropy:
		n, err := strconv.Atoi(strings.TrimSpace(in))
		if err != nil {
			return "", fmt.Errorf("entropy: invalid length %q", in)
		}
		out, err := convert.RandomEntropy(n)
		return result(err, "entropy(%d) => %s", n, out)
	case model.KindMnemonic:
		out, err := convert.MnemonicFromEntropy(in)
		return result(err, "mnemonic(%q) => %s", in, out)
	case model.KindKeygen:
		pair, err := convert.GenerateKeyPair()
		return result(err, "keygen() => key %s address %s", pair.PrivateKey, pair.Address)
	case model.KindAddress:
		out, err := convert.AddressOf(in)
		return result(err, "address(key) => %s", out)
	case model.KindSign:
		sig, err := convert.SignDigest(in, req.Aux)
		return result(err, "sign(%q) => %s", req.Aux, sig)
	case model.KindRecover:
		out, err := convert.RecoverAddress(in, req.Aux)
		return result(err, "recover(%q) => %s", in, out)

	case model.KindNamehash:
		out, err := convert.Namehash(in)
		return result(err, "namehash(%q) => %s", in, out)

	case model.KindEncode:
		if desc == nil {
			return "", abiUnavailable("encode", abiErr)
		}
		out, err := abicall.EncodeCall(desc, req.Args)
		return result(wrap("encode", err), "encode(%s) => %s", desc.Signature(), out)
	case model.KindDecode:
		if desc == nil {
			return "", abiUnavailable("decode", abiErr)
		}
		values, err := abicall.DecodeCall(desc, req.Aux)
		if err != nil {
			return "", wrap("decode", err)
		}
		parts := make([]string, len(values))
		for i, v := range values {
			label := v.Name
			if label == "" {
				label = v.Type
			}
			parts[i] = label + "=" + v.Text
		}
		return result(nil, "decode(%s) => %s", desc.Signature(), strings.Join(parts, ", "))

	case model.KindDate:
		res := convert.ParseFlexibleDate(in)
		if !res.Parsed {
			return result(nil, "date(%q) => %s (unparsed)", in, res.Text)
		}
		return result(nil, "date(%q) => %d (%s)", in, res.Unix, res.Text)
	case model.KindTimestamp:
		res := convert.FormatUnixTimestamp(in)
		if !res.Parsed {
			return result(nil, "timestamp(%q) => %s (unparsed)", in, res.Text)
		}
		return result(nil, "timestamp(%q) => %s", in, res.Text)
	case model.KindNow:
		return result(nil, "now() => %d", d.now().Unix())

	case model.KindChainID:
		if d.chain == nil {
			return "", errNoChain
		}
		id, err := d.chain.GetChainID(ctx)
		return result(wrap("chainid", err), "chainid() => %s", id)
	case model.KindBlock:
		if d.chain == nil {
			return "", errNoChain
		}
		number, err := d.chain.LatestBlockNumber(ctx)
		return result(wrap("block", err), "block() => %d", number)
	case model.KindBalance:
		if d.chain == nil {
			return "", errNoChain
		}
		addr := strings.TrimSpace(in)
		if !common.IsHexAddress(addr) {
			return "", fmt.Errorf("balance: invalid address %q", in)
		}
		balance, err := d.chain.BalanceAt(ctx, common.HexToAddress(addr))
		if err != nil {
			return "", wrap("balance", err)
		}
		ether, _ := convert.EtherFromWei(balance.String())
		return result(nil, "balance(%q) => %s wei (%s ether)", addr, balance, ether)
	}
	return "", fmt.Errorf("unknown operation %q", req.Kind)
}

func result(err error, format string, args ...interface{}) (string, error) {
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(format, args...), nil
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}

func abiUnavailable(op, abiErr string) error {
	if abiErr != "" {
		return fmt.Errorf("%s: %s", op, abiErr)
	}
	return fmt.Errorf("%s: no function signature set", op)
}
